package ui

import (
	"bytes"
	"image/color"

	"github.com/spinyflannel/society/components"
	"github.com/spinyflannel/society/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// SettingsUI is the ebitenui overlay for accessibility and display
// settings. It mutates the live settings component directly; the caller
// saves on close.
type SettingsUI struct {
	UI       *ebitenui.UI
	Settings *components.SettingsData

	OnClose func()

	motionButton     *widget.Button
	toneButton       *widget.Button
	fullscreenButton *widget.Button
	resolutionButton *widget.Button

	titleFace  text.Face
	normalFace text.Face

	initialized bool
}

// NewSettingsUI creates the settings overlay bound to the given settings
// component.
func NewSettingsUI(settings *components.SettingsData, onClose func()) *SettingsUI {
	sui := &SettingsUI{
		Settings: settings,
		OnClose:  onClose,
	}

	sui.loadFonts()
	sui.buildUI()

	return sui
}

func (sui *SettingsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	sui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   18,
	}
	sui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
}

func (sui *SettingsUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 16, 30, 230})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(10)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("SETTINGS", &sui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{235, 222, 200, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	sui.motionButton = sui.buildOptionRow(contentContainer, "Motion", func() {
		systems.CycleMotionScale(sui.Settings, 1)
		sui.UpdateUI()
	})
	sui.toneButton = sui.buildOptionRow(contentContainer, "Tone", func() {
		systems.CycleLockedTone(sui.Settings, 1)
		sui.UpdateUI()
	})
	sui.fullscreenButton = sui.buildOptionRow(contentContainer, "Fullscreen", func() {
		systems.ToggleFullscreen(sui.Settings)
		sui.UpdateUI()
	})
	sui.resolutionButton = sui.buildOptionRow(contentContainer, "Resolution", func() {
		systems.CycleResolution(sui.Settings, 1)
		sui.UpdateUI()
	})

	closeButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(100, 26)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text("Close", &sui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if sui.OnClose != nil {
				sui.OnClose()
			}
		}),
	)
	contentContainer.AddChild(closeButton)

	rootContainer.AddChild(contentContainer)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// buildOptionRow adds a label plus a value button that cycles the option
// when clicked, and returns the button for later relabeling.
func (sui *SettingsUI) buildOptionRow(parent *widget.Container, label string, onClick func()) *widget.Button {
	padding := widget.Insets{Top: 2, Bottom: 2, Left: 4, Right: 4}
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)

	nameLabel := widget.NewLabel(
		widget.LabelOpts.Text(label, &sui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	row.AddChild(nameLabel)

	valueButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(150, 22)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text("", &sui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{200, 200, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{180, 180, 180, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
	row.AddChild(valueButton)

	parent.AddChild(row)
	return valueButton
}

func (sui *SettingsUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 56, 84, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 76, 108, 255})
	pressed := image.NewNineSliceColor(color.RGBA{44, 40, 64, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// UpdateUI refreshes the value labels from the settings component.
func (sui *SettingsUI) UpdateUI() {
	setLabel := func(b *widget.Button, label string) {
		if b == nil {
			return
		}
		if textWidget := b.Text(); textWidget != nil {
			textWidget.Label = label
		}
	}

	setLabel(sui.motionButton, systems.MotionScaleLabel(sui.Settings))
	setLabel(sui.toneButton, systems.ToneLockLabel(sui.Settings))
	if sui.Settings.Fullscreen {
		setLabel(sui.fullscreenButton, "On")
	} else {
		setLabel(sui.fullscreenButton, "Off")
	}
	setLabel(sui.resolutionButton, systems.ResolutionLabel(sui.Settings))
}

// Update advances the UI. Call once per tick while the overlay is open.
func (sui *SettingsUI) Update() {
	sui.UI.Update()
	if !sui.initialized {
		sui.initialized = true
		sui.UpdateUI()
	}
}
