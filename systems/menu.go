package systems

import (
	"os"

	"github.com/spinyflannel/society/components"
	cfg "github.com/spinyflannel/society/config"
	"github.com/spinyflannel/society/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu creates the main menu update system.
func NewUpdateMenu(sceneChanger SceneChanger, createWorldScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		// The settings overlay captures input while open.
		if IsSettingsOpen(e) {
			return
		}

		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		numOptions := len(cfg.Menu.MenuOptions)
		if input.JustPressed(cfg.ActionMenuUp) {
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if input.JustPressed(cfg.ActionMenuDown) {
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		if input.JustPressed(cfg.ActionMenuSelect) {
			switch cfg.Menu.MenuOptions[menu.SelectedIndex] {
			case "Begin":
				sceneChanger.ChangeScene(createWorldScene())
			case "Settings":
				OpenSettings(e)
			case "Quit":
				os.Exit(0)
			}
		}

		if input.JustPressed(cfg.ActionMenuBack) {
			os.Exit(0)
		}
	}
}

// DrawMenu renders the main menu screen.
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(screen, 0, 0,
		float32(width), float32(height), cfg.Menu.BackgroundColor, false)

	titleFont := fonts.Title.Get()
	title := "Spiny Flannel Society"
	titleWidth := len(title) * 14 // Approximate width for the title face
	titleX := int((width - float64(titleWidth)) / 2)
	text.Draw(screen, title, titleFont, titleX, int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	menuFont := fonts.Body.Get()
	for i, option := range cfg.Menu.MenuOptions {
		y := cfg.Menu.MenuStartY + float64(i)*cfg.Menu.MenuItemHeight

		textColor := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Menu.TextColorSelected
		}

		textWidth := len(option) * 7
		x := int((width - float64(textWidth)) / 2)
		text.Draw(screen, option, menuFont, x, int(y), textColor)
	}

	hint := "Arrows: Navigate   Enter: Select"
	hintFont := fonts.Small.Get()
	hintWidth := len(hint) * 5
	hintX := int((width - float64(hintWidth)) / 2)
	text.Draw(screen, hint, hintFont, hintX, int(height)-12, cfg.Menu.TextColorNormal)
}

// GetOrCreateMenu returns the singleton menu component, creating if needed.
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if entry, ok := components.Menu.First(e.World); ok {
		return components.Menu.Get(entry)
	}
	entry := e.World.Entry(e.Create(cfg.Default, components.Menu))
	return components.Menu.Get(entry)
}
