package systems

import (
	"fmt"

	cfg "github.com/spinyflannel/society/config"
	"github.com/spinyflannel/society/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateFinale creates the resolution screen update system. Confirm
// returns to the main menu.
func NewUpdateFinale(sceneChanger SceneChanger, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		if input.JustPressed(cfg.ActionMenuSelect) || input.JustPressed(cfg.ActionJump) {
			sceneChanger.ChangeScene(createMenuScene())
		}
	}
}

// NewDrawFinale creates the resolution screen renderer. The keepsake
// count is fixed at scene creation, carried over from the world.
func NewDrawFinale(keepsakes int) func(e *ecs.ECS, screen *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		width := float64(screen.Bounds().Dx())
		height := float64(screen.Bounds().Dy())

		vector.DrawFilledRect(screen, 0, 0,
			float32(width), float32(height), cfg.Finale.BackgroundColor, false)

		titleFont := fonts.Title.Get()
		title := cfg.Finale.Title
		titleWidth := len(title) * 14
		titleX := int((width - float64(titleWidth)) / 2)
		text.Draw(screen, title, titleFont, titleX, int(cfg.Finale.TitleY), cfg.Finale.TitleColor)

		bodyFont := fonts.Body.Get()
		message := cfg.Finale.Message
		messageWidth := len(message) * 7
		messageX := int((width - float64(messageWidth)) / 2)
		text.Draw(screen, message, bodyFont, messageX, int(cfg.Finale.MessageY), cfg.Finale.TextColor)

		carried := fmt.Sprintf("%d keepsakes carried home", keepsakes)
		carriedWidth := len(carried) * 7
		carriedX := int((width - float64(carriedWidth)) / 2)
		text.Draw(screen, carried, bodyFont, carriedX, int(cfg.Finale.MessageY)+24, cfg.Finale.TextColor)

		hint := cfg.Finale.ContinueHint
		hintFont := fonts.Small.Get()
		hintWidth := len(hint) * 5
		hintX := int((width - float64(hintWidth)) / 2)
		text.Draw(screen, hint, hintFont, hintX, int(height)-16, cfg.Menu.TextColorNormal)
	}
}
