package systems

import (
	"fmt"

	"github.com/spinyflannel/society/components"
	cfg "github.com/spinyflannel/society/config"
	"github.com/spinyflannel/society/fonts"
	"github.com/spinyflannel/society/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the keepsake counter and the current story caption.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	bodyFont := fonts.Body.Get()

	if playerEntry, ok := tags.Player.First(e.World); ok {
		player := components.Player.Get(playerEntry)
		counter := fmt.Sprintf("Keepsakes: %d", player.Keepsakes)
		text.Draw(screen, counter, bodyFont,
			int(cfg.HUD.Margin), int(cfg.HUD.Margin)+14, cfg.HUD.KeepsakeColor)
	}

	storyEntry, ok := components.Story.First(e.World)
	if !ok {
		return
	}
	story := components.Story.Get(storyEntry)
	if story.CaptionTimer <= 0 || story.Caption == "" {
		return
	}

	// Caption banner near the bottom of the screen.
	captionWidth := float64(len(story.Caption) * 7)
	bannerW := captionWidth + 24
	bannerH := 24.0
	bannerX := (width - bannerW) / 2
	bannerY := height - 48

	vector.DrawFilledRect(screen,
		float32(bannerX), float32(bannerY),
		float32(bannerW), float32(bannerH),
		cfg.HUD.CaptionBgColor, false)
	text.Draw(screen, story.Caption, bodyFont,
		int(bannerX)+12, int(bannerY)+16, cfg.HUD.CaptionColor)
}
