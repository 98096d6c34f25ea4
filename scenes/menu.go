package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/spinyflannel/society/config"
	"github.com/spinyflannel/society/systems"
	"github.com/spinyflannel/society/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the main menu.
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	settingsUI   *ui.SettingsUI
	once         sync.Once
}

// NewMenuScene creates a new menu scene.
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
	if systems.IsSettingsOpen(ms.ecs) {
		ms.settingsUI.Update()
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
	if systems.IsSettingsOpen(ms.ecs) {
		ms.settingsUI.UI.Draw(screen)
	}
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	createWorldScene := func() interface{} {
		return NewWorldScene(ms.sceneChanger)
	}

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.sceneChanger, createWorldScene))

	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)

	if saved, _ := systems.LoadSettings(); saved != nil {
		systems.ApplySavedSettings(ms.ecs, saved)
	}
	ms.settingsUI = ui.NewSettingsUI(systems.GetOrCreateSettings(ms.ecs), func() {
		systems.CloseSettings(ms.ecs)
	})
}
