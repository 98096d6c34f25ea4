package scenes

import (
	"image/color"
	"sync"

	"github.com/spinyflannel/society/components"
	cfg "github.com/spinyflannel/society/config"
	"github.com/spinyflannel/society/systems"
	"github.com/spinyflannel/society/systems/factory"
	"github.com/spinyflannel/society/tags"
	"github.com/spinyflannel/society/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene runs the narrative platformer world.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	settingsUI   *ui.SettingsUI
	once         sync.Once
}

// NewWorldScene creates a new world scene on the first level.
func NewWorldScene(sc SceneChanger) *WorldScene {
	return &WorldScene{sceneChanger: sc}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if systems.IsSettingsOpen(ws.ecs) {
		ws.settingsUI.Update()
	}

	if systems.IsStoryFinished(ws.ecs) {
		ws.sceneChanger.ChangeScene(NewFinaleScene(ws.sceneChanger, ws.keepsakeCount()))
	}
}

func (ws *WorldScene) keepsakeCount() int {
	if playerEntry, ok := tags.Player.First(ws.ecs.World); ok {
		return components.Player.Get(playerEntry).Keepsakes
	}
	return 0
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
	if systems.IsSettingsOpen(ws.ecs) {
		ws.settingsUI.UI.Draw(screen)
	}
}

// unlessPaused wraps a gameplay system so the world freezes while the
// settings overlay is open.
func unlessPaused(sys ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if systems.IsSettingsOpen(e) {
			return
		}
		sys(e)
	}
}

func (ws *WorldScene) configure() {
	ws.ecs = ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ws.ecs.AddSystem(systems.UpdateInput)
	ws.ecs.AddSystem(systems.UpdatePause)

	// Gameplay systems freeze while settings is open
	ws.ecs.AddSystem(unlessPaused(systems.UpdatePlayer))
	ws.ecs.AddSystem(unlessPaused(systems.UpdateNPCs))
	ws.ecs.AddSystem(unlessPaused(systems.UpdatePhysics))
	ws.ecs.AddSystem(unlessPaused(systems.UpdateCollisions))
	ws.ecs.AddSystem(unlessPaused(systems.UpdateObjects))
	ws.ecs.AddSystem(unlessPaused(systems.UpdateFloatingPlatforms))
	ws.ecs.AddSystem(unlessPaused(systems.UpdateKeepsakes))
	ws.ecs.AddSystem(unlessPaused(systems.UpdateRigs))
	ws.ecs.AddSystem(unlessPaused(systems.UpdateStory))
	ws.ecs.AddSystem(unlessPaused(systems.UpdateAudioCues))
	ws.ecs.AddSystem(unlessPaused(systems.UpdateCamera))

	ws.ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	ws.ecs.AddRenderer(cfg.Default, systems.DrawFigures)
	ws.ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	// Level data first, then the collision space sized to it.
	level := factory.CreateLevelAtIndex(ws.ecs, 0)
	levelData := components.Level.Get(level)

	factory.CreateSpace(ws.ecs,
		levelData.CurrentLevel.Width,
		levelData.CurrentLevel.Height,
		16, 16,
	)

	factory.CreateCamera(ws.ecs)
	factory.CreateStory(ws.ecs)
	factory.CreateAudio(ws.ecs)
	factory.CreateSettings(ws.ecs)

	if saved, _ := systems.LoadSettings(); saved != nil {
		systems.ApplySavedSettings(ws.ecs, saved)
	}
	ws.settingsUI = ui.NewSettingsUI(systems.GetOrCreateSettings(ws.ecs), func() {
		systems.CloseSettings(ws.ecs)
	})

	cur := levelData.CurrentLevel
	for _, wall := range cur.Walls {
		factory.CreateWall(ws.ecs, wall.X, wall.Y, wall.W, wall.H)
	}
	for _, platform := range cur.Platforms {
		factory.CreateFloatingPlatform(ws.ecs, platform.X, platform.Y, platform.W, platform.H)
	}
	for _, dz := range cur.DeadZones {
		factory.CreateDeadZone(ws.ecs, dz.X, dz.Y, dz.W, dz.H)
	}
	for _, k := range cur.Keepsakes {
		factory.CreateKeepsake(ws.ecs, k.X, k.Y)
	}
	for _, trigger := range cur.Triggers {
		factory.CreateStoryTrigger(ws.ecs, trigger.X, trigger.Y, trigger.W, trigger.H, trigger.Beat)
	}

	for _, spawn := range cur.Spawns {
		switch spawn.Kind {
		case "player":
			factory.CreatePlayer(ws.ecs, spawn.X, spawn.Y, spawn.Profile)
		case "companion":
			factory.CreateCompanion(ws.ecs, spawn.X, spawn.Y, spawn.Patrol, spawn.Profile)
		case "member":
			factory.CreateSocietyMember(ws.ecs, spawn.X, spawn.Y, spawn.Patrol, spawn.Profile)
		case "antagonist":
			factory.CreateAntagonist(ws.ecs, spawn.X, spawn.Y, spawn.Patrol, spawn.Profile, spawn.Pattern)
		}
	}

	// Open in the arrival beat's register.
	systems.ApplyCurrentBeat(ws.ecs)

	// Snap camera to the player's start to prevent panning from (0,0).
	playerSpawn := cur.PlayerSpawn()
	if cameraEntry, ok := components.Camera.First(ws.ecs.World); ok {
		camera := components.Camera.Get(cameraEntry)
		camera.Position.X = playerSpawn.X
		camera.Position.Y = playerSpawn.Y
	}
}
