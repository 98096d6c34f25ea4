package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/spinyflannel/society/config"
	"github.com/spinyflannel/society/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// FinaleScene displays the resolution screen after the last story beat.
type FinaleScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	keepsakes    int
	once         sync.Once
}

// NewFinaleScene creates the resolution scene carrying the keepsake count
// from the world.
func NewFinaleScene(sc SceneChanger, keepsakes int) *FinaleScene {
	return &FinaleScene{sceneChanger: sc, keepsakes: keepsakes}
}

func (fs *FinaleScene) Update() {
	fs.once.Do(fs.configure)
	fs.ecs.Update()
}

func (fs *FinaleScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if fs.ecs == nil {
		return
	}
	fs.ecs.Draw(screen)
}

func (fs *FinaleScene) configure() {
	fs.ecs = ecs.NewECS(donburi.NewWorld())

	createMenuScene := func() interface{} {
		return NewMenuScene(fs.sceneChanger)
	}

	fs.ecs.AddSystem(systems.UpdateInput)
	fs.ecs.AddSystem(systems.NewUpdateFinale(fs.sceneChanger, createMenuScene))

	fs.ecs.AddRenderer(cfg.Default, systems.NewDrawFinale(fs.keepsakes))
}
