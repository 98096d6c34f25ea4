package systems

import (
	"image/color"
	"math"

	"github.com/spinyflannel/society/components"
	cfg "github.com/spinyflannel/society/config"
	"github.com/spinyflannel/society/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}

	// White silhouette shared by every character; tinted per figure at
	// draw time.
	figureImage *ebiten.Image
)

const (
	figureWidth  = 16
	figureHeight = 40
)

// figure builds the character silhouette on first use: a rounded body
// with a head, drawn in white so ColorScale can tint it.
func figure() *ebiten.Image {
	if figureImage != nil {
		return figureImage
	}
	figureImage = ebiten.NewImage(figureWidth, figureHeight)
	vector.DrawFilledCircle(figureImage, figureWidth/2, 7, 6, color.White, true)
	vector.DrawFilledRect(figureImage, 3, 13, figureWidth-6, figureHeight-14, color.White, true)
	return figureImage
}

// DrawWorld renders the level geometry and keepsakes.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	offX := float64(width)/2 - camera.Position.X
	offY := float64(height)/2 - camera.Position.Y

	screen.Fill(cfg.DuskPurple)

	drawSolid := func(e2 *donburi.Entry, c color.RGBA) {
		o := components.Object.Get(e2)
		if o.HasTags(tags.ResolvDeadZone) {
			return
		}
		vector.DrawFilledRect(screen,
			float32(o.X+offX), float32(o.Y+offY),
			float32(o.W), float32(o.H), c, false)
	}
	tags.Wall.Each(e.World, func(e2 *donburi.Entry) { drawSolid(e2, cfg.DarkBlue) })
	tags.Platform.Each(e.World, func(e2 *donburi.Entry) { drawSolid(e2, cfg.LightBlue) })

	components.Keepsake.Each(e.World, func(e2 *donburi.Entry) {
		keepsake := components.Keepsake.Get(e2)
		if keepsake.Collected {
			return
		}
		o := components.Object.Get(e2)
		bob := math.Sin(keepsake.Phase*2*math.Pi) * 3
		cx := float32(o.X + o.W/2 + offX)
		cy := float32(o.Y + o.H/2 + offY + bob)
		vector.DrawFilledCircle(screen, cx, cy, 4, cfg.WarmLinen, true)
	})
}

// DrawFigures renders every rigged character: the base silhouette
// deformed by the animator's composited sample. Offsets are in body
// units and scale to pixels; rig Y points up, screen Y points down.
func DrawFigures(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	padding := 64.0
	minX := camera.Position.X - float64(width)/2 - padding
	maxX := camera.Position.X + float64(width)/2 + padding

	img := figure()

	components.Rig.Each(e.World, func(e2 *donburi.Entry) {
		o := components.Object.Get(e2)
		if o.X+o.W < minX || o.X > maxX {
			return
		}

		rigData := components.Rig.Get(e2)
		sample := rigData.Animator.Output()

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()

		// Anchor at bottom-center so squash and stretch keep the feet
		// planted.
		drawOp.GeoM.Translate(-figureWidth/2, -figureHeight)
		drawOp.GeoM.Scale(sample.Scale.X, sample.Scale.Y)
		drawOp.GeoM.Rotate(sample.Rotation.Z * math.Pi / 180)

		// Facing flip for walkers.
		if e2.HasComponent(components.Player) {
			if components.Player.Get(e2).Direction.X < 0 {
				drawOp.GeoM.Scale(-1, 1)
			}
		} else if e2.HasComponent(components.NPC) {
			if components.NPC.Get(e2).Dir < 0 {
				drawOp.GeoM.Scale(-1, 1)
			}
		}

		px := o.X + o.W/2 + sample.Offset.X*cfg.Rig.OffsetPixels
		py := o.Y + o.H - sample.Offset.Y*cfg.Rig.OffsetPixels
		drawOp.GeoM.Translate(px, py)
		drawOp.GeoM.Translate(float64(width)/2-camera.Position.X, float64(height)/2-camera.Position.Y)

		drawOp.ColorScale.Scale(
			float32(rigData.TintR)/255,
			float32(rigData.TintG)/255,
			float32(rigData.TintB)/255, 1)
		drawOp.ColorScale.ScaleAlpha(float32(sample.Alpha))

		screen.DrawImage(img, drawOp)
	})
}
