package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position   math.Vec2
	LookAheadX float64 // Current smoothed X offset for look-ahead
}

var Camera = donburi.NewComponentType[CameraData]()

// ScreenShakeData drives a decaying-timer camera shake. Added to the
// camera entity on impact, removed when the timer runs out.
type ScreenShakeData struct {
	Intensity float64 // pixels at full strength
	Duration  int     // frames
	Elapsed   int
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
