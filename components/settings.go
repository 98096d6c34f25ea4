package components

import (
	"github.com/spinyflannel/society/rig"
	"github.com/yohamta/donburi"
)

// SettingsData holds the live accessibility and display settings.
type SettingsData struct {
	MotionScaleIndex int // index into config.SettingsMenu.MotionScales
	ToneLocked       bool
	LockedTone       rig.Tone
	Fullscreen       bool
	ResolutionIndex  int
	MenuOpen         bool
}

var Settings = donburi.NewComponentType[SettingsData]()
