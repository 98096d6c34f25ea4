package components

import (
	"github.com/yohamta/donburi"
)

// AudioData holds the current music cue layer levels. Levels chase the
// active tone's targets so the mix crossfades with the story instead of
// cutting.
type AudioData struct {
	Levels map[string]float64
}

var Audio = donburi.NewComponentType[AudioData]()
