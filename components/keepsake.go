package components

import (
	"github.com/yohamta/donburi"
)

type KeepsakeData struct {
	Phase     float64 // bobbing phase, cycles
	Collected bool
}

var Keepsake = donburi.NewComponentType[KeepsakeData]()
