package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Direction    Vector
	Keepsakes    int
	CoyoteFrames int // Frames of jump grace after leaving a ledge
	WasGrounded  bool
	LastSafeX    float64 // Last position where the player was safely grounded
	LastSafeY    float64
}

var Player = donburi.NewComponentType[PlayerData]()
