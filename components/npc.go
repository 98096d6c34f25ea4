package components

import (
	"github.com/spinyflannel/society/rig"
	"github.com/yohamta/donburi"
)

// NPCKind selects the behavior routine for a non-player character.
type NPCKind int

const (
	KindCompanion NPCKind = iota
	KindSocietyMember
	KindAntagonist
)

type NPCData struct {
	Kind NPCKind

	// Patrol bounds in world X. Zero range means the NPC stands in place.
	PatrolMinX float64
	PatrolMaxX float64
	Dir        float64

	// Pattern is the drift pattern an antagonist animates with.
	Pattern rig.StateID
}

var NPC = donburi.NewComponentType[NPCData]()
