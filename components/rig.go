package components

import (
	"github.com/spinyflannel/society/rig"
	"github.com/yohamta/donburi"
)

// RigData attaches a procedural animator to a character entity. The
// animator owns all pose state; rendering reads its composited output.
type RigData struct {
	Animator *rig.Animator

	// Figure is the character's silhouette tint, used by the procedural
	// renderer.
	TintR, TintG, TintB uint8
}

var Rig = donburi.NewComponentType[RigData]()
