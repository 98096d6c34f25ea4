package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space is the level's resolv collision space, shared by every object.
var Space = donburi.NewComponentType[resolv.Space]()
