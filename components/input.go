package components

import (
	cfg "github.com/spinyflannel/society/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all
// actions. JustPressed/JustReleased are computed by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()

// Pressed reports whether the action is held this frame.
func (in *InputData) Pressed(a cfg.ActionID) bool {
	return in.Current[a]
}

// JustPressed reports whether the action went down this frame.
func (in *InputData) JustPressed(a cfg.ActionID) bool {
	return in.Current[a] && !in.Previous[a]
}

// JustReleased reports whether the action came up this frame.
func (in *InputData) JustReleased(a cfg.ActionID) bool {
	return !in.Current[a] && in.Previous[a]
}
