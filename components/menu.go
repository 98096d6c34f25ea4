package components

import (
	"github.com/yohamta/donburi"
)

// MenuData tracks the main menu selection.
type MenuData struct {
	SelectedIndex int
}

var Menu = donburi.NewComponentType[MenuData]()
