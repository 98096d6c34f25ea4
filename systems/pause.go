package systems

import (
	cfg "github.com/spinyflannel/society/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles the settings overlay while in the world scene.
// There is no separate pause state; opening settings is the pause.
func UpdatePause(e *ecs.ECS) {
	input := getOrCreateInput(e)
	if !input.JustPressed(cfg.ActionPause) {
		return
	}
	if IsSettingsOpen(e) {
		CloseSettings(e)
	} else {
		OpenSettings(e)
	}
}
