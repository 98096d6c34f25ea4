package tags

import "github.com/yohamta/donburi"

var (
	Player        = donburi.NewTag().SetName("Player")
	Companion     = donburi.NewTag().SetName("Companion")
	SocietyMember = donburi.NewTag().SetName("SocietyMember")
	Antagonist    = donburi.NewTag().SetName("Antagonist")
	Platform      = donburi.NewTag().SetName("Platform")
	Wall          = donburi.NewTag().SetName("Wall")
	Keepsake      = donburi.NewTag().SetName("Keepsake")
	StoryTrigger  = donburi.NewTag().SetName("StoryTrigger")
)

// Resolv tags for physics collision
const (
	ResolvSolid    = "solid"
	ResolvPlayer   = "Player"
	ResolvNPC      = "NPC"
	ResolvKeepsake = "keepsake"
	ResolvTrigger  = "trigger"
	ResolvDeadZone = "deadzone"
)
