package components

import (
	"github.com/yohamta/donburi"
)

// StoryData tracks narrative progress: which beat is active and the
// caption being shown for it.
type StoryData struct {
	BeatIndex    int
	Caption      string
	CaptionTimer int // frames remaining for the caption overlay
	Finished     bool
}

var Story = donburi.NewComponentType[StoryData]()

// StoryTriggerData marks a level region that advances the story when the
// player walks through it.
type StoryTriggerData struct {
	Beat  int
	Fired bool
}

var StoryTriggerPoint = donburi.NewComponentType[StoryTriggerData]()
