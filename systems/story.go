package systems

import (
	"log"

	"github.com/spinyflannel/society/components"
	cfg "github.com/spinyflannel/society/config"
	"github.com/spinyflannel/society/rig"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// AdvanceStory moves the narrative to a later beat and retunes the scene:
// every rig's tone, antagonist drift, and the finale overlay on the last
// beat. Earlier or out-of-range beats are ignored, so triggers can be
// walked through in any order.
func AdvanceStory(e *ecs.ECS, beat int) {
	storyEntry, ok := components.Story.First(e.World)
	if !ok {
		return
	}
	story := components.Story.Get(storyEntry)
	if beat <= story.BeatIndex || beat >= len(cfg.Story.Beats) {
		return
	}
	story.BeatIndex = beat

	b := cfg.Story.Beats[beat]
	story.Caption = b.Caption
	story.CaptionTimer = cfg.HUD.CaptionDuration

	applyBeat(e, b, beat == len(cfg.Story.Beats)-1)
}

func applyBeat(e *ecs.ECS, b cfg.StoryBeat, final bool) {
	tone, ok := rig.ParseTone(b.Tone)
	if !ok {
		log.Printf("Warning: story beat %q names unknown tone %q", b.Name, b.Tone)
		tone = rig.ToneNeutral
	}

	toneLocked := false
	var lockedTone rig.Tone
	if entry, ok := components.Settings.First(e.World); ok {
		settings := components.Settings.Get(entry)
		toneLocked = settings.ToneLocked
		lockedTone = settings.LockedTone
	}

	components.Rig.Each(e.World, func(entry *donburi.Entry) {
		animator := components.Rig.Get(entry).Animator
		if toneLocked {
			animator.SetTone(lockedTone)
		} else {
			animator.SetTone(tone)
		}

		isAntagonist := entry.HasComponent(components.NPC) &&
			components.NPC.Get(entry).Kind == components.KindAntagonist
		if isAntagonist {
			animator.SetDriftIntensity(b.Drift)
		}

		// The finale flourish rides the gesture layer so locomotion
		// underneath keeps running.
		if final && entry.HasComponent(components.Player) {
			animator.TransitionTo(animator.NewState(rig.StateResolution), rig.LayerGesture, cfg.Rig.BlendTime)
		}
	})
}

// ApplyCurrentBeat re-applies the active beat's tone and drift. Called
// after spawning so characters open in the right register.
func ApplyCurrentBeat(e *ecs.ECS) {
	storyEntry, ok := components.Story.First(e.World)
	if !ok {
		return
	}
	story := components.Story.Get(storyEntry)
	if story.BeatIndex < 0 || story.BeatIndex >= len(cfg.Story.Beats) {
		return
	}
	applyBeat(e, cfg.Story.Beats[story.BeatIndex], story.BeatIndex == len(cfg.Story.Beats)-1)
}

// UpdateStory runs the caption timer and marks the story finished once the
// final beat's caption has played out.
func UpdateStory(e *ecs.ECS) {
	storyEntry, ok := components.Story.First(e.World)
	if !ok {
		return
	}
	story := components.Story.Get(storyEntry)
	if story.CaptionTimer > 0 {
		story.CaptionTimer--
		if getOrCreateInput(e).JustPressed(cfg.ActionInteract) {
			story.CaptionTimer = 0
		}
		return
	}
	if story.BeatIndex == len(cfg.Story.Beats)-1 {
		story.Finished = true
	}
}

// IsStoryFinished reports whether the final beat has fully played out.
func IsStoryFinished(e *ecs.ECS) bool {
	if entry, ok := components.Story.First(e.World); ok {
		return components.Story.Get(entry).Finished
	}
	return false
}
