package config

// StoryBeat is one step of the narrative arc. Reaching a beat retunes the
// whole scene: every rig's tone, the antagonists' drift level, and the
// music cue mix.
type StoryBeat struct {
	Name    string
	Caption string
	Tone    string  // rig tone name
	Drift   float64 // antagonist drift intensity, [0,1]
	Cue     string  // music cue layer brought forward
}

// StoryConfig contains the narrative beat table
type StoryConfig struct {
	Beats []StoryBeat
}

// Story is the global story configuration
var Story StoryConfig

func init() {
	Story = StoryConfig{
		Beats: []StoryBeat{
			{Name: "arrival", Caption: "DAZIE comes back to the commons.", Tone: "neutral", Drift: 0.2, Cue: "ambient"},
			{Name: "junes_lesson", Caption: "June shows her the slow way through.", Tone: "gentle", Drift: 0.25, Cue: "strings"},
			{Name: "first_echo", Caption: "Something wears a familiar outline.", Tone: "melancholic", Drift: 0.6, Cue: "low"},
			{Name: "wintons_window", Caption: "Winton is half here, and glad of it.", Tone: "tender", Drift: 0.45, Cue: "strings"},
			{Name: "noise_rises", Caption: "The noise learns to walk.", Tone: "grounded", Drift: 0.85, Cue: "percussion"},
			{Name: "holding_on", Caption: "The society holds the square together.", Tone: "resolute", Drift: 0.7, Cue: "percussion"},
			{Name: "resolution", Caption: "Quiet, kept on purpose.", Tone: "hopeful", Drift: 0.15, Cue: "ambient"},
		},
	}
}
