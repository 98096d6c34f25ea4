package factory

import (
	"github.com/spinyflannel/society/archetypes"
	"github.com/spinyflannel/society/components"
	cfg "github.com/spinyflannel/society/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateStory spawns the scene's narrative progress entity at the opening
// beat.
func CreateStory(e *ecs.ECS) *donburi.Entry {
	story := archetypes.Story.Spawn(e)
	data := &components.StoryData{BeatIndex: 0}
	if len(cfg.Story.Beats) > 0 {
		data.Caption = cfg.Story.Beats[0].Caption
		data.CaptionTimer = cfg.HUD.CaptionDuration
	}
	components.Story.Set(story, data)
	return story
}

// CreateAudio spawns the music cue mix entity with every layer silent.
func CreateAudio(e *ecs.ECS) *donburi.Entry {
	audio := archetypes.Audio.Spawn(e)
	levels := make(map[string]float64, len(cfg.Audio.Layers))
	for _, layer := range cfg.Audio.Layers {
		levels[layer] = 0
	}
	components.Audio.Set(audio, &components.AudioData{Levels: levels})
	return audio
}

// CreateSettings spawns the live settings entity with defaults.
func CreateSettings(e *ecs.ECS) *donburi.Entry {
	settings := archetypes.Settings.Spawn(e)
	components.Settings.Set(settings, &components.SettingsData{
		MotionScaleIndex: cfg.SettingsMenu.DefaultMotionScaleIdx,
		ResolutionIndex:  cfg.SettingsMenu.DefaultResolutionIndex,
	})
	return settings
}
