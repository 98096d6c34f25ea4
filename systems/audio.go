package systems

import (
	"github.com/spinyflannel/society/components"
	cfg "github.com/spinyflannel/society/config"
	"github.com/spinyflannel/society/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAudioCues crossfades the music layer mix toward the targets for
// the scene's current tone. Levels never jump; they ramp at the
// configured rate so beat changes read as a swell, not a cut.
func UpdateAudioCues(e *ecs.ECS) {
	audioEntry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audio := components.Audio.Get(audioEntry)

	toneName := "neutral"
	if playerEntry, ok := tags.Player.First(e.World); ok {
		toneName = components.Rig.Get(playerEntry).Animator.Tone().String()
	}

	stepCueLevels(audio.Levels, cfg.Audio.CueLevels[toneName], cfg.Audio.FadePerSecond*dt)
}

// stepCueLevels moves each layer level toward its target by at most
// maxStep. Layers without a target fade to silence.
func stepCueLevels(levels map[string]float64, targets map[string]float64, maxStep float64) {
	for layer, level := range levels {
		target := targets[layer]
		diff := target - level
		if diff > maxStep {
			diff = maxStep
		} else if diff < -maxStep {
			diff = -maxStep
		}
		levels[layer] = level + diff
	}
}
