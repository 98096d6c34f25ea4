package rig

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tone is the story's emotional register. It modulates every motion
// generator globally: calm tones damp amplitude and slow the clock,
// energetic tones amplify both.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneGentle
	ToneHopeful
	ToneMelancholic
	ToneGrounded
	ToneTender
	ToneResolute

	toneCount
)

// ToneCount is the number of named tones, for UIs that cycle through them.
const ToneCount = int(toneCount)

var toneNames = [toneCount]string{
	"neutral", "gentle", "hopeful", "melancholic", "grounded", "tender", "resolute",
}

func (t Tone) String() string {
	if t < 0 || t >= toneCount {
		return "tone(?)"
	}
	return toneNames[t]
}

// ParseTone resolves a tone name from config or story data.
func ParseTone(name string) (Tone, bool) {
	for i, n := range toneNames {
		if n == name {
			return Tone(i), true
		}
	}
	return ToneNeutral, false
}

// toneProfile is the target pair a tone resolves to: a spatial intensity
// multiplier and a playback speed multiplier.
type toneProfile struct {
	intensity float64
	speed     float64
}

var toneProfiles = [toneCount]toneProfile{
	ToneNeutral:     {1.0, 1.0},
	ToneGentle:      {0.7, 0.9},
	ToneHopeful:     {1.15, 1.1},
	ToneMelancholic: {0.5, 0.8},
	ToneGrounded:    {0.9, 0.95},
	ToneTender:      {0.6, 0.85},
	ToneResolute:    {1.3, 1.05},
}

// DefaultToneTransitionTime is how long a tone change takes to settle.
const DefaultToneTransitionTime = 1.0

// toneState chases the active tone's multipliers along a bounded linear
// ramp, so a change completes in exactly transitionTime seconds regardless
// of distance — never an exponential tail.
type toneState struct {
	tone           Tone
	transitionTime float64

	intensity float64
	speed     float64

	intensityRamp *gween.Tween
	speedRamp     *gween.Tween
}

func newToneState() toneState {
	return toneState{
		tone:           ToneNeutral,
		transitionTime: DefaultToneTransitionTime,
		intensity:      toneProfiles[ToneNeutral].intensity,
		speed:          toneProfiles[ToneNeutral].speed,
	}
}

// set retargets the ramps at the new tone's multipliers. Out-of-range
// values clamp to neutral.
func (ts *toneState) set(tone Tone) {
	if tone < 0 || tone >= toneCount {
		tone = ToneNeutral
	}
	ts.tone = tone
	target := toneProfiles[tone]
	if ts.transitionTime <= 0 {
		ts.intensity = target.intensity
		ts.speed = target.speed
		ts.intensityRamp = nil
		ts.speedRamp = nil
		return
	}
	ts.intensityRamp = gween.New(float32(ts.intensity), float32(target.intensity), float32(ts.transitionTime), ease.Linear)
	ts.speedRamp = gween.New(float32(ts.speed), float32(target.speed), float32(ts.transitionTime), ease.Linear)
}

func (ts *toneState) update(dt float64) {
	if ts.intensityRamp != nil {
		v, done := ts.intensityRamp.Update(float32(dt))
		ts.intensity = float64(v)
		if done {
			ts.intensityRamp = nil
		}
	}
	if ts.speedRamp != nil {
		v, done := ts.speedRamp.Update(float32(dt))
		ts.speed = float64(v)
		if done {
			ts.speedRamp = nil
		}
	}
}
