package rig

// Params is the tunable constant set a motion generator reads. One struct
// covers every generator; each variant uses the fields that apply to it and
// ignores the rest. Character profiles override these per state.
//
// All values are read-only at runtime — generators never mutate them.
type Params struct {
	// Speed is the phase advance rate in cycles per second for cycling
	// states. Finite states ignore it and use Duration.
	Speed float64 `yaml:"speed"`

	// Duration in seconds for finite (reaction/resolution) states.
	Duration float64 `yaml:"duration"`

	// Amplitude is the primary vertical offset amplitude in world units
	// (idle breathing rise, pattern sway reach).
	Amplitude float64 `yaml:"amplitude"`

	// BobAmplitude is the locomotion footfall bob height.
	BobAmplitude float64 `yaml:"bob_amplitude"`

	// SwayDegrees is the periodic roll applied around Z.
	SwayDegrees float64 `yaml:"sway_degrees"`

	// LeanDegrees is the constant forward pitch while moving.
	LeanDegrees float64 `yaml:"lean_degrees"`

	// ScalePulse is the breathing scale term k in 1 + sin(phase·2π)·k.
	ScalePulse float64 `yaml:"scale_pulse"`

	// Compression couples scale squash to locomotion footfalls.
	Compression float64 `yaml:"compression"`

	// Squash and Stretch are the reaction scale targets (Y axis; X/Z
	// counter-scale to roughly preserve volume).
	Squash  float64 `yaml:"squash"`
	Stretch float64 `yaml:"stretch"`

	// Rise is the reaction vertical travel: jump lift, land dip, death sink.
	Rise float64 `yaml:"rise"`

	// SpinDegrees is the reaction rotation: collect twirl, death keel.
	SpinDegrees float64 `yaml:"spin_degrees"`

	// Jitter is the chaotic positional amplitude for damage shakes and
	// drift patterns.
	Jitter float64 `yaml:"jitter"`

	// FadeTo is the alpha target for fading states (death, echo form).
	FadeTo float64 `yaml:"fade_to"`
}

// defaultParams carries the baseline tuning for every state. Character
// profiles start from these and override individual fields.
var defaultParams = map[StateID]Params{
	StateIdle: {
		Speed:       0.45,
		Amplitude:   0.03,
		SwayDegrees: 1.2,
		ScalePulse:  0.02,
	},
	StateWalk: {
		Speed:        1.4,
		BobAmplitude: 0.05,
		SwayDegrees:  2.5,
		LeanDegrees:  4,
		Compression:  0.04,
	},
	StateRun: {
		Speed:        2.4,
		BobAmplitude: 0.09,
		SwayDegrees:  4,
		LeanDegrees:  9,
		Compression:  0.08,
	},
	StateAirborne: {
		Speed:       0.9,
		SwayDegrees: 3,
		Stretch:     1.06,
		LeanDegrees: 6,
	},
	StateJump: {
		Duration: 0.35,
		Squash:   0.82,
		Stretch:  1.18,
		Rise:     0.12,
	},
	StateLand: {
		Duration: 0.25,
		Squash:   0.75,
		Rise:     0.06,
	},
	StateDamage: {
		Duration:    0.4,
		Jitter:      0.05,
		SpinDegrees: 7,
		FadeTo:      0.55,
	},
	StateCollect: {
		Duration:    0.5,
		Stretch:     1.22,
		SpinDegrees: 360,
	},
	StateDeath: {
		Duration:    1.6,
		Squash:      0.6,
		Rise:        0.35,
		SpinDegrees: 78,
		FadeTo:      0.1,
	},
	StateEchoForm: {
		Speed:       0.3,
		Amplitude:   0.08,
		SwayDegrees: 5,
		Jitter:      0.02,
		FadeTo:      0.55,
	},
	StateDistortion: {
		Speed:       1.1,
		Amplitude:   0.04,
		Jitter:      0.09,
		SwayDegrees: 8,
		ScalePulse:  0.06,
	},
	StateNoiseBeast: {
		Speed:        1.8,
		Amplitude:    0.07,
		BobAmplitude: 0.12,
		Jitter:       0.06,
		SwayDegrees:  10,
		Compression:  0.1,
	},
	StateResolution: {
		Duration:   3,
		Amplitude:  0.05,
		ScalePulse: 0.03,
		FadeTo:     1,
	},
	StateCustom: {
		Speed: 1,
	},
}

// DefaultParams returns a copy of the baseline tuning for id. Unknown ids
// get a zero-motion parameter set.
func DefaultParams(id StateID) Params {
	if p, ok := defaultParams[id]; ok {
		return p
	}
	return Params{Speed: 1}
}
