package rig

import "math"

// Generator is a pure motion function: given a phase (cycles for periodic
// states, normalized progress for finite ones), a read-only parameter set,
// and an intensity multiplier, it produces a pose sample. Deterministic —
// chaotic generators take an injected noise function at construction so
// their output is reproducible in tests.
type Generator func(phase float64, p *Params, intensity float64) Sample

const tau = 2 * math.Pi

// generatorFor resolves the built-in generator for a state id. Pattern
// states get the package-default noise source; use NewPatternState to
// inject a different one.
func generatorFor(id StateID) Generator {
	switch id {
	case StateIdle:
		return IdleMotion
	case StateWalk, StateRun:
		return LocomotionMotion
	case StateAirborne:
		return AirborneMotion
	case StateJump, StateLand, StateDamage, StateCollect, StateDeath:
		return reactionGenerator(id)
	case StateEchoForm:
		return EchoFormMotion(defaultNoise)
	case StateDistortion:
		return DistortionMotion(defaultNoise)
	case StateNoiseBeast:
		return NoiseBeastMotion(defaultNoise)
	case StateResolution:
		return ResolutionMotion
	}
	return func(float64, *Params, float64) Sample { return IdentitySample() }
}

// IdleMotion is the breathing cycle: a sinusoidal vertical rise paired with
// a matching scale pulse and a slow roll sway.
func IdleMotion(phase float64, p *Params, intensity float64) Sample {
	wave := math.Sin(phase * tau)
	out := IdentitySample()
	out.Offset.Y = wave * p.Amplitude * intensity
	out.Rotation.Z = math.Sin(phase*tau*0.5) * p.SwayDegrees * intensity
	breathe := 1 + wave*p.ScalePulse*intensity
	out.Scale = Vec3{breathe, breathe, breathe}
	return out
}

// LocomotionMotion is the walk/run cycle. The rectified sine bob lands a
// footfall twice per cycle and rests once; scale compression couples to the
// same rhythm so the figure pounds into each step.
func LocomotionMotion(phase float64, p *Params, intensity float64) Sample {
	footfall := math.Abs(math.Sin(phase * tau))
	out := IdentitySample()
	out.Offset.Y = footfall * p.BobAmplitude * intensity
	out.Rotation.Z = math.Sin(phase*tau) * p.SwayDegrees * intensity
	out.Rotation.X = p.LeanDegrees * intensity
	squash := footfall * p.Compression * intensity
	out.Scale = Vec3{1 + squash*0.5, 1 - squash, 1 + squash*0.5}
	return out
}

// AirborneMotion holds a stretched silhouette with a gentle wobble while
// the character is off the ground.
func AirborneMotion(phase float64, p *Params, intensity float64) Sample {
	out := IdentitySample()
	out.Rotation.Z = math.Sin(phase*tau) * p.SwayDegrees * intensity
	out.Rotation.X = p.LeanDegrees * intensity
	if p.Stretch > 0 {
		stretch := 1 + (p.Stretch-1)*intensity
		out.Scale = Vec3{1 - (stretch-1)*0.5, stretch, 1 - (stretch-1)*0.5}
	}
	return out
}

// ResolutionMotion is the finale overlay: breath that settles as progress
// approaches 1, alpha restored to fully present.
func ResolutionMotion(phase float64, p *Params, intensity float64) Sample {
	settle := 1 - Clamp01(phase)
	wave := math.Sin(phase * 6 * tau)
	out := IdentitySample()
	out.Offset.Y = wave * p.Amplitude * settle * intensity
	pulse := 1 + wave*p.ScalePulse*settle*intensity
	out.Scale = Vec3{pulse, pulse, pulse}
	out.Alpha = Lerp(1, p.FadeTo, Clamp01(phase))
	return out
}
