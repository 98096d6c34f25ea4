package rig

import "math"

// Antagonist pattern generators. These animate drift manifestations — the
// visible forms bias takes in the world — so their motion is deliberately
// unsettled: noise-driven offsets layered over slow periodic sway. Each
// constructor takes the noise source explicitly; the animator scales their
// intensity by the current drift level.

// NewPatternState builds a pattern state with an injected noise source.
func NewPatternState(id StateID, params *Params, noise NoiseFunc) *State {
	s := NewState(id, params)
	switch id {
	case StateEchoForm:
		s.generator = EchoFormMotion(noise)
	case StateDistortion:
		s.generator = DistortionMotion(noise)
	case StateNoiseBeast:
		s.generator = NoiseBeastMotion(noise)
	}
	return s
}

// EchoFormMotion: a half-present figure. Slow drifting sway, translucent,
// with a faint shimmer riding the noise signal.
func EchoFormMotion(noise NoiseFunc) Generator {
	return func(phase float64, p *Params, intensity float64) Sample {
		out := IdentitySample()
		out.Offset.X = noise(phase*0.7) * p.Amplitude * intensity
		out.Offset.Y = math.Sin(phase*tau)*p.Amplitude*0.5*intensity + noise(phase*0.7+37)*p.Jitter*intensity
		out.Rotation.Z = math.Sin(phase*tau*0.5) * p.SwayDegrees * intensity
		out.Alpha = p.FadeTo + 0.25*math.Sin(phase*tau)*intensity
		return out
	}
}

// DistortionMotion: space that changes its own rules. Jittering offsets,
// skewed roll, and a warbling scale that never settles.
func DistortionMotion(noise NoiseFunc) Generator {
	return func(phase float64, p *Params, intensity float64) Sample {
		out := IdentitySample()
		out.Offset.X = noise(phase*5) * p.Jitter * intensity
		out.Offset.Y = noise(phase*5+91) * p.Jitter * intensity
		out.Rotation.Z = noise(phase*3+17) * p.SwayDegrees * intensity
		warble := 1 + noise(phase*4+53)*p.ScalePulse*intensity
		out.Scale = Vec3{warble, 2 - warble, warble}
		return out
	}
}

// NoiseBeastMotion: the loudest manifestation. A pounding rectified-sine
// stomp with a noise rumble on top, compressing hard on each beat.
func NoiseBeastMotion(noise NoiseFunc) Generator {
	return func(phase float64, p *Params, intensity float64) Sample {
		stomp := math.Abs(math.Sin(phase * tau))
		out := IdentitySample()
		out.Offset.Y = stomp*p.BobAmplitude*intensity + noise(phase*8)*p.Jitter*intensity
		out.Offset.X = noise(phase*8+29) * p.Jitter * intensity
		out.Rotation.Z = math.Sin(phase*tau) * p.SwayDegrees * intensity
		crush := stomp * p.Compression * intensity
		out.Scale = Vec3{1 + crush, 1 - crush, 1 + crush}
		return out
	}
}
