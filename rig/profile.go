package rig

import "math"

// Hook is an optional per-character behavior composed onto the animator's
// output after layer compositing. Hooks replace the per-character subclass
// overrides the original design grew: a profile is data plus an explicit
// function list, not an inheritance chain.
type Hook func(a *Animator, dt float64, out *Sample)

// Profile selects a character's tuning: per-state parameter sets, optional
// hooks, and a playback scale. Profiles are built once (from the config
// tables) and shared read-only between animators.
type Profile struct {
	Name       string
	SpeedScale float64
	Overrides  map[StateID]Params
	Hooks      []Hook
}

// DefaultProfile is a profile with no overrides and no hooks.
func DefaultProfile(name string) *Profile {
	return &Profile{Name: name, SpeedScale: 1}
}

// ParamsFor returns the profile's tuning for a state, falling back to the
// built-in defaults.
func (p *Profile) ParamsFor(id StateID) *Params {
	if p != nil {
		if params, ok := p.Overrides[id]; ok {
			return &params
		}
	}
	params := DefaultParams(id)
	return &params
}

// TeachingGesture raises a periodic beckoning roll when a companion is
// nearby — June pausing to show the way.
func TeachingGesture(period, degrees float64) Hook {
	var clock float64
	return func(a *Animator, dt float64, out *Sample) {
		if !a.ctx.CompanionNearby {
			return
		}
		clock += dt
		if period <= 0 {
			return
		}
		out.Rotation.Y += math.Sin(clock/period*tau) * degrees * a.tone.intensity
	}
}

// StillnessMoment damps motion toward rest whenever the driver reports
// near-zero speed for longer than holdTime, letting a character settle
// completely instead of idling forever.
func StillnessMoment(holdTime, damping float64) Hook {
	var still float64
	return func(a *Animator, dt float64, out *Sample) {
		if a.ctx.Speed < 0.02 {
			still += dt
		} else {
			still = 0
		}
		if still < holdTime {
			return
		}
		k := 1 - Clamp01((still-holdTime)*damping)
		out.Offset = out.Offset.Scale(k)
		out.Rotation = out.Rotation.Scale(k)
	}
}

// GlitchFlourish overlays intermittent positional snaps driven by the
// injected noise source, scaled by drift intensity.
func GlitchFlourish(noise NoiseFunc, amount float64) Hook {
	var clock float64
	return func(a *Animator, dt float64, out *Sample) {
		clock += dt
		n := noise(clock * 13)
		if math.Abs(n) < 0.8 {
			return
		}
		out.Offset.X += n * amount * a.drift
		out.Alpha = Clamp01(out.Alpha - math.Abs(n)*0.3*a.drift)
	}
}

// AlphaPulse breathes the output alpha between min and 1 — Winton's
// translucency flourish, exposed as an output channel for the renderer.
func AlphaPulse(min, period float64) Hook {
	var clock float64
	return func(a *Animator, dt float64, out *Sample) {
		if period <= 0 {
			return
		}
		clock += dt
		pulse := (math.Sin(clock/period*tau) + 1) / 2
		out.Alpha = Clamp01(out.Alpha * Lerp(min, 1, pulse))
	}
}

// ActivityModifier scales all spatial output — society members going about
// quieter or busier routines than the leads.
func ActivityModifier(mult float64) Hook {
	return func(a *Animator, dt float64, out *Sample) {
		out.Offset = out.Offset.Scale(mult)
		out.Rotation = out.Rotation.Scale(mult)
	}
}
