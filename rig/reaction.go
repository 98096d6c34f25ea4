package rig

import "math"

// Reaction curves are three-phase: onset, hold, recovery, expressed as
// fractions of the reaction duration. The fractions are per-state tuning
// data, not a shared formula — collect deliberately uses a different shape
// than jump/land — but each row must sum to 1.
type reactionPhases struct {
	onset, hold, recover float64
}

var reactionCurve = map[StateID]reactionPhases{
	StateJump:    {0.3, 0, 0.7},
	StateLand:    {0.3, 0, 0.7},
	StateDamage:  {0.2, 0.3, 0.5},
	StateCollect: {0.4, 0, 0.6},
	StateDeath:   {0.25, 0.5, 0.25},
}

// segment returns which phase t falls in (0 onset, 1 hold, 2 recovery) and
// the normalized position within it.
func (ph reactionPhases) segment(t float64) (int, float64) {
	t = Clamp01(t)
	if ph.onset > 0 && t < ph.onset {
		return 0, t / ph.onset
	}
	if ph.hold > 0 && t < ph.onset+ph.hold {
		return 1, (t - ph.onset) / ph.hold
	}
	if ph.recover <= 0 {
		return 2, 1
	}
	return 2, Clamp01((t - ph.onset - ph.hold) / ph.recover)
}

func reactionGenerator(id StateID) Generator {
	switch id {
	case StateJump:
		return JumpReaction
	case StateLand:
		return LandReaction
	case StateDamage:
		return DamageReaction
	case StateCollect:
		return CollectReaction
	case StateDeath:
		return DeathReaction
	}
	return nil
}

// squashScale builds a scale where Y goes to sy and X/Z counter-scale to
// roughly preserve volume.
func squashScale(sy float64) Vec3 {
	counter := 1 + (1-sy)*0.5
	return Vec3{counter, sy, counter}
}

// JumpReaction: anticipation squash into the spring-up stretch. The spring
// segment runs from the onset boundary to the end of the reaction.
func JumpReaction(t float64, p *Params, intensity float64) Sample {
	ph := reactionCurve[StateJump]
	out := IdentitySample()
	seg, u := ph.segment(t)
	if seg == 0 {
		out.Scale = squashScale(Lerp(1, p.Squash, u))
		out.Offset.Y = -p.Rise * 0.3 * u * intensity
		return out
	}
	out.Scale = squashScale(Lerp(p.Squash, p.Stretch, u))
	out.Offset.Y = p.Rise * u * intensity
	return out
}

// LandReaction: impact squash then recovery back to neutral.
func LandReaction(t float64, p *Params, intensity float64) Sample {
	ph := reactionCurve[StateLand]
	out := IdentitySample()
	seg, u := ph.segment(t)
	if seg == 0 {
		out.Scale = squashScale(Lerp(1, p.Squash, u))
		out.Offset.Y = -p.Rise * u * intensity
		return out
	}
	out.Scale = squashScale(Lerp(p.Squash, 1, u))
	out.Offset.Y = -p.Rise * (1 - u) * intensity
	return out
}

// DamageReaction: a sharp tilt and high-frequency shudder that decays
// through recovery, with an alpha flash during the hold.
func DamageReaction(t float64, p *Params, intensity float64) Sample {
	ph := reactionCurve[StateDamage]
	out := IdentitySample()
	seg, u := ph.segment(t)
	shudder := math.Sin(t*40*math.Pi) * p.Jitter * intensity
	switch seg {
	case 0:
		out.Rotation.Z = p.SpinDegrees * u * intensity
		out.Offset.X = shudder
	case 1:
		out.Rotation.Z = p.SpinDegrees * intensity
		out.Offset.X = shudder
		out.Alpha = p.FadeTo
	default:
		fade := 1 - u
		out.Rotation.Z = p.SpinDegrees * fade * intensity
		out.Offset.X = shudder * fade
		out.Alpha = Lerp(p.FadeTo, 1, u)
	}
	return out
}

// CollectReaction: an overshooting pop and a twirl, then settle. Shape is
// intentionally different from jump/land — the pop eases out past its
// target instead of ramping linearly.
func CollectReaction(t float64, p *Params, intensity float64) Sample {
	ph := reactionCurve[StateCollect]
	out := IdentitySample()
	seg, u := ph.segment(t)
	if seg == 0 {
		pop := 1 + (p.Stretch-1)*popEase(u)*intensity
		out.Scale = Vec3{pop, pop, pop}
		out.Rotation.Y = p.SpinDegrees * u * 0.5 * intensity
		return out
	}
	pop := 1 + (p.Stretch-1)*(1-u)*intensity
	out.Scale = Vec3{pop, pop, pop}
	out.Rotation.Y = p.SpinDegrees * (0.5 + u*0.5) * intensity
	return out
}

// DeathReaction: keel over, sink, and fade. Terminal — the sequencer keeps
// this overlay exclusive for its whole duration.
func DeathReaction(t float64, p *Params, intensity float64) Sample {
	t = Clamp01(t)
	out := IdentitySample()
	sink := sinkEase(t)
	out.Offset.Y = -p.Rise * sink * intensity
	out.Rotation.Z = p.SpinDegrees * sink
	out.Scale = squashScale(Lerp(1, p.Squash, sink))
	out.Alpha = Lerp(1, p.FadeTo, t)
	return out
}
