package rig

import (
	"math"
	"testing"
)

func approx(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v (±%v)", name, got, want, tol)
	}
}

func TestTransitionEaseBoundaries(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{0.5, 0.5},
		{1, 1},
	}
	for _, c := range cases {
		approx(t, "TransitionEase", TransitionEase(c.in), c.want, 1e-6)
	}
}

func TestIdleMotionQuarterPhase(t *testing.T) {
	p := DefaultParams(StateIdle)
	p.Amplitude = 0.03

	s := IdleMotion(0.25, &p, 1)
	approx(t, "Offset.Y at peak", s.Offset.Y, 0.03, 1e-9)

	s = IdleMotion(0, &p, 1)
	approx(t, "Offset.Y at rest", s.Offset.Y, 0, 1e-9)

	s = IdleMotion(0.75, &p, 1)
	approx(t, "Offset.Y at trough", s.Offset.Y, -0.03, 1e-9)
}

func TestIdleMotionIntensityScales(t *testing.T) {
	p := DefaultParams(StateIdle)
	full := IdleMotion(0.25, &p, 1)
	half := IdleMotion(0.25, &p, 0.5)
	approx(t, "half intensity offset", half.Offset.Y, full.Offset.Y*0.5, 1e-9)
	approx(t, "half intensity sway", half.Rotation.Z, full.Rotation.Z*0.5, 1e-9)
}

func TestLocomotionBobNeverNegative(t *testing.T) {
	p := DefaultParams(StateRun)
	for phase := 0.0; phase < 2; phase += 0.01 {
		s := LocomotionMotion(phase, &p, 1)
		if s.Offset.Y < 0 {
			t.Fatalf("bob dipped below rest at phase %v: %v", phase, s.Offset.Y)
		}
	}
}

func TestLocomotionFootfallsTwicePerCycle(t *testing.T) {
	p := DefaultParams(StateWalk)
	// Peaks at quarter and three-quarter phase, rest at half.
	peak1 := LocomotionMotion(0.25, &p, 1).Offset.Y
	rest := LocomotionMotion(0.5, &p, 1).Offset.Y
	peak2 := LocomotionMotion(0.75, &p, 1).Offset.Y
	approx(t, "first footfall", peak1, p.BobAmplitude, 1e-9)
	approx(t, "midcycle rest", rest, 0, 1e-9)
	approx(t, "second footfall", peak2, p.BobAmplitude, 1e-9)
}

func TestReactionPhasesSumToOne(t *testing.T) {
	for id, ph := range reactionCurve {
		sum := ph.onset + ph.hold + ph.recover
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("%v phases sum to %v, want 1", id, sum)
		}
	}
}

func TestJumpReactionMidpoint(t *testing.T) {
	p := DefaultParams(StateJump)
	s := JumpReaction(0.5, &p, 1)

	// Past the anticipation squash, partway up the spring: scale recovering
	// from squash toward stretch, offset rising.
	u := (0.5 - 0.3) / 0.7
	approx(t, "Scale.Y", s.Scale.Y, Lerp(p.Squash, p.Stretch, u), 1e-9)
	approx(t, "Offset.Y", s.Offset.Y, p.Rise*u, 1e-9)
	if s.Scale.Y <= p.Squash || s.Scale.Y >= p.Stretch {
		t.Errorf("Scale.Y = %v, want strictly between squash %v and stretch %v", s.Scale.Y, p.Squash, p.Stretch)
	}
}

func TestJumpReactionEndpoints(t *testing.T) {
	p := DefaultParams(StateJump)
	start := JumpReaction(0, &p, 1)
	approx(t, "start Scale.Y", start.Scale.Y, 1, 1e-9)
	end := JumpReaction(1, &p, 1)
	approx(t, "end Scale.Y", end.Scale.Y, p.Stretch, 1e-9)
}

func TestLandReactionReturnsToNeutral(t *testing.T) {
	p := DefaultParams(StateLand)
	s := LandReaction(1, &p, 1)
	approx(t, "Scale.Y", s.Scale.Y, 1, 1e-9)
	approx(t, "Offset.Y", s.Offset.Y, 0, 1e-9)
}

func TestDeathReactionFadesAndSinks(t *testing.T) {
	p := DefaultParams(StateDeath)
	end := DeathReaction(1, &p, 1)
	approx(t, "final alpha", end.Alpha, p.FadeTo, 1e-9)
	if end.Offset.Y >= 0 {
		t.Errorf("final Offset.Y = %v, want below rest", end.Offset.Y)
	}
	mid := DeathReaction(0.5, &p, 1)
	if mid.Alpha <= end.Alpha || mid.Alpha >= 1 {
		t.Errorf("mid alpha = %v, want between %v and 1", mid.Alpha, end.Alpha)
	}
}

func TestDamageReactionFlashAndRecovery(t *testing.T) {
	p := DefaultParams(StateDamage)
	hold := DamageReaction(0.35, &p, 1) // inside the 0.2..0.5 hold window
	approx(t, "hold alpha", hold.Alpha, p.FadeTo, 1e-9)
	end := DamageReaction(1, &p, 1)
	approx(t, "recovered alpha", end.Alpha, 1, 1e-9)
	approx(t, "recovered tilt", end.Rotation.Z, 0, 1e-9)
}

func TestCollectReactionOvershoots(t *testing.T) {
	p := DefaultParams(StateCollect)
	var peak float64
	for u := 0.0; u <= 1; u += 0.01 {
		s := CollectReaction(u, &p, 1)
		if s.Scale.Y > peak {
			peak = s.Scale.Y
		}
	}
	if peak <= p.Stretch {
		t.Errorf("pop peak %v never overshot stretch target %v", peak, p.Stretch)
	}
}

func TestValueNoiseDeterministic(t *testing.T) {
	a := ValueNoise(42)
	b := ValueNoise(42)
	other := ValueNoise(7)
	var differs bool
	for i := 0; i < 50; i++ {
		x := float64(i) * 0.37
		if a(x) != b(x) {
			t.Fatalf("same seed diverged at t=%v: %v vs %v", x, a(x), b(x))
		}
		if v := a(x); v < -1 || v > 1 {
			t.Fatalf("noise out of range at t=%v: %v", x, v)
		}
		if a(x) != other(x) {
			differs = true
		}
	}
	if !differs {
		t.Error("different seeds produced identical streams")
	}
}

func TestPatternGeneratorsDeterministicWithInjectedNoise(t *testing.T) {
	gens := map[string]func(NoiseFunc) Generator{
		"echo_form":   EchoFormMotion,
		"distortion":  DistortionMotion,
		"noise_beast": NoiseBeastMotion,
	}
	for name, build := range gens {
		t.Run(name, func(t *testing.T) {
			var id StateID
			switch name {
			case "echo_form":
				id = StateEchoForm
			case "distortion":
				id = StateDistortion
			default:
				id = StateNoiseBeast
			}
			p := DefaultParams(id)
			g1 := build(ValueNoise(99))
			g2 := build(ValueNoise(99))
			for phase := 0.0; phase < 3; phase += 0.17 {
				s1 := g1(phase, &p, 1)
				s2 := g2(phase, &p, 1)
				if s1 != s2 {
					t.Fatalf("diverged at phase %v: %+v vs %+v", phase, s1, s2)
				}
			}
		})
	}
}

func TestDefaultParamsReturnsCopy(t *testing.T) {
	p := DefaultParams(StateIdle)
	p.Amplitude = 99
	if DefaultParams(StateIdle).Amplitude == 99 {
		t.Fatal("mutating the returned params leaked into the defaults table")
	}
}
