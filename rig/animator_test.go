package rig

import (
	"testing"
)

func step(a *Animator, total, dt float64) {
	for total > 1e-9 {
		d := dt
		if d > total {
			d = total
		}
		a.Update(d, Context{})
		total -= d
	}
}

func TestNewStartsIdleOnBase(t *testing.T) {
	a := New(nil)
	cur := a.CurrentState(LayerBase)
	if cur == nil || cur.ID != StateIdle {
		t.Fatalf("base layer = %v, want idle", cur)
	}
	if a.IsTransitioning(LayerBase) {
		t.Error("fresh animator reports an in-flight transition")
	}
	if a.LayerCount() != 4 {
		t.Errorf("layer count = %d, want 4", a.LayerCount())
	}
}

func TestTransitionSameStateIsNoOp(t *testing.T) {
	a := New(nil)
	before := a.CurrentState(LayerBase)
	a.TransitionTo(a.NewState(StateIdle), LayerBase, 0.3)
	if a.CurrentState(LayerBase) != before {
		t.Error("transition to the current state replaced it")
	}
	if a.IsTransitioning(LayerBase) {
		t.Error("transition to the current state started a blend")
	}
}

func TestTransitionCompletes(t *testing.T) {
	a := New(nil)
	walk := a.NewState(StateWalk)
	a.TransitionTo(walk, LayerBase, 0.5)

	if got := a.CurrentState(LayerBase); got != walk {
		t.Fatalf("current = %v, want walk immediately on request", got)
	}
	if !a.IsTransitioning(LayerBase) {
		t.Fatal("no blend in flight after transition request")
	}

	a.Update(0.25, Context{})
	approx(t, "midway progress", a.Layer(LayerBase).Progress(), 0.5, 1e-9)

	a.Update(0.25, Context{})
	if a.IsTransitioning(LayerBase) {
		t.Error("blend still in flight after full duration")
	}
	approx(t, "final progress", a.Layer(LayerBase).Progress(), 1, 1e-9)
	if a.Layer(LayerBase).Previous() != nil {
		t.Error("previous state not released after blend completion")
	}
}

func TestTransitionProgressMonotonic(t *testing.T) {
	a := New(nil)
	a.TransitionTo(a.NewState(StateRun), LayerBase, 1)
	last := a.Layer(LayerBase).Progress()
	for i := 0; i < 40; i++ {
		a.Update(0.03, Context{})
		p := a.Layer(LayerBase).Progress()
		if p < last {
			t.Fatalf("progress decreased: %v -> %v", last, p)
		}
		if p < 0 || p > 1 {
			t.Fatalf("progress out of range: %v", p)
		}
		last = p
	}
	approx(t, "clamped at end", last, 1, 1e-9)
}

func TestZeroBlendTimeIsImmediate(t *testing.T) {
	a := New(nil)
	var exited []StateID
	a.OnStateExited(func(layer int, s *State) { exited = append(exited, s.ID) })

	a.TransitionTo(a.NewState(StateWalk), LayerBase, 0)
	if a.IsTransitioning(LayerBase) {
		t.Error("immediate swap left a blend in flight")
	}
	if got := a.CurrentState(LayerBase).ID; got != StateWalk {
		t.Errorf("current = %v, want walk", got)
	}
	if len(exited) != 1 || exited[0] != StateIdle {
		t.Errorf("exited = %v, want [idle] synchronously", exited)
	}
}

func TestReentrantTransitionDiscardsWithoutExit(t *testing.T) {
	a := New(nil)
	idleExited := false
	a.CurrentState(LayerBase).OnExit = func(*State) { idleExited = true }

	a.TransitionTo(a.NewState(StateWalk), LayerBase, 1)
	a.Update(0.2, Context{})
	// Interrupt mid-blend: walk becomes previous, idle is dropped silently.
	a.TransitionTo(a.NewState(StateRun), LayerBase, 1)

	if got := a.Layer(LayerBase).Previous().ID; got != StateWalk {
		t.Errorf("previous = %v, want walk after interruption", got)
	}
	step(a, 1.2, 0.1)
	if idleExited {
		t.Error("discarded state fired its exit hook")
	}
}

func TestEnterAndExitFireOnce(t *testing.T) {
	a := New(nil)
	var enters, exits int
	walk := a.NewState(StateWalk)
	walk.OnEnter = func(*State) { enters++ }
	walk.OnExit = func(*State) { exits++ }

	a.TransitionTo(walk, LayerBase, 0.2)
	step(a, 0.4, 0.05)
	a.TransitionTo(a.NewState(StateIdle), LayerBase, 0.2)
	step(a, 0.4, 0.05)

	if enters != 1 {
		t.Errorf("OnEnter fired %d times, want 1", enters)
	}
	if exits != 1 {
		t.Errorf("OnExit fired %d times, want 1", exits)
	}
}

func TestInvalidLayerIndexIsSilent(t *testing.T) {
	a := New(nil)
	a.TransitionTo(a.NewState(StateWalk), -1, 0.2)
	a.TransitionTo(a.NewState(StateWalk), 99, 0.2)
	a.SetStateImmediate(a.NewState(StateWalk), 99)
	a.SetLayerWeight(99, 0.5)
	a.SetLayerBlendMode(-1, BlendAdditive)

	if a.CurrentState(99) != nil {
		t.Error("invalid index returned a state")
	}
	if a.IsTransitioning(-1) {
		t.Error("invalid index reports a transition")
	}
	if a.Layer(99) != nil {
		t.Error("invalid index returned a layer")
	}
	if got := a.CurrentState(LayerBase).ID; got != StateIdle {
		t.Errorf("base layer disturbed by invalid-index calls: %v", got)
	}
}

func TestNilStateIsSilent(t *testing.T) {
	a := New(nil)
	a.TransitionTo(nil, LayerBase, 0.2)
	a.SetStateImmediate(nil, LayerBase)
	if got := a.CurrentState(LayerBase).ID; got != StateIdle {
		t.Errorf("base layer disturbed by nil state: %v", got)
	}
}

func TestLayerWeightClamped(t *testing.T) {
	a := New(nil)
	a.SetLayerWeight(LayerBase, 1.7)
	approx(t, "over weight", a.Layer(LayerBase).Weight, 1, 1e-9)
	a.SetLayerWeight(LayerBase, -0.3)
	approx(t, "under weight", a.Layer(LayerBase).Weight, 0, 1e-9)
}

func TestCompositeOverridePlusAdditive(t *testing.T) {
	layers := []Layer{
		{Weight: 1, Mode: BlendOverride, current: NewState(StateCustom, nil)},
		{Weight: 0.5, Mode: BlendAdditive, current: NewState(StateCustom, nil)},
	}
	samples := []Sample{
		{Offset: Vec3{0, 1, 0}, Scale: One, Alpha: 1},
		{Offset: Vec3{2, 0, 0}, Scale: One, Alpha: 1},
	}
	out := composite(layers, samples)
	approx(t, "Offset.X", out.Offset.X, 1, 1e-9)
	approx(t, "Offset.Y", out.Offset.Y, 1, 1e-9)
	approx(t, "Offset.Z", out.Offset.Z, 0, 1e-9)
}

func TestCompositeMultiplyTouchesScaleOnly(t *testing.T) {
	layers := []Layer{
		{Weight: 1, Mode: BlendOverride, current: NewState(StateCustom, nil)},
		{Weight: 1, Mode: BlendMultiply, current: NewState(StateCustom, nil)},
	}
	samples := []Sample{
		{Offset: Vec3{0.1, 0.2, 0}, Rotation: Vec3{0, 0, 5}, Scale: One, Alpha: 1},
		{Offset: Vec3{9, 9, 9}, Rotation: Vec3{45, 45, 45}, Scale: Vec3{1.1, 0.9, 1.1}, Alpha: 0.2},
	}
	out := composite(layers, samples)
	approx(t, "Offset.X", out.Offset.X, 0.1, 1e-9)
	approx(t, "Rotation.Z", out.Rotation.Z, 5, 1e-9)
	approx(t, "Scale.Y", out.Scale.Y, 0.9, 1e-9)
	approx(t, "Alpha", out.Alpha, 1, 1e-9)
}

func TestCompositeSkipsZeroWeightLayers(t *testing.T) {
	layers := []Layer{
		{Weight: 1, Mode: BlendOverride, current: NewState(StateCustom, nil)},
		{Weight: 0, Mode: BlendAdditive, current: NewState(StateCustom, nil)},
	}
	samples := []Sample{
		{Offset: Vec3{0, 1, 0}, Scale: One, Alpha: 1},
		{Offset: Vec3{100, 100, 100}, Scale: One, Alpha: 1},
	}
	out := composite(layers, samples)
	approx(t, "Offset.Y", out.Offset.Y, 1, 1e-9)
	approx(t, "Offset.X", out.Offset.X, 0, 1e-9)
}

func TestToneRampIsLinearAndBounded(t *testing.T) {
	a := New(nil)
	a.SetToneTransitionTime(1)
	a.SetTone(ToneMelancholic)

	a.Update(0.5, Context{})
	approx(t, "intensity midway", a.ToneIntensity(), 0.75, 1e-3)
	approx(t, "speed midway", a.ToneSpeed(), 0.9, 1e-3)

	a.Update(0.5, Context{})
	approx(t, "intensity settled", a.ToneIntensity(), 0.5, 1e-3)
	approx(t, "speed settled", a.ToneSpeed(), 0.8, 1e-3)

	// Long past the transition window: never drifts beyond the target.
	step(a, 3, 0.1)
	approx(t, "intensity held", a.ToneIntensity(), 0.5, 1e-3)
}

func TestToneChangeNotifiesOnce(t *testing.T) {
	a := New(nil)
	var changes []Tone
	a.OnToneChanged(func(tone Tone) { changes = append(changes, tone) })
	a.SetTone(ToneHopeful)
	a.SetTone(ToneHopeful)
	if len(changes) != 1 || changes[0] != ToneHopeful {
		t.Errorf("tone notifications = %v, want one hopeful", changes)
	}
}

func TestToneZeroTransitionSnaps(t *testing.T) {
	a := New(nil)
	a.SetToneTransitionTime(0)
	a.SetTone(ToneResolute)
	approx(t, "intensity", a.ToneIntensity(), 1.3, 1e-9)
	approx(t, "speed", a.ToneSpeed(), 1.05, 1e-9)
}

func TestReactionLifecycle(t *testing.T) {
	a := New(nil)
	var entered, exited []StateID
	a.OnStateEntered(func(layer int, s *State) { entered = append(entered, s.ID) })
	a.OnStateExited(func(layer int, s *State) { exited = append(exited, s.ID) })

	if !a.StartReaction(StateCollect, 0.3) {
		t.Fatal("collect reaction rejected")
	}
	if !a.IsReacting() || a.ReactionID() != StateCollect {
		t.Fatal("reaction not reported as active")
	}
	step(a, 0.5, 0.05)
	if a.IsReacting() {
		t.Error("reaction still active past its duration")
	}

	var sawEnter, sawExit bool
	for _, id := range entered {
		if id == StateCollect {
			sawEnter = true
		}
	}
	for _, id := range exited {
		if id == StateCollect {
			sawExit = true
		}
	}
	if !sawEnter || !sawExit {
		t.Errorf("lifecycle events: entered=%v exited=%v, want collect in both", entered, exited)
	}
}

func TestReactionRejectsNonReactionStates(t *testing.T) {
	a := New(nil)
	for _, id := range []StateID{StateIdle, StateWalk, StateEchoForm, StateResolution} {
		if a.StartReaction(id, 0.5) {
			t.Errorf("StartReaction accepted %v", id)
		}
	}
}

func TestDeathIsTerminal(t *testing.T) {
	a := New(nil)
	if !a.StartReaction(StateDeath, 1) {
		t.Fatal("death reaction rejected")
	}
	if a.StartReaction(StateDamage, 0.3) {
		t.Error("damage reaction accepted during death")
	}
	a.TransitionTo(a.NewState(StateWalk), LayerBase, 0.2)
	if got := a.CurrentState(LayerBase).ID; got != StateIdle {
		t.Errorf("base transition accepted during death: %v", got)
	}
	// Non-base layers stay responsive so ambient channels can wind down.
	a.TransitionTo(a.NewState(StateIdle), LayerEmotion, 0.2)
	if got := a.CurrentState(LayerEmotion); got == nil || got.ID != StateIdle {
		t.Error("emotion layer locked out during death")
	}

	step(a, 1.2, 0.1)
	if a.IsReacting() {
		t.Error("death overlay never released")
	}
	if !a.StartReaction(StateLand, 0.2) {
		t.Error("reactions still locked after death completed")
	}
}

func TestNonDeathReactionIsReplaceable(t *testing.T) {
	a := New(nil)
	a.StartReaction(StateDamage, 1)
	if !a.StartReaction(StateJump, 0.3) {
		t.Error("jump could not replace a running damage reaction")
	}
	if a.ReactionID() != StateJump {
		t.Errorf("reaction = %v, want jump", a.ReactionID())
	}
}

func TestEndReactionCancels(t *testing.T) {
	a := New(nil)
	a.StartReaction(StateDeath, 5)
	a.EndReaction()
	if a.IsReacting() {
		t.Error("EndReaction left the overlay active")
	}
	if !a.StartReaction(StateJump, 0.2) {
		t.Error("death lock survived EndReaction")
	}
}

func TestInstantReactionFiresBothEvents(t *testing.T) {
	a := New(nil)
	var entered, exited int
	a.OnStateEntered(func(int, *State) { entered++ })
	a.OnStateExited(func(int, *State) { exited++ })
	if !a.StartReaction(StateLand, 0) {
		t.Fatal("zero-duration reaction rejected")
	}
	if a.IsReacting() {
		t.Error("zero-duration reaction left overlay active")
	}
	if entered != 1 || exited != 1 {
		t.Errorf("events entered=%d exited=%d, want 1/1", entered, exited)
	}
}

func TestDriftIntensityClamped(t *testing.T) {
	a := New(nil)
	a.SetDriftIntensity(2)
	approx(t, "over drift", a.DriftIntensity(), 1, 1e-9)
	a.SetDriftIntensity(-1)
	approx(t, "under drift", a.DriftIntensity(), 0, 1e-9)
}

func TestDriftScalesPatternIntensityOnly(t *testing.T) {
	a := New(nil)
	pattern := NewState(StateEchoForm, nil)
	plain := NewState(StateIdle, nil)

	a.SetDriftIntensity(0)
	calm := a.intensityFor(pattern)
	a.SetDriftIntensity(1)
	wild := a.intensityFor(pattern)
	if calm >= wild {
		t.Errorf("pattern intensity calm=%v wild=%v, want calm < wild", calm, wild)
	}
	approx(t, "non-pattern intensity", a.intensityFor(plain), 1, 1e-9)
}

func TestMotionScaleDampsOutput(t *testing.T) {
	full := New(nil)
	damped := New(nil)
	damped.SetMotionScale(0.3)

	full.Update(0.4, Context{})
	damped.Update(0.4, Context{})

	if f, d := full.OutputPosition().Y, damped.OutputPosition().Y; d != 0 && !(absf(d) < absf(f)) {
		t.Errorf("damped offset %v not smaller than full %v", d, f)
	}
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func TestNegativeDtIsIgnored(t *testing.T) {
	a := New(nil)
	a.TransitionTo(a.NewState(StateWalk), LayerBase, 0.5)
	a.Update(0.2, Context{})
	before := a.Layer(LayerBase).Progress()
	a.Update(-5, Context{})
	approx(t, "progress after negative dt", a.Layer(LayerBase).Progress(), before, 1e-9)
}

func TestProfileOverridesApply(t *testing.T) {
	p := DefaultProfile("winton")
	override := DefaultParams(StateIdle)
	override.Amplitude = 0.2
	p.Overrides = map[StateID]Params{StateIdle: override}

	a := New(p)
	if got := a.CurrentState(LayerBase).Params.Amplitude; got != 0.2 {
		t.Errorf("idle amplitude = %v, want profile override 0.2", got)
	}
}

func TestActivityModifierHookScalesOutput(t *testing.T) {
	quiet := DefaultProfile("member")
	quiet.Hooks = []Hook{ActivityModifier(0.5)}

	plain := New(nil)
	hooked := New(quiet)
	plain.Update(0.4, Context{})
	hooked.Update(0.4, Context{})

	approx(t, "hooked offset", hooked.OutputPosition().Y, plain.OutputPosition().Y*0.5, 1e-9)
}

func TestOutputAlphaStaysInRange(t *testing.T) {
	a := New(nil)
	a.StartReaction(StateDeath, 1)
	for i := 0; i < 30; i++ {
		a.Update(0.05, Context{})
		if alpha := a.OutputAlpha(); alpha < 0 || alpha > 1 {
			t.Fatalf("alpha out of range at step %d: %v", i, alpha)
		}
	}
}
