package rig

// Context is the per-tick world snapshot the driver hands the animator.
// The animator never reaches into game state on its own; everything it
// needs to react to arrives here.
type Context struct {
	Grounded         bool
	VerticalVelocity float64
	Speed            float64 // horizontal speed, world units per second
	MoveDir          Vec3
	CompanionNearby  bool
}

// StateListener observes state lifecycle events on a layer.
type StateListener func(layer int, s *State)

// ToneListener observes tone changes.
type ToneListener func(t Tone)

const defaultLayerCount = 4

// Animator is one character's layered animation stack: per-layer state
// machines, a one-shot reaction sequencer, and a tone modulator, composited
// into a single output transform each tick.
//
// An Animator is not safe for concurrent use; each character owns one and
// drives it from the update loop.
type Animator struct {
	layers     [MaxLayers]Layer
	layerCount int

	profile *Profile
	tone    toneState
	seq     sequencer

	drift       float64 // chaotic pattern scale, [0,1]
	motionScale float64 // accessibility damping, [0,1]

	ctx Context
	out Sample

	entered     []StateListener
	exited      []StateListener
	toneChanged []ToneListener
}

// New builds an animator with the conventional four-layer stack: an
// Override base, an Additive gesture layer, a low-weight Additive emotion
// layer, and a Multiply breath layer. The base layer starts in idle.
func New(profile *Profile) *Animator {
	if profile == nil {
		profile = DefaultProfile("default")
	}
	a := &Animator{
		layerCount:  defaultLayerCount,
		profile:     profile,
		tone:        newToneState(),
		motionScale: 1,
		out:         IdentitySample(),
	}
	a.layers[LayerBase] = Layer{Weight: 1, Mode: BlendOverride}
	a.layers[LayerGesture] = Layer{Weight: 1, Mode: BlendAdditive}
	a.layers[LayerEmotion] = Layer{Weight: 0.35, Mode: BlendAdditive}
	a.layers[LayerBreath] = Layer{Weight: 1, Mode: BlendMultiply}
	a.SetStateImmediate(a.NewState(StateIdle), LayerBase)
	return a
}

// Profile returns the animator's character profile.
func (a *Animator) Profile() *Profile { return a.profile }

// LayerCount returns the number of layers in the stack.
func (a *Animator) LayerCount() int { return a.layerCount }

// NewState builds a state for id using the profile's parameter overrides.
func (a *Animator) NewState(id StateID) *State {
	return NewState(id, a.profile.ParamsFor(id))
}

// Update advances the whole stack by dt seconds and recomposites the
// output. Negative dt is treated as zero.
func (a *Animator) Update(dt float64, ctx Context) {
	if dt < 0 {
		dt = 0
	}
	a.ctx = ctx
	a.tone.update(dt)

	if done := a.seq.update(dt); done != nil {
		done.exit()
		a.notifyExited(LayerBase, done)
	}

	speedMul := a.tone.speed
	if a.profile.SpeedScale > 0 {
		speedMul *= a.profile.SpeedScale
	}

	var samples [MaxLayers]Sample
	for i := 0; i < a.layerCount; i++ {
		if done := a.layers[i].update(dt, speedMul); done != nil {
			done.exit()
			a.notifyExited(i, done)
		}
		samples[i] = a.layers[i].output(a.intensityFor(a.layers[i].current))
	}
	if a.seq.active {
		samples[LayerBase] = a.seq.sample(a.intensityFor(a.seq.state))
	}

	out := composite(a.layers[:a.layerCount], samples[:a.layerCount])
	for _, h := range a.profile.Hooks {
		h(a, dt, &out)
	}
	a.out = out
}

// intensityFor is the effective spatial intensity for a state: the tone
// multiplier damped by the accessibility scale, and for antagonist drift
// patterns additionally scaled by the drift setting so a becalmed antagonist
// barely stirs.
func (a *Animator) intensityFor(s *State) float64 {
	intensity := a.tone.intensity * a.motionScale
	if s != nil && s.ID.Pattern() {
		intensity *= 0.35 + 0.65*a.drift
	}
	return intensity
}

// StartReaction plays a one-shot reaction overlay on the base layer for
// duration seconds. Returns false if the request was rejected (not a
// reaction id, or a death overlay is running). A running non-death reaction
// is replaced; its exit hook does not fire. A non-positive duration
// completes instantly: enter and exit fire back to back with no overlay.
func (a *Animator) StartReaction(id StateID, duration float64) bool {
	if duration <= 0 {
		if !id.Reaction() || a.seq.deathLock() {
			return false
		}
		s := NewState(id, a.profile.ParamsFor(id))
		s.enter()
		a.notifyEntered(LayerBase, s)
		s.exit()
		a.notifyExited(LayerBase, s)
		return true
	}
	if !a.seq.start(id, duration, a.profile.ParamsFor(id)) {
		return false
	}
	s := a.seq.state
	s.enter()
	a.notifyEntered(LayerBase, s)
	return true
}

// EndReaction cancels the active reaction, death included, firing its exit
// hook. No-op when nothing is playing.
func (a *Animator) EndReaction() {
	if !a.seq.active {
		return
	}
	done := a.seq.state
	a.seq.stop()
	if done != nil {
		done.exit()
		a.notifyExited(LayerBase, done)
	}
}

// IsReacting reports whether a reaction overlay is playing.
func (a *Animator) IsReacting() bool { return a.seq.active }

// ReactionID returns the playing reaction's id, or StateNone.
func (a *Animator) ReactionID() StateID { return a.seq.id }

// SetTone retargets the emotional register. The intensity and speed
// multipliers ramp linearly to the new tone's values over the configured
// transition time. Setting the current tone again is a no-op.
func (a *Animator) SetTone(t Tone) {
	if t == a.tone.tone {
		return
	}
	a.tone.set(t)
	for _, fn := range a.toneChanged {
		fn(a.tone.tone)
	}
}

// Tone returns the active tone.
func (a *Animator) Tone() Tone { return a.tone.tone }

// ToneIntensity returns the current (possibly mid-ramp) intensity
// multiplier.
func (a *Animator) ToneIntensity() float64 { return a.tone.intensity }

// ToneSpeed returns the current (possibly mid-ramp) speed multiplier.
func (a *Animator) ToneSpeed() float64 { return a.tone.speed }

// SetToneTransitionTime sets how long future tone changes take to settle.
// Non-positive snaps instantly.
func (a *Animator) SetToneTransitionTime(seconds float64) {
	a.tone.transitionTime = seconds
}

// SetDriftIntensity sets the antagonist drift scale, clamped to [0,1].
func (a *Animator) SetDriftIntensity(v float64) { a.drift = Clamp01(v) }

// DriftIntensity returns the drift scale.
func (a *Animator) DriftIntensity() float64 { return a.drift }

// SetMotionScale damps all spatial output, clamped to [0,1]. The reduced
// motion accessibility setting drives this.
func (a *Animator) SetMotionScale(v float64) { a.motionScale = Clamp01(v) }

// MotionScale returns the accessibility damping factor.
func (a *Animator) MotionScale() float64 { return a.motionScale }

// OnStateEntered registers a listener for state entry on any layer.
func (a *Animator) OnStateEntered(fn StateListener) {
	a.entered = append(a.entered, fn)
}

// OnStateExited registers a listener for state exit on any layer.
func (a *Animator) OnStateExited(fn StateListener) {
	a.exited = append(a.exited, fn)
}

// OnToneChanged registers a listener for tone changes.
func (a *Animator) OnToneChanged(fn ToneListener) {
	a.toneChanged = append(a.toneChanged, fn)
}

func (a *Animator) notifyEntered(layer int, s *State) {
	for _, fn := range a.entered {
		fn(layer, s)
	}
}

func (a *Animator) notifyExited(layer int, s *State) {
	for _, fn := range a.exited {
		fn(layer, s)
	}
}

// Output returns the composited transform from the last Update.
func (a *Animator) Output() Sample { return a.out }

// OutputPosition returns the composited positional offset.
func (a *Animator) OutputPosition() Vec3 { return a.out.Offset }

// OutputRotation returns the composited Euler rotation in degrees.
func (a *Animator) OutputRotation() Vec3 { return a.out.Rotation }

// OutputScale returns the composited scale.
func (a *Animator) OutputScale() Vec3 { return a.out.Scale }

// OutputAlpha returns the composited opacity in [0,1].
func (a *Animator) OutputAlpha() float64 { return a.out.Alpha }
