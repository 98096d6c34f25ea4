package rig

// BlendMode controls how a layer's output folds into the running composite.
type BlendMode int

const (
	// BlendOverride replaces the running value proportionally to weight.
	BlendOverride BlendMode = iota
	// BlendAdditive sums offsets and composes rotations proportionally;
	// scale multiplies in, lerped from identity by weight.
	BlendAdditive
	// BlendMultiply affects scale only.
	BlendMultiply
)

func (m BlendMode) String() string {
	switch m {
	case BlendOverride:
		return "override"
	case BlendAdditive:
		return "additive"
	case BlendMultiply:
		return "multiply"
	}
	return "blend(?)"
}

// MaxLayers bounds the layer stack.
const MaxLayers = 8

// Conventional layer assignments. Callers may repurpose indices; these are
// just the defaults the game uses.
const (
	LayerBase    = 0 // locomotion / pattern foundation (Override)
	LayerGesture = 1 // profile hook gestures (Additive)
	LayerEmotion = 2 // emotional sway variance (Additive)
	LayerBreath  = 3 // ambient breathing scale (Multiply)
)

const weightEpsilon = 1e-4

// Layer is one independently weighted animation channel. Owned and mutated
// exclusively by the animator's transition handling; the compositor only
// reads it.
type Layer struct {
	Weight float64
	Mode   BlendMode

	current  *State
	previous *State
	progress float64 // transition progress, [0,1]
	duration float64 // transition blend time in seconds
}

// Active reports whether the layer contributes to the composite.
func (l *Layer) Active() bool {
	return l.current != nil && l.Weight > weightEpsilon
}

// IsTransitioning reports whether the layer is mid-blend between a previous
// and current state.
func (l *Layer) IsTransitioning() bool {
	return l.previous != nil && l.progress < 1
}

// Current returns the layer's active state, or nil.
func (l *Layer) Current() *State { return l.current }

// Previous returns the outgoing state during a transition, or nil.
func (l *Layer) Previous() *State { return l.previous }

// Progress returns the transition progress in [0,1].
func (l *Layer) Progress() float64 { return l.progress }

// update advances both live states (the previous state keeps ticking so its
// output stays continuous through the blend) and the transition clock.
// Returns the state whose exit hook should fire, if the blend completed.
func (l *Layer) update(dt, speedMul float64) *State {
	if l.current != nil {
		l.current.advance(dt, speedMul)
	}
	if l.previous == nil {
		return nil
	}
	l.previous.advance(dt, speedMul)

	if l.duration <= 0 {
		l.progress = 1
	} else {
		l.progress = Clamp01(l.progress + dt/l.duration)
	}
	if l.progress >= 1 {
		done := l.previous
		l.previous = nil
		return done
	}
	return nil
}

// output samples the layer's pose: the current state's output, eased
// against the previous state's while a transition is in flight.
func (l *Layer) output(intensity float64) Sample {
	if l.current == nil {
		return IdentitySample()
	}
	cur := l.current.sample(intensity)
	if !l.IsTransitioning() {
		return cur
	}
	prev := l.previous.sample(intensity)
	return lerpSample(prev, cur, TransitionEase(l.progress))
}
