package rig

// DefaultBlendTime is the transition duration applied by
// TransitionToDefault.
const DefaultBlendTime = 0.25

// TransitionTo requests a state change on a layer with the given blend time
// in seconds.
//
//   - An invalid layer index is a silent no-op (visual systems never crash
//     on misconfiguration).
//   - A state whose ID matches the current state's is a no-op, preventing
//     redundant re-entry.
//   - blendTime <= 0 behaves like SetStateImmediate.
//   - If a transition is already in flight, the old previous state is
//     discarded without firing its exit hook; exit fires only on clean
//     blend completion.
//
// The new state becomes current immediately and its OnEnter fires exactly
// once, followed by the animator's state-entered listeners.
func (a *Animator) TransitionTo(s *State, layer int, blendTime float64) {
	if s == nil || layer < 0 || layer >= a.layerCount {
		return
	}
	if layer == LayerBase && a.seq.deathLock() {
		return
	}
	l := &a.layers[layer]
	if l.current != nil && l.current.ID == s.ID {
		return
	}
	if blendTime <= 0 {
		a.SetStateImmediate(s, layer)
		return
	}

	l.previous = l.current
	l.current = s
	l.progress = 0
	l.duration = blendTime

	s.enter()
	a.notifyEntered(layer, s)
}

// TransitionToDefault is TransitionTo with the default blend time.
func (a *Animator) TransitionToDefault(s *State, layer int) {
	a.TransitionTo(s, layer, DefaultBlendTime)
}

// SetStateImmediate swaps the layer's state with no blend: the outgoing
// state's exit hook fires synchronously, any in-flight previous state is
// discarded, and progress is pinned to 1.
func (a *Animator) SetStateImmediate(s *State, layer int) {
	if s == nil || layer < 0 || layer >= a.layerCount {
		return
	}
	if layer == LayerBase && a.seq.deathLock() {
		return
	}
	l := &a.layers[layer]
	if l.current != nil && l.current.ID == s.ID {
		return
	}
	if l.current != nil {
		l.current.exit()
		a.notifyExited(layer, l.current)
	}
	l.previous = nil
	l.progress = 1
	l.duration = 0
	l.current = s

	s.enter()
	a.notifyEntered(layer, s)
}

// IsTransitioning reports whether the layer is mid-blend. Invalid indices
// report false.
func (a *Animator) IsTransitioning(layer int) bool {
	if layer < 0 || layer >= a.layerCount {
		return false
	}
	return a.layers[layer].IsTransitioning()
}

// CurrentState returns the active state on a layer, or nil.
func (a *Animator) CurrentState(layer int) *State {
	if layer < 0 || layer >= a.layerCount {
		return nil
	}
	return a.layers[layer].current
}

// Layer exposes a read-only view of a layer for inspection. Returns nil
// for invalid indices.
func (a *Animator) Layer(layer int) *Layer {
	if layer < 0 || layer >= a.layerCount {
		return nil
	}
	return &a.layers[layer]
}

// SetLayerWeight clamps weight to [0,1]. Invalid indices are ignored.
func (a *Animator) SetLayerWeight(layer int, weight float64) {
	if layer < 0 || layer >= a.layerCount {
		return
	}
	a.layers[layer].Weight = Clamp01(weight)
}

// SetLayerBlendMode sets the blend mode. Invalid indices are ignored.
func (a *Animator) SetLayerBlendMode(layer int, mode BlendMode) {
	if layer < 0 || layer >= a.layerCount {
		return
	}
	a.layers[layer].Mode = mode
}
