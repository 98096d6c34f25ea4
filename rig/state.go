package rig

import "fmt"

// StateID identifies a motion generator variant.
type StateID int

const (
	StateNone StateID = iota

	// Steady-state locomotion.
	StateIdle
	StateWalk
	StateRun
	StateAirborne

	// Finite one-shot reactions.
	StateJump
	StateLand
	StateDamage
	StateCollect
	StateDeath

	// Antagonist drift patterns.
	StateEchoForm
	StateDistortion
	StateNoiseBeast

	// Finale overlay.
	StateResolution

	// Caller-supplied generator.
	StateCustom

	stateCount
)

var stateNames = map[StateID]string{
	StateNone:       "none",
	StateIdle:       "idle",
	StateWalk:       "walk",
	StateRun:        "run",
	StateAirborne:   "airborne",
	StateJump:       "jump",
	StateLand:       "land",
	StateDamage:     "damage",
	StateCollect:    "collect",
	StateDeath:      "death",
	StateEchoForm:   "echo_form",
	StateDistortion: "distortion",
	StateNoiseBeast: "noise_beast",
	StateResolution: "resolution",
	StateCustom:     "custom",
}

func (id StateID) String() string {
	if name, ok := stateNames[id]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(id))
}

// ParseStateID resolves a profile-table key like "idle" or "noise_beast".
func ParseStateID(name string) (StateID, bool) {
	for id, n := range stateNames {
		if n == name {
			return id, true
		}
	}
	return StateNone, false
}

// Finite reports whether the state runs for a fixed duration instead of
// cycling.
func (id StateID) Finite() bool {
	switch id {
	case StateJump, StateLand, StateDamage, StateCollect, StateDeath, StateResolution:
		return true
	}
	return false
}

// Reaction reports whether the state is a one-shot reaction overlay.
func (id StateID) Reaction() bool {
	switch id {
	case StateJump, StateLand, StateDamage, StateCollect, StateDeath:
		return true
	}
	return false
}

// Pattern reports whether the state is an antagonist drift pattern whose
// chaos is scaled by the animator's drift intensity.
func (id StateID) Pattern() bool {
	switch id {
	case StateEchoForm, StateDistortion, StateNoiseBeast:
		return true
	}
	return false
}

// State is one live motion state on a layer: the generator variant, its
// read-only parameter set, and how long it has been running. A State is
// created for each transition request, promoted to current immediately, and
// discarded once it finishes blending out.
type State struct {
	ID     StateID
	Params *Params

	// OnEnter fires once when the state becomes current. OnExit fires once
	// when the state finishes blending out (or immediately on
	// SetStateImmediate). A previous state discarded by a reentrant
	// transition never gets its OnExit.
	OnEnter func(*State)
	OnExit  func(*State)

	generator Generator
	elapsed   float64
	phase     float64
	entered   bool
	exited    bool
}

// NewState builds a state for id with the given parameter set. Nil params
// fall back to the built-in defaults for the id.
func NewState(id StateID, params *Params) *State {
	if params == nil {
		p := DefaultParams(id)
		params = &p
	}
	return &State{
		ID:        id,
		Params:    params,
		generator: generatorFor(id),
	}
}

// NewCustomState builds a StateCustom driven by the supplied generator.
func NewCustomState(gen Generator, params *Params) *State {
	s := NewState(StateCustom, params)
	s.generator = gen
	return s
}

// Elapsed is the time in seconds since the state became current.
func (s *State) Elapsed() float64 { return s.elapsed }

// Progress is the normalized completion of a finite state, clamped to
// [0,1]. Meaningless (always 0) for cycling states.
func (s *State) Progress() float64 {
	if !s.ID.Finite() || s.Params.Duration <= 0 {
		return 0
	}
	return Clamp01(s.elapsed / s.Params.Duration)
}

// advance moves the state's clock. Cycling states advance phase at
// Params.Speed cycles per second, scaled by the tone speed multiplier;
// finite states track normalized progress instead.
func (s *State) advance(dt, speedMul float64) {
	s.elapsed += dt
	if s.ID.Finite() {
		s.phase = s.Progress()
		return
	}
	s.phase += dt * s.Params.Speed * speedMul
}

// sample evaluates the state's generator at its current phase.
func (s *State) sample(intensity float64) Sample {
	if s.generator == nil {
		return IdentitySample()
	}
	return s.generator(s.phase, s.Params, intensity)
}

func (s *State) enter() {
	if s.entered {
		return
	}
	s.entered = true
	if s.OnEnter != nil {
		s.OnEnter(s)
	}
}

func (s *State) exit() {
	if s.exited {
		return
	}
	s.exited = true
	if s.OnExit != nil {
		s.OnExit(s)
	}
}
