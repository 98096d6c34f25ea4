package rig

// sequencer runs one-shot reaction overlays. While a reaction is active the
// base layer's steady-state output is replaced wholesale by the reaction
// generator's finite curve; when the countdown expires the steady-state
// generators take over again on the next tick.
//
// Death is terminal: while it runs, no other reaction can start and base
// layer transitions are locked out.
type sequencer struct {
	active    bool
	id        StateID
	duration  float64
	countdown float64
	state     *State
}

// start arms the sequencer with a positive duration. Returns false if the
// request was rejected: not a reaction id, or a death overlay is already
// running.
func (q *sequencer) start(id StateID, duration float64, params *Params) bool {
	if !id.Reaction() || duration <= 0 {
		return false
	}
	if q.deathLock() {
		return false
	}
	q.active = true
	q.id = id
	q.duration = duration
	q.countdown = duration
	q.state = NewState(id, params)
	return true
}

func (q *sequencer) stop() {
	q.active = false
	q.id = StateNone
	q.state = nil
}

func (q *sequencer) deathLock() bool {
	return q.active && q.id == StateDeath
}

// t is the normalized reaction progress, 1 - countdown/duration.
func (q *sequencer) t() float64 {
	if q.duration <= 0 {
		return 1
	}
	return Clamp01(1 - q.countdown/q.duration)
}

// update ticks the countdown; returns the finished state when the reaction
// just ended, nil otherwise.
func (q *sequencer) update(dt float64) *State {
	if !q.active {
		return nil
	}
	q.countdown -= dt
	if q.state != nil {
		q.state.advance(dt, 1)
	}
	if q.countdown <= 0 {
		done := q.state
		q.stop()
		return done
	}
	return nil
}

// sample evaluates the active reaction at its current progress.
func (q *sequencer) sample(intensity float64) Sample {
	if !q.active || q.state == nil {
		return IdentitySample()
	}
	return q.state.generator(q.t(), q.state.Params, intensity)
}
