// Package timer provides the master timer owned by the play state:
// accumulated session time plus scheduled one-shot and repeating actions.
package timer

// Action is a handle for a scheduled callback.
type Action struct {
	fn       func()
	at       float64 // next fire time, seconds of session time
	interval float64 // 0 for one-shot
	expired  bool
}

// Expire cancels the action.
func (a *Action) Expire() { a.expired = true }

// Expired reports whether the action has been cancelled or already fired.
func (a *Action) Expired() bool { return a.expired }

// Timer tracks session time and runs scheduled actions.
//
// Time only advances while the timer is updated, so scheduling is expressed
// in gameplay seconds, not wall-clock.
type Timer struct {
	now     float64
	actions []*Action
}

// New returns a timer at time zero.
func New() *Timer {
	return &Timer{}
}

// Now returns the accumulated session time in seconds.
func (t *Timer) Now() float64 { return t.now }

// Clear resets session time and drops all scheduled actions.
func (t *Timer) Clear() {
	t.now = 0
	t.actions = nil
}

// RunOnceAfter schedules fn once, delay seconds from now.
func (t *Timer) RunOnceAfter(fn func(), delay float64) *Action {
	if delay < 0 {
		delay = 0
	}
	a := &Action{fn: fn, at: t.now + delay}
	t.actions = append(t.actions, a)
	return a
}

// RunAtInterval schedules fn every interval seconds, starting one interval
// from now.
func (t *Timer) RunAtInterval(fn func(), interval float64) *Action {
	if interval <= 0 {
		interval = 1e-9
	}
	a := &Action{fn: fn, at: t.now + interval, interval: interval}
	t.actions = append(t.actions, a)
	return a
}

// OnUpdate advances session time and fires due actions in schedule order.
// Actions scheduled from within a firing callback start on the next update.
func (t *Timer) OnUpdate(tpf float64) {
	if tpf > 0 {
		t.now += tpf
	}

	due := t.actions[:len(t.actions):len(t.actions)]
	for _, a := range due {
		if a.expired || a.at > t.now {
			continue
		}
		a.fn()
		if a.interval > 0 {
			a.at += a.interval
		} else {
			a.expired = true
		}
	}

	live := t.actions[:0]
	for _, a := range t.actions {
		if !a.expired {
			live = append(live, a)
		}
	}
	t.actions = live
}
