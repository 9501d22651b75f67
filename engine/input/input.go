// Package input maps keyboard events to named actions.
//
// Actions are registered explicitly during the input-setup phase: engine
// bindings first, then application bindings, so applications can extend the
// system set but never displace it.
package input

import (
	"fmt"

	"ember/hal"
)

// Action is a named input reaction. OnActionBegin fires on key press,
// OnAction every tick while held, OnActionEnd on release.
type Action struct {
	Name string

	OnActionBegin func()
	OnAction      func(tpf float64)
	OnActionEnd   func()
}

type binding struct {
	action Action
	system bool
	held   bool
}

// Input owns the key/action bindings for a play session.
type Input struct {
	kbd      hal.Keyboard
	bindings map[hal.KeyCode]*binding
}

// New creates an input surface fed by the given keyboard.
func New(kbd hal.Keyboard) *Input {
	return &Input{kbd: kbd, bindings: make(map[hal.KeyCode]*binding)}
}

// BindSystem registers an engine-level action. System bindings are installed
// before user bindings and cannot be rebound.
func (in *Input) BindSystem(key hal.KeyCode, a Action) error {
	return in.bind(key, a, true)
}

// Bind registers an application action for a key.
func (in *Input) Bind(key hal.KeyCode, a Action) error {
	return in.bind(key, a, false)
}

func (in *Input) bind(key hal.KeyCode, a Action, system bool) error {
	if key == hal.KeyUnknown {
		return fmt.Errorf("bind %q: unknown key", a.Name)
	}
	if prev, ok := in.bindings[key]; ok {
		return fmt.Errorf("bind %q: key already bound to %q", a.Name, prev.action.Name)
	}
	in.bindings[key] = &binding{action: a, system: system}
	return nil
}

// Bindings returns the bound action names keyed by key code.
func (in *Input) Bindings() map[hal.KeyCode]string {
	out := make(map[hal.KeyCode]string, len(in.bindings))
	for k, b := range in.bindings {
		out[k] = b.action.Name
	}
	return out
}

// ClearUserBindings removes application bindings, keeping system ones.
// Held state is released without firing OnActionEnd.
func (in *Input) ClearUserBindings() {
	for k, b := range in.bindings {
		if !b.system {
			delete(in.bindings, k)
		}
	}
}

// OnUpdate drains pending key events and fires action callbacks.
func (in *Input) OnUpdate(tpf float64) {
	if in.kbd != nil {
	drain:
		for {
			select {
			case ev := <-in.kbd.Events():
				in.handle(ev)
			default:
				break drain
			}
		}
	}

	for _, b := range in.bindings {
		if b.held && b.action.OnAction != nil {
			b.action.OnAction(tpf)
		}
	}
}

func (in *Input) handle(ev hal.KeyEvent) {
	b, ok := in.bindings[ev.Code]
	if !ok {
		return
	}
	if ev.Press {
		if !b.held {
			b.held = true
			if b.action.OnActionBegin != nil {
				b.action.OnActionBegin()
			}
		}
		return
	}
	if b.held {
		b.held = false
		if b.action.OnActionEnd != nil {
			b.action.OnActionEnd()
		}
	}
}
