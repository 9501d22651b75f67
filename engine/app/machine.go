package app

import (
	"fmt"

	"ember/engine/async"
	"ember/engine/events"
	"ember/engine/input"
	"ember/engine/physics"
	"ember/engine/save"
	"ember/engine/scene"
	"ember/engine/timer"
	"ember/engine/world"
)

// State is a top-level application state. Exactly one is active at a time.
type State uint8

const (
	// StateStartup is the engine-reserved state before the first transition.
	StateStartup State = iota
	StateLoading
	StateIntro
	StateMainMenu
	StateGameMenu
	StatePlaying
)

func (s State) String() string {
	switch s {
	case StateStartup:
		return "startup"
	case StateLoading:
		return "loading"
	case StateIntro:
		return "intro"
	case StateMainMenu:
		return "main_menu"
	case StateGameMenu:
		return "game_menu"
	case StatePlaying:
		return "playing"
	default:
		return "unknown"
	}
}

// PlayState bundles the live-session resources owned while playing.
// Each new or loaded game builds a fresh bundle; only the input surface,
// whose bindings are bootstrap-scoped, carries over.
type PlayState struct {
	world   *world.World
	physics *physics.World
	scene   *scene.Scene
	input   *input.Input
	timer   *timer.Timer
	vars    *Vars
}

func newPlayState(in *input.Input) *PlayState {
	w := world.New()
	return &PlayState{
		world:   w,
		physics: physics.New(w),
		scene:   scene.New(),
		input:   in,
		timer:   timer.New(),
		vars:    newVars(),
	}
}

// World returns the session's entity world.
func (p *PlayState) World() *world.World { return p.world }

// Physics returns the session's physics world.
func (p *PlayState) Physics() *physics.World { return p.physics }

// Scene returns the session's scene.
func (p *PlayState) Scene() *scene.Scene { return p.scene }

// Input returns the session's input surface.
func (p *PlayState) Input() *input.Input { return p.input }

// Timer returns the session's master timer.
func (p *PlayState) Timer() *timer.Timer { return p.timer }

// Vars returns the session's game-variable bag.
func (p *PlayState) Vars() *Vars { return p.vars }

// Machine owns the current top-level state and the play-state bundle.
//
// Transitions happen only through SetState; a transition fully exits the
// previous state before entering the next, and requesting a transition from
// inside an enter/exit hook is an error.
type Machine struct {
	app *App

	current       State
	transitioning bool

	play *PlayState

	// loading state data: the save token being initialized, the detached
	// bundle the init hooks build, and the pending background task. The
	// staged bundle is swapped in on the frame thread once the task is done;
	// the active bundle is never touched while loading.
	dataFile save.DataFile
	staged   *PlayState
	loadTask *async.Result

	introElapsed float64
}

func newMachine(a *App, in *input.Input) *Machine {
	return &Machine{app: a, current: StateStartup, play: newPlayState(in)}
}

// Current returns the active state.
func (m *Machine) Current() State { return m.current }

// IsInPlay reports whether the active state is playing.
func (m *Machine) IsInPlay() bool { return m.current == StatePlaying }

// Play returns the play-state bundle.
func (m *Machine) Play() *PlayState { return m.play }

// SetState transitions to the next state, running exit and enter hooks.
func (m *Machine) SetState(next State) error {
	if m.transitioning {
		return fmt.Errorf("app: transition to %s requested during a transition", next)
	}
	m.transitioning = true
	defer func() { m.transitioning = false }()

	prev := m.current
	m.exitState(prev)
	m.current = next
	return m.enterState(next, prev)
}

func (m *Machine) exitState(s State) {
	switch s {
	case StateLoading:
		m.staged = nil
		m.loadTask = nil
	case StateIntro:
		m.introElapsed = 0
	}
}

func (m *Machine) enterState(s State, prev State) error {
	a := m.app
	a.log("state: %s -> %s", prev, s)

	switch s {
	case StateLoading:
		// The game-init hooks run in the background against a detached
		// bundle. The active bundle keeps rendering untouched; the swap
		// happens on the frame thread once the task completes.
		m.staged = newPlayState(m.play.input)
		df := m.dataFile
		ps := m.staged
		m.loadTask = a.exec.Submit(func() (any, error) {
			return nil, a.initGame(df, ps)
		})
	case StateIntro:
		m.introElapsed = 0
	case StatePlaying:
		a.bus.Publish(events.TopicGameReady, nil)
	}
	return nil
}

// OnUpdate advances the active state. Called exactly once per tick before
// listener dispatch.
func (m *Machine) OnUpdate(tpf float64) error {
	switch m.current {
	case StateStartup:
		return m.app.advanceFromStartup()

	case StateLoading:
		if m.loadTask == nil {
			return fmt.Errorf("app: loading state has no pending init task")
		}
		out, done := m.loadTask.Poll()
		if !done {
			return nil
		}
		if out.Err != nil {
			return fmt.Errorf("app: game init failed: %w", out.Err)
		}
		// Worker is done with the staged bundle; adopt it here on the
		// frame thread before entering play.
		m.play = m.staged
		return m.SetState(StatePlaying)

	case StateIntro:
		m.play.input.OnUpdate(tpf)
		m.introElapsed += tpf
		if m.introElapsed >= m.app.cfg.IntroSeconds {
			return m.app.afterIntro()
		}
		return nil

	case StateMainMenu, StateGameMenu:
		m.play.input.OnUpdate(tpf)
		return nil

	case StatePlaying:
		m.play.input.OnUpdate(tpf)
		m.play.timer.OnUpdate(tpf)
		m.play.world.OnUpdate(tpf)
		m.play.physics.OnUpdate(tpf)
		return nil
	}
	return nil
}

// initGame runs the per-game init hooks against the staged bundle. Executed
// on a background worker while the loading state is active; the hooks see
// the staged resources through the context, never the active ones.
func (a *App) initGame(df save.DataFile, ps *PlayState) error {
	ctx := &Context{app: a, play: ps}

	a.lifecycle.InitGameVars(ps.vars)
	if df.IsEmpty() {
		a.lifecycle.InitGame(ctx)
	} else {
		if err := a.lifecycle.LoadState(ctx, df); err != nil {
			return fmt.Errorf("load state %q: %w", df.Slot, err)
		}
	}
	a.lifecycle.InitPhysics(ps.physics)
	a.lifecycle.InitUI(ps.scene)
	return nil
}
