// Package app is the application core: the lifecycle state machine and the
// per-frame main loop that drives it. One App runs per process; the host
// delivers one Step per display frame and the App fans it out in a fixed
// order to the state machine, registered update listeners, and the
// application's gameplay hooks.
package app

import (
	"errors"
	"fmt"

	"ember/engine/achievement"
	"ember/engine/async"
	"ember/engine/audio"
	"ember/engine/clock"
	"ember/engine/events"
	"ember/engine/input"
	"ember/engine/profiler"
	"ember/engine/save"
	"ember/engine/settings"
	"ember/hal"
)

// App owns the frame clock, the listener registry and the state machine.
type App struct {
	cfg       settings.Settings
	h         hal.HAL
	gameplay  GameplayHooks
	lifecycle LifecycleHooks

	clock     clock.Clock
	listeners listenerList
	machine   *Machine
	bus       *events.Bus

	achievements *achievement.Registry
	audioPlayer  *audio.Player
	exec         *async.Executor
	saves        *save.Store

	prof *profiler.Profiler

	failure   async.FailureHandler
	deferred  []func(*Context) error
	booted    bool
	menus     *MenuHandler

	exiting  bool
	exited   bool
	tickErr  error
	failSent bool
}

// New constructs the application core. Hooks must be non-nil; use
// NopGameplay/NopLifecycle for unused parts.
func New(cfg settings.Settings, h hal.HAL, gameplay GameplayHooks, lifecycle LifecycleHooks) *App {
	if gameplay == nil {
		gameplay = NopGameplay{}
	}
	if lifecycle == nil {
		lifecycle = NopLifecycle{}
	}

	a := &App{
		cfg:       cfg,
		h:         h,
		gameplay:  gameplay,
		lifecycle: lifecycle,
		bus:       events.NewBus(),
	}
	a.achievements = achievement.NewRegistry(a.bus)
	a.machine = newMachine(a, input.New(h.Input().Keyboard()))

	if cfg.Audio {
		a.audioPlayer = audio.NewPlayer(h.Audio())
		a.AddUpdateListener(a.audioPlayer)
	}
	return a
}

// SetFailureHandler overrides the default failure handler.
func (a *App) SetFailureHandler(fh async.FailureHandler) {
	if fh != nil {
		a.failure = fh
	}
}

// DeferInit registers a task to run at the end of Bootstrap. Must be called
// before Bootstrap.
func (a *App) DeferInit(fn func(*Context) error) {
	if fn != nil {
		a.deferred = append(a.deferred, fn)
	}
}

// Bootstrap runs the one-time setup sequence. It must complete before the
// first Step and must not be run twice.
func (a *App) Bootstrap() error {
	if a.booted {
		return errors.New("app: bootstrap already run")
	}
	a.booted = true

	// 1. Diagnostics, gated by configuration.
	if a.cfg.Profiling {
		a.prof = profiler.New()
	}

	// 2. Default failure handler and background executor.
	if a.failure == nil {
		a.failure = func(err error) {
			a.log("fatal: %v", err)
		}
	}
	a.exec = async.NewExecutor(2)

	if a.cfg.SavePath != "" {
		store, err := save.Open(a.cfg.SavePath)
		if err != nil {
			return fmt.Errorf("app: %w", err)
		}
		a.saves = store
	}

	if a.audioPlayer != nil {
		if err := a.audioPlayer.Start(); err != nil {
			// No audio device is not fatal; the player stays silent.
			a.log("audio unavailable: %v", err)
		}
	}

	// 3. Achievements.
	a.lifecycle.InitAchievements(a.achievements)

	// 4. Input: system bindings first, then the application's.
	if err := a.bindSystemActions(); err != nil {
		return err
	}
	a.lifecycle.InitInput(a.machine.play.input)

	// 5. Application pre-init.
	ctx := &Context{app: a}
	a.lifecycle.PreInit(ctx)

	// 6. Window close requests exit the application.
	a.bus.Subscribe(events.TopicCloseRequest, func(events.Event) {
		a.Exit()
	})

	// 7. Deferred init tasks.
	for _, fn := range a.deferred {
		if err := fn(ctx); err != nil {
			return fmt.Errorf("app: deferred init: %w", err)
		}
	}
	a.deferred = nil

	a.log("bootstrap complete")
	return nil
}

func (a *App) bindSystemActions() error {
	// Escape toggles the game menu during play.
	err := a.machine.play.input.BindSystem(hal.KeyEscape, input.Action{
		Name: "toggle_game_menu",
		OnActionBegin: func() {
			if !a.cfg.Menus {
				return
			}
			switch a.machine.Current() {
			case StatePlaying:
				_ = a.StartGameMenu()
			case StateGameMenu:
				_ = a.StartPlay()
			}
		},
	})
	if err != nil {
		return fmt.Errorf("app: system bindings: %w", err)
	}
	return nil
}

// advanceFromStartup picks the first real state on the first tick.
func (a *App) advanceFromStartup() error {
	if a.cfg.Intro {
		return a.machine.SetState(StateIntro)
	}
	return a.afterIntro()
}

// afterIntro continues to the main menu, or straight into a new game when
// menus are disabled.
func (a *App) afterIntro() error {
	if a.cfg.Menus {
		return a.machine.SetState(StateMainMenu)
	}
	return a.StartNewGame()
}

// initApp moves to the loading state carrying the save token.
func (a *App) initApp(df save.DataFile) error {
	a.machine.dataFile = df
	return a.machine.SetState(StateLoading)
}

// StartIntro requests a transition to the intro state.
func (a *App) StartIntro() error { return a.machine.SetState(StateIntro) }

// StartMainMenu requests a transition to the main menu.
func (a *App) StartMainMenu() error {
	if !a.cfg.Menus {
		return errors.New("app: menus are not enabled")
	}
	return a.machine.SetState(StateMainMenu)
}

// StartGameMenu requests a transition to the in-game menu.
func (a *App) StartGameMenu() error {
	if !a.cfg.Menus {
		return errors.New("app: menus are not enabled")
	}
	return a.machine.SetState(StateGameMenu)
}

// StartPlay requests a transition to the playing state.
func (a *App) StartPlay() error { return a.machine.SetState(StatePlaying) }

// StartNewGame (re)initializes the session as a new game and starts it.
// Must not be called from inside a transition callback.
func (a *App) StartNewGame() error {
	a.log("starting new game")
	return a.initApp(save.Empty())
}

// StartLoadedGame (re)initializes the session from the save token and
// starts it. Must not be called from inside a transition callback.
func (a *App) StartLoadedGame(df save.DataFile) error {
	a.log("starting loaded game from slot %q", df.Slot)
	return a.initApp(df)
}

// AddUpdateListener registers a per-tick listener. Safe to call during an
// in-progress dispatch; the listener starts receiving ticks next frame.
func (a *App) AddUpdateListener(l UpdateListener) { a.listeners.add(l) }

// RemoveUpdateListener unregisters a listener.
func (a *App) RemoveUpdateListener(l UpdateListener) { a.listeners.remove(l) }

// Machine returns the state machine.
func (a *App) Machine() *Machine { return a.machine }

// Achievements returns the achievement registry.
func (a *App) Achievements() *achievement.Registry { return a.achievements }

// AudioPlayer returns the tone player, or nil when audio is disabled.
func (a *App) AudioPlayer() *audio.Player { return a.audioPlayer }

// Saves returns the save store, or nil when no save path is configured.
func (a *App) Saves() *save.Store { return a.saves }

// Bus returns the frame-thread event bus.
func (a *App) Bus() *events.Bus { return a.bus }

// Settings returns the immutable configuration.
func (a *App) Settings() settings.Settings { return a.cfg }

// Exit is the only supported graceful termination entry point: it flushes
// diagnostics once, tears down collaborators, and makes the next Step
// return hal.ErrShutdown.
func (a *App) Exit() {
	if a.exited {
		return
	}
	a.exited = true
	a.exiting = true

	if a.prof != nil {
		a.prof.Print(a.h.Logger())
	}
	if a.audioPlayer != nil {
		_ = a.audioPlayer.Stop()
	}
	if a.exec != nil {
		a.exec.Shutdown()
	}
	if a.saves != nil {
		_ = a.saves.Close()
	}
	a.log("exit")
}

func (a *App) log(format string, args ...any) {
	if a.h == nil || a.h.Logger() == nil {
		return
	}
	a.h.Logger().WriteLineString("ember: " + fmt.Sprintf(format, args...))
}
