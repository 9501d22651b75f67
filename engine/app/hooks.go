package app

import (
	"ember/engine/achievement"
	"ember/engine/input"
	"ember/engine/physics"
	"ember/engine/save"
	"ember/engine/scene"
)

// GameplayHooks are the per-tick application callbacks. Exactly one of
// OnUpdate/OnPausedUpdate runs each tick, then OnPostUpdate always runs.
// A returned error is fatal: it halts the loop and reaches the failure
// handler exactly once.
type GameplayHooks interface {
	// OnUpdate runs while the application is in the playing state.
	OnUpdate(tpf float64) error
	// OnPausedUpdate runs while any other top-level state is active.
	OnPausedUpdate(tpf float64) error
	// OnPostUpdate runs unconditionally after the update branch.
	OnPostUpdate(tpf float64) error
}

// LifecycleHooks are the one-time and per-game initialization callbacks.
//
// InitAchievements, InitInput and PreInit run once during bootstrap on the
// frame thread. The game-init hooks (InitGameVars, InitGame or LoadState,
// InitPhysics, InitUI) run in that order on a background worker each time a
// new or loaded game starts. They operate on a detached session bundle that
// only they can reach, through the context and their arguments; the active
// session stays owned by the frame thread until the finished bundle is
// swapped in.
type LifecycleHooks interface {
	InitAchievements(*achievement.Registry)
	InitInput(*input.Input)
	PreInit(*Context)

	InitGameVars(*Vars)
	InitGame(*Context)
	InitPhysics(*physics.World)
	InitUI(*scene.Scene)

	// LoadState replaces InitGame when starting from a save token.
	LoadState(*Context, save.DataFile) error
}

// NopGameplay is a GameplayHooks base with no-op methods, for embedding.
type NopGameplay struct{}

func (NopGameplay) OnUpdate(float64) error       { return nil }
func (NopGameplay) OnPausedUpdate(float64) error { return nil }
func (NopGameplay) OnPostUpdate(float64) error   { return nil }

// NopLifecycle is a LifecycleHooks base with no-op methods, for embedding.
type NopLifecycle struct{}

func (NopLifecycle) InitAchievements(*achievement.Registry) {}
func (NopLifecycle) InitInput(*input.Input)                 {}
func (NopLifecycle) PreInit(*Context)                       {}
func (NopLifecycle) InitGameVars(*Vars)                     {}
func (NopLifecycle) InitGame(*Context)                      {}
func (NopLifecycle) InitPhysics(*physics.World)             {}
func (NopLifecycle) InitUI(*scene.Scene)                    {}

func (NopLifecycle) LoadState(*Context, save.DataFile) error { return nil }
