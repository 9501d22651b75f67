package app

import (
	"ember/engine/achievement"
	"ember/engine/audio"
	"ember/engine/input"
	"ember/engine/physics"
	"ember/engine/save"
	"ember/engine/scene"
	"ember/engine/settings"
	"ember/engine/timer"
	"ember/engine/world"
)

// Context is the application's handle onto engine services. It is passed to
// lifecycle hooks instead of the hooks reaching for globals.
//
// During game init the context is pinned to the staged session bundle, so
// the init hooks build the next session without touching the active one.
type Context struct {
	app  *App
	play *PlayState
}

func (c *Context) session() *PlayState {
	if c.play != nil {
		return c.play
	}
	return c.app.machine.play
}

// App returns the owning application.
func (c *Context) App() *App { return c.app }

// Settings returns the immutable configuration.
func (c *Context) Settings() settings.Settings { return c.app.cfg }

// World returns the entity world of the current session.
func (c *Context) World() *world.World { return c.session().world }

// Physics returns the physics world of the current session.
func (c *Context) Physics() *physics.World { return c.session().physics }

// Scene returns the scene of the current session.
func (c *Context) Scene() *scene.Scene { return c.session().scene }

// Input returns the input service.
func (c *Context) Input() *input.Input { return c.session().input }

// MasterTimer returns the session timer.
func (c *Context) MasterTimer() *timer.Timer { return c.session().timer }

// Vars returns the game-variable bag of the current session.
func (c *Context) Vars() *Vars { return c.session().vars }

// Achievements returns the achievement registry.
func (c *Context) Achievements() *achievement.Registry { return c.app.achievements }

// AudioPlayer returns the tone player, or nil when audio is disabled.
func (c *Context) AudioPlayer() *audio.Player { return c.app.audioPlayer }

// Saves returns the save store, or nil when no save path is configured.
func (c *Context) Saves() *save.Store { return c.app.saves }
