package app

import (
	"fmt"

	"ember/engine/events"
	"ember/engine/scene"
	"ember/hal"
)

// Step advances the application by one tick. The host calls it once per
// display frame with the current monotonic time in nanoseconds.
//
// Per-tick order: clock, state machine, update listeners, exactly one of
// OnUpdate/OnPausedUpdate, OnPostUpdate, frame cost accounting. A fatal
// error from any stage halts the loop: the failure handler runs exactly
// once and every later Step returns hal.ErrShutdown without doing work.
func (a *App) Step(now int64) error {
	if a.exiting {
		return hal.ErrShutdown
	}
	if !a.booted {
		return fmt.Errorf("app: step before bootstrap")
	}

	if err := a.tick(now); err != nil {
		a.tickErr = err
		a.exiting = true
		if !a.failSent {
			a.failSent = true
			a.failure(err)
		}
		return hal.ErrShutdown
	}
	return nil
}

func (a *App) tick(now int64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("app: tick panic: %v", r)
		}
	}()

	frameStart := a.h.Clock().Now()
	tpf := a.clock.TickStart(now)

	a.drainCloseRequests()

	if err := a.machine.OnUpdate(tpf); err != nil {
		return err
	}
	if a.exiting {
		return nil
	}

	for _, l := range a.listeners.snapshot() {
		l.OnUpdate(tpf)
	}

	if a.machine.IsInPlay() {
		if err := a.gameplay.OnUpdate(tpf); err != nil {
			return err
		}
	} else {
		if err := a.gameplay.OnPausedUpdate(tpf); err != nil {
			return err
		}
	}
	if err := a.gameplay.OnPostUpdate(tpf); err != nil {
		return err
	}

	if err := a.render(); err != nil {
		return err
	}

	if a.prof != nil {
		a.prof.Update(a.clock.FPS(), a.h.Clock().Now()-frameStart)
	}
	return nil
}

// drainCloseRequests forwards pending window close requests to the bus.
func (a *App) drainCloseRequests() {
	ch := a.h.Display().CloseRequests()
	for {
		select {
		case <-ch:
			a.bus.Publish(events.TopicCloseRequest, nil)
		default:
			return
		}
	}
}

// render draws the active scene into the display framebuffer.
func (a *App) render() error {
	fb := a.h.Display().Framebuffer()
	if err := a.machine.play.scene.Render(fb); err != nil {
		return fmt.Errorf("app: render: %w", err)
	}
	if a.menus != nil {
		switch a.machine.Current() {
		case StateMainMenu, StateGameMenu:
			a.menus.Draw(scene.NewTarget(fb))
		}
	}
	if a.prof != nil {
		a.prof.DrawOverlay(fb)
	}
	return nil
}
