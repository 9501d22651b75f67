// Package world holds the live game entities for a play session.
package world

import "github.com/google/uuid"

// Entity is a game object tracked by the world.
type Entity struct {
	ID   uuid.UUID
	Type string

	X, Y   float64
	VX, VY float64
	W, H   float64

	// Gravity marks the entity for gravity integration in the physics world.
	Gravity bool

	removed bool
}

// Alive reports whether the entity is still part of its world.
func (e *Entity) Alive() bool { return !e.removed }

// Listener observes entity membership changes.
type Listener interface {
	OnEntityAdded(*Entity)
	OnEntityRemoved(*Entity)
}

// World owns a play session's entities.
//
// All methods must be called from the frame thread.
type World struct {
	entities  []*Entity
	listeners []Listener
}

// New returns an empty world.
func New() *World {
	return &World{}
}

// AddListener registers a membership observer.
func (w *World) AddListener(l Listener) {
	if l != nil {
		w.listeners = append(w.listeners, l)
	}
}

// Spawn creates an entity of the given type at a position and adds it.
func (w *World) Spawn(entityType string, x, y float64) *Entity {
	e := &Entity{ID: uuid.New(), Type: entityType, X: x, Y: y}
	w.Add(e)
	return e
}

// Add inserts an existing entity.
func (w *World) Add(e *Entity) {
	if e == nil {
		return
	}
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	e.removed = false
	w.entities = append(w.entities, e)
	for _, l := range w.listeners {
		l.OnEntityAdded(e)
	}
}

// Remove marks the entity for removal; it is dropped at the end of the
// current update pass (or immediately if no pass is running).
func (w *World) Remove(e *Entity) {
	if e == nil || e.removed {
		return
	}
	e.removed = true
	for i, it := range w.entities {
		if it == e {
			w.entities = append(w.entities[:i], w.entities[i+1:]...)
			break
		}
	}
	for _, l := range w.listeners {
		l.OnEntityRemoved(e)
	}
}

// Clear removes every entity, producing a fresh empty world for a new game.
func (w *World) Clear() {
	for len(w.entities) > 0 {
		w.Remove(w.entities[0])
	}
}

// Entities returns the current entities in insertion order.
func (w *World) Entities() []*Entity {
	return w.entities
}

// EntitiesByType returns entities matching any of the given types.
func (w *World) EntitiesByType(types ...string) []*Entity {
	var out []*Entity
	for _, e := range w.entities {
		for _, t := range types {
			if e.Type == t {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// Size returns the entity count.
func (w *World) Size() int { return len(w.entities) }

// OnUpdate integrates entity velocities over the time-step.
func (w *World) OnUpdate(tpf float64) {
	for _, e := range w.entities {
		e.X += e.VX * tpf
		e.Y += e.VY * tpf
	}
}
