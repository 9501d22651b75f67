// Package physics provides AABB collision detection and gravity for world
// entities. It is a deliberately small collaborator stepped once per tick
// from the playing state.
package physics

import "ember/engine/world"

// CollisionHandler receives begin/end notifications for a type pair.
// The order of a and b matches the handler's registered TypeA/TypeB.
type CollisionHandler struct {
	TypeA string
	TypeB string

	OnCollisionBegin func(a, b *world.Entity)
	OnCollisionEnd   func(a, b *world.Entity)
}

type pairKey struct {
	a, b *world.Entity
}

// World detects collisions between registered entity type pairs.
type World struct {
	w        *world.World
	gravity  float64
	handlers []CollisionHandler
	active   map[pairKey]bool
}

// New creates a physics world over the given game world.
func New(w *world.World) *World {
	return &World{w: w, gravity: 600, active: make(map[pairKey]bool)}
}

// SetGravity sets the downward acceleration in units/sec^2.
func (p *World) SetGravity(g float64) { p.gravity = g }

// Gravity returns the current downward acceleration.
func (p *World) Gravity() float64 { return p.gravity }

// AddCollisionHandler registers a handler for a type pair.
func (p *World) AddCollisionHandler(h CollisionHandler) {
	p.handlers = append(p.handlers, h)
}

// Reset drops all collision state and handlers for a new game.
func (p *World) Reset() {
	p.handlers = nil
	p.active = make(map[pairKey]bool)
}

// OnUpdate applies gravity and fires collision begin/end handlers.
func (p *World) OnUpdate(tpf float64) {
	for _, e := range p.w.Entities() {
		if e.Gravity {
			e.VY += p.gravity * tpf
		}
	}

	seen := make(map[pairKey]bool)
	for _, h := range p.handlers {
		as := p.w.EntitiesByType(h.TypeA)
		bs := p.w.EntitiesByType(h.TypeB)
		for _, a := range as {
			for _, b := range bs {
				if a == b {
					continue
				}
				key := pairKey{a: a, b: b}
				if !overlap(a, b) {
					continue
				}
				seen[key] = true
				if !p.active[key] {
					p.active[key] = true
					if h.OnCollisionBegin != nil {
						h.OnCollisionBegin(a, b)
					}
				}
			}
		}
	}

	for key, on := range p.active {
		if !on || seen[key] {
			continue
		}
		delete(p.active, key)
		for _, h := range p.handlers {
			if key.a.Type == h.TypeA && key.b.Type == h.TypeB && h.OnCollisionEnd != nil {
				h.OnCollisionEnd(key.a, key.b)
			}
		}
	}
}

func overlap(a, b *world.Entity) bool {
	if !a.Alive() || !b.Alive() {
		return false
	}
	return a.X < b.X+b.W && b.X < a.X+a.W &&
		a.Y < b.Y+b.H && b.Y < a.Y+a.H
}
