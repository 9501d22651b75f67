// Package achievement tracks named one-shot accomplishments.
package achievement

import (
	"fmt"

	"ember/engine/events"
)

// Achievement is a named accomplishment.
type Achievement struct {
	Name        string
	Description string
	achieved    bool
}

// Achieved reports whether the achievement has been unlocked.
func (a *Achievement) Achieved() bool { return a.achieved }

// Registry holds registered achievements. Unlocking publishes
// events.TopicAchievement exactly once per achievement.
type Registry struct {
	bus   *events.Bus
	byKey map[string]*Achievement
	order []*Achievement
}

// NewRegistry creates a registry publishing on the given bus.
func NewRegistry(bus *events.Bus) *Registry {
	return &Registry{bus: bus, byKey: make(map[string]*Achievement)}
}

// Register adds an achievement. Registering a duplicate name is an error.
func (r *Registry) Register(name, description string) error {
	if name == "" {
		return fmt.Errorf("register achievement: empty name")
	}
	if _, ok := r.byKey[name]; ok {
		return fmt.Errorf("register achievement %q: already registered", name)
	}
	a := &Achievement{Name: name, Description: description}
	r.byKey[name] = a
	r.order = append(r.order, a)
	return nil
}

// Achieve unlocks an achievement. Unlocking twice is a no-op; unlocking an
// unregistered name is an error.
func (r *Registry) Achieve(name string) error {
	a, ok := r.byKey[name]
	if !ok {
		return fmt.Errorf("achieve %q: not registered", name)
	}
	if a.achieved {
		return nil
	}
	a.achieved = true
	if r.bus != nil {
		r.bus.Publish(events.TopicAchievement, name)
	}
	return nil
}

// All returns achievements in registration order.
func (r *Registry) All() []*Achievement {
	return r.order
}
