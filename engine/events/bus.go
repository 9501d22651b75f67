// Package events provides a frame-thread publish/subscribe bus.
//
// The bus is not safe for concurrent use: publishing and subscribing happen
// on the frame thread, matching the engine's single-threaded update model.
// Background work must hand results to the frame thread before publishing.
package events

// Topic names published by the engine itself.
const (
	TopicCloseRequest = "display.close_request"
	TopicAchievement  = "achievement.unlocked"
	TopicGameReady    = "game.ready"
)

// Event is a published value with its topic.
type Event struct {
	Topic string
	Data  any
}

// Handler consumes published events.
type Handler func(Event)

// Bus routes events to subscribed handlers in subscription order.
type Bus struct {
	handlers map[string][]Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[string][]Handler)}
}

// Subscribe registers a handler for a topic.
func (b *Bus) Subscribe(topic string, h Handler) {
	if h == nil {
		return
	}
	b.handlers[topic] = append(b.handlers[topic], h)
}

// Publish delivers the event to every handler subscribed to its topic.
// Handlers subscribed during delivery are not invoked for this event.
func (b *Bus) Publish(topic string, data any) {
	hs := b.handlers[topic]
	if len(hs) == 0 {
		return
	}
	ev := Event{Topic: topic, Data: data}
	for _, h := range hs[:len(hs):len(hs)] {
		h(ev)
	}
}
