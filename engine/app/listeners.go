package app

import "sync"

// UpdateListener receives a per-tick callback independent of the active
// top-level state.
type UpdateListener interface {
	OnUpdate(tpf float64)
}

// listenerList is the registered update listeners in insertion order.
//
// Dispatch iterates a snapshot, so add/remove during an in-progress dispatch
// take effect starting from the next tick.
type listenerList struct {
	mu    sync.Mutex
	items []UpdateListener
}

func (l *listenerList) add(u UpdateListener) {
	if u == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append(l.items, u)
}

func (l *listenerList) remove(u UpdateListener) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, it := range l.items {
		if it == u {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return
		}
	}
}

func (l *listenerList) snapshot() []UpdateListener {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]UpdateListener, len(l.items))
	copy(out, l.items)
	return out
}
