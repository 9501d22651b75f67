package world

import "testing"

type recorder struct {
	added   []string
	removed []string
}

func (r *recorder) OnEntityAdded(e *Entity)   { r.added = append(r.added, e.Type) }
func (r *recorder) OnEntityRemoved(e *Entity) { r.removed = append(r.removed, e.Type) }

func TestSpawnAndRemove(t *testing.T) {
	w := New()
	rec := &recorder{}
	w.AddListener(rec)

	a := w.Spawn("player", 1, 2)
	b := w.Spawn("block", 3, 4)
	if w.Size() != 2 {
		t.Fatalf("size = %d, want 2", w.Size())
	}
	if a.ID == b.ID {
		t.Fatal("entities share an ID")
	}
	if !a.Alive() {
		t.Fatal("spawned entity not alive")
	}

	w.Remove(a)
	w.Remove(a) // second remove is a no-op
	if w.Size() != 1 {
		t.Fatalf("size after remove = %d, want 1", w.Size())
	}
	if a.Alive() {
		t.Fatal("removed entity still alive")
	}

	if len(rec.added) != 2 || len(rec.removed) != 1 {
		t.Fatalf("listener saw %d adds, %d removes", len(rec.added), len(rec.removed))
	}
}

func TestClearProducesEmptyWorld(t *testing.T) {
	w := New()
	for i := 0; i < 5; i++ {
		w.Spawn("block", float64(i), 0)
	}
	w.Clear()
	if w.Size() != 0 {
		t.Fatalf("size after clear = %d, want 0", w.Size())
	}
	if got := w.EntitiesByType("block"); len(got) != 0 {
		t.Fatalf("leftover entities after clear: %d", len(got))
	}
}

func TestEntitiesByType(t *testing.T) {
	w := New()
	w.Spawn("player", 0, 0)
	w.Spawn("block", 0, 0)
	w.Spawn("block", 0, 0)

	if got := w.EntitiesByType("block"); len(got) != 2 {
		t.Fatalf("blocks = %d, want 2", len(got))
	}
	if got := w.EntitiesByType("player", "block"); len(got) != 3 {
		t.Fatalf("player+block = %d, want 3", len(got))
	}
}

func TestOnUpdateIntegratesVelocity(t *testing.T) {
	w := New()
	e := w.Spawn("player", 10, 20)
	e.VX = 2
	e.VY = -4

	w.OnUpdate(0.5)

	if e.X != 11 || e.Y != 18 {
		t.Fatalf("pos = (%v, %v), want (11, 18)", e.X, e.Y)
	}
}
