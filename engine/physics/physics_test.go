package physics

import (
	"testing"

	"ember/engine/world"
)

func TestGravityAppliedToMarkedEntities(t *testing.T) {
	w := world.New()
	p := New(w)
	p.SetGravity(100)

	falling := w.Spawn("rock", 0, 0)
	falling.Gravity = true
	still := w.Spawn("wall", 50, 50)

	p.OnUpdate(0.1)

	if falling.VY != 10 {
		t.Fatalf("falling VY = %v, want 10", falling.VY)
	}
	if still.VY != 0 {
		t.Fatalf("still VY = %v, want 0", still.VY)
	}
}

func TestCollisionBeginEnd(t *testing.T) {
	w := world.New()
	p := New(w)
	p.SetGravity(0)

	player := w.Spawn("player", 0, 0)
	player.W, player.H = 10, 10
	block := w.Spawn("block", 100, 0)
	block.W, block.H = 10, 10

	var begins, ends int
	p.AddCollisionHandler(CollisionHandler{
		TypeA: "player",
		TypeB: "block",
		OnCollisionBegin: func(a, b *world.Entity) {
			if a != player || b != block {
				t.Fatal("handler got wrong entities")
			}
			begins++
		},
		OnCollisionEnd: func(a, b *world.Entity) { ends++ },
	})

	p.OnUpdate(0.016)
	if begins != 0 {
		t.Fatal("begin fired without overlap")
	}

	block.X = 5 // overlapping now
	p.OnUpdate(0.016)
	p.OnUpdate(0.016)
	if begins != 1 {
		t.Fatalf("begins = %d, want 1 (no repeat while overlapping)", begins)
	}
	if ends != 0 {
		t.Fatalf("ends = %d, want 0 while overlapping", ends)
	}

	block.X = 100
	p.OnUpdate(0.016)
	if ends != 1 {
		t.Fatalf("ends = %d, want 1 after separation", ends)
	}
}

func TestResetDropsHandlers(t *testing.T) {
	w := world.New()
	p := New(w)

	fired := false
	p.AddCollisionHandler(CollisionHandler{
		TypeA: "a", TypeB: "b",
		OnCollisionBegin: func(_, _ *world.Entity) { fired = true },
	})
	p.Reset()

	ea := w.Spawn("a", 0, 0)
	ea.W, ea.H = 5, 5
	eb := w.Spawn("b", 1, 1)
	eb.W, eb.H = 5, 5

	p.OnUpdate(0.016)
	if fired {
		t.Fatal("handler fired after Reset")
	}
}
