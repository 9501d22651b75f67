package timer

import "testing"

func TestRunOnceAfter(t *testing.T) {
	tm := New()
	fired := 0
	tm.RunOnceAfter(func() { fired++ }, 1.0)

	tm.OnUpdate(0.5)
	if fired != 0 {
		t.Fatal("fired before due")
	}
	tm.OnUpdate(0.6)
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}
	tm.OnUpdate(5)
	if fired != 1 {
		t.Fatalf("one-shot fired again: %d", fired)
	}
}

func TestRunAtInterval(t *testing.T) {
	tm := New()
	fired := 0
	tm.RunAtInterval(func() { fired++ }, 1.0)

	for i := 0; i < 10; i++ {
		tm.OnUpdate(0.5)
	}
	// 5 seconds elapsed, interval 1s -> at most one fire per update.
	if fired != 5 {
		t.Fatalf("fired = %d, want 5", fired)
	}
}

func TestExpireCancels(t *testing.T) {
	tm := New()
	fired := false
	a := tm.RunOnceAfter(func() { fired = true }, 0.1)
	a.Expire()

	tm.OnUpdate(1)
	if fired {
		t.Fatal("expired action fired")
	}
	if !a.Expired() {
		t.Fatal("action not reported expired")
	}
}

func TestClearResetsTimeAndActions(t *testing.T) {
	tm := New()
	fired := false
	tm.RunOnceAfter(func() { fired = true }, 0.1)
	tm.OnUpdate(0.05)

	tm.Clear()
	if tm.Now() != 0 {
		t.Fatalf("now = %v after clear, want 0", tm.Now())
	}
	tm.OnUpdate(1)
	if fired {
		t.Fatal("action survived clear")
	}
}

func TestScheduleDuringFire(t *testing.T) {
	tm := New()
	nested := false
	tm.RunOnceAfter(func() {
		tm.RunOnceAfter(func() { nested = true }, 0)
	}, 0)

	tm.OnUpdate(0.1)
	if nested {
		t.Fatal("nested action fired in the same update that scheduled it")
	}
	tm.OnUpdate(0.1)
	if !nested {
		t.Fatal("nested action never fired")
	}
}
