package async

import (
	"errors"
	"testing"
	"time"
)

func waitResult(t *testing.T, r *Result) Outcome {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		if out, ok := r.Poll(); ok {
			return out
		}
		if time.Now().After(deadline) {
			t.Fatal("task did not complete")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestExecutorSubmitAndPoll(t *testing.T) {
	e := NewExecutor(1)
	defer e.Shutdown()

	r := e.Submit(func() (any, error) { return 42, nil })

	out := waitResult(t, r)
	if out.Err != nil || out.Value != 42 {
		t.Fatalf("got (%v, %v), want (42, nil)", out.Value, out.Err)
	}

	// Outcome is sticky.
	out2, ok := r.Poll()
	if !ok || out2.Value != 42 || out2.Err != nil {
		t.Fatalf("second poll got (%+v, %v)", out2, ok)
	}
}

func TestExecutorTaskError(t *testing.T) {
	e := NewExecutor(2)
	defer e.Shutdown()

	boom := errors.New("boom")
	r := e.Submit(func() (any, error) { return nil, boom })

	out := waitResult(t, r)
	if !errors.Is(out.Err, boom) {
		t.Fatalf("err = %v, want boom", out.Err)
	}
}

func TestExecutorSubmitAfterShutdownRunsInline(t *testing.T) {
	e := NewExecutor(1)
	e.Shutdown()
	e.Shutdown() // idempotent

	r := e.Submit(func() (any, error) { return "inline", nil })
	out, ok := r.Poll()
	if !ok || out.Err != nil || out.Value != "inline" {
		t.Fatalf("got (%+v, %v), want inline completion", out, ok)
	}
}
