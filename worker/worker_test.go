package worker

import (
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPoolRunsEveryJob(t *testing.T) {
	p := New(4, quietLogger())

	var ran atomic.Int32
	for i := 0; i < 100; i++ {
		if err := p.Submit(func() { ran.Add(1) }); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	p.Close()
	if n := ran.Load(); n != 100 {
		t.Fatalf("expected 100 jobs to run, got %d", n)
	}
}

func TestPoolSurvivesPanics(t *testing.T) {
	p := New(1, quietLogger())

	var wg sync.WaitGroup
	wg.Add(1)
	_ = p.Submit(func() { panic("boom") })
	_ = p.Submit(func() { wg.Done() })
	wg.Wait()
	p.Close()
}

func TestSubmitAfterClose(t *testing.T) {
	p := New(2, quietLogger())
	p.Close()
	p.Close()
	if err := p.Submit(func() {}); err == nil {
		t.Fatalf("expected an error submitting to a closed pool")
	}
}
