// Package worker runs jobs on a fixed number of goroutines. Panics in a job are logged and
// reported to Sentry; the worker survives them.
package worker

import (
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/locomotion/oerror"
	"github.com/sasha-s/go-deadlock"
)

// Pool is a fixed set of workers consuming a shared queue.
type Pool struct {
	log *slog.Logger

	mu     deadlock.RWMutex
	closed bool
	queue  chan func()
	wg     sync.WaitGroup
}

// New starts a pool of size workers. A non-positive size uses one worker per CPU.
func New(size int, log *slog.Logger) *Pool {
	if size <= 0 {
		size = runtime.NumCPU()
	}
	if log == nil {
		log = slog.Default()
	}
	p := &Pool{log: log, queue: make(chan func(), size)}
	p.wg.Add(size)
	for i := 0; i < size; i++ {
		go p.work()
	}
	return p
}

func (p *Pool) work() {
	defer p.wg.Done()
	for f := range p.queue {
		p.run(f)
	}
}

func (p *Pool) run(f func()) {
	defer func() {
		if err := recover(); err != nil {
			p.log.Error("worker job panicked", "err", err)
			hub := sentry.CurrentHub().Clone()
			hub.Recover(oerror.New("worker job crashed: %v", err))
			hub.Flush(time.Second * 5)
		}
	}()
	f()
}

// Submit queues f, blocking while every worker is busy and the queue is full.
func (p *Pool) Submit(f func()) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return oerror.New("worker pool is closed")
	}
	p.queue <- f
	return nil
}

// Close stops accepting jobs and waits for the queued ones to finish.
func (p *Pool) Close() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.queue)
	}
	p.mu.Unlock()
	p.wg.Wait()
}
