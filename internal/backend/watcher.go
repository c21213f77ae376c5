package backend

import (
	"context"
	"sync"
	"time"

	"github.com/tohojo/stgit-console/internal/stgit"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	KindSeries Kind = iota
	KindBranch
)

// Event conveys updated data or an error from a backend poll.
type Event struct {
	Kind Kind
	Data interface{}
	Err  error
}

// Watcher polls the engine at a fixed interval and publishes events. The
// UI also asks for an immediate poll after each command so the series
// refreshes without waiting for the next tick.
type Watcher struct {
	runner   *stgit.Runner
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	kick   chan struct{}
	wg     sync.WaitGroup
}

// NewWatcher creates a backend watcher that polls the engine every interval.
func NewWatcher(runner *stgit.Runner, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		runner:   runner,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
		kick:     make(chan struct{}, 1),
	}

	w.startSeriesPoller()
	w.startBranchPoller()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Refresh requests an immediate series poll ahead of the next tick.
func (w *Watcher) Refresh() {
	select {
	case w.kick <- struct{}{}:
	default:
	}
}

// Stop cancels the watcher. Pollers exit after their current fetch
// completes; use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until all poller goroutines have exited and the events
// channel is closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) startSeriesPoller() {
	gate := newPollGate(250 * time.Millisecond)
	w.wg.Add(1)
	go w.poll(KindSeries, w.kick, func(ctx context.Context) (interface{}, error) {
		gate.wait()
		return w.runner.FetchSeries()
	})
}

func (w *Watcher) startBranchPoller() {
	gate := newPollGate(250 * time.Millisecond)
	w.wg.Add(1)
	go w.poll(KindBranch, nil, func(ctx context.Context) (interface{}, error) {
		gate.wait()
		return w.runner.FetchBranch()
	})
}

func (w *Watcher) poll(kind Kind, kick <-chan struct{}, fetch func(context.Context) (interface{}, error)) {
	defer w.wg.Done()

	emit := func() bool {
		data, err := fetch(w.ctx)
		evt := Event{Kind: kind, Data: data, Err: err}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	if !emit() {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		case <-kick:
			if !emit() {
				return
			}
		}
	}
}
