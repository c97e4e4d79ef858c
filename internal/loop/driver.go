package loop

import (
	"context"
	"sync"
	"time"
)

// Driver calls a tick function at a fixed cadence on its own goroutine.
// At most one tick chain is active: Start cancels and waits for the previous
// chain before launching a new one.
type Driver struct {
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewDriver creates a driver ticking every interval.
func NewDriver(interval time.Duration) *Driver {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &Driver{interval: interval}
}

// Start launches a tick chain that runs until ctx is cancelled, Stop or Start
// is called, or tick returns false. tick must not call Start or Stop itself.
func (d *Driver) Start(ctx context.Context, tick func() bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	d.cancel = cancel
	d.done = done

	go d.run(ctx, tick, done)
}

func (d *Driver) run(ctx context.Context, tick func() bool, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// A cancel racing with the ticker must not produce one more tick.
			if ctx.Err() != nil || !tick() {
				return
			}
		}
	}
}

// Stop cancels the active chain and waits for it to exit.
func (d *Driver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
}

func (d *Driver) stopLocked() {
	if d.cancel == nil {
		return
	}
	d.cancel()
	<-d.done
	d.cancel = nil
}

// Running reports whether a chain is active.
func (d *Driver) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.done == nil {
		return false
	}
	select {
	case <-d.done:
		return false
	default:
		return true
	}
}

// Done returns a channel closed when the current chain exits.
// Without a chain the channel is already closed.
func (d *Driver) Done() <-chan struct{} {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.done == nil {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	return d.done
}
