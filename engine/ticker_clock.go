package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/vi-snake/core"
)

// TickerClock is the wall-clock Clock backed by time.Ticker
// Each Arm starts one goroutine that exits when its stop channel closes
type TickerClock struct {
	mu     sync.Mutex
	stop   chan struct{}
	period time.Duration
}

// NewTickerClock creates a disarmed clock
func NewTickerClock() *TickerClock {
	return &TickerClock{}
}

// Arm implements Clock
func (c *TickerClock) Arm(period time.Duration, fn func()) {
	if period <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.disarmLocked()

	stop := make(chan struct{})
	c.stop = stop
	c.period = period

	ticker := time.NewTicker(period)
	core.Go(func() {
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				// Disarm may race the ticker; prefer the stop signal
				select {
				case <-stop:
					return
				default:
				}
				fn()
			}
		}
	})
}

// Disarm implements Clock
func (c *TickerClock) Disarm() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disarmLocked()
}

func (c *TickerClock) disarmLocked() {
	if c.stop != nil {
		close(c.stop)
		c.stop = nil
	}
	c.period = 0
}

// Active implements Clock
func (c *TickerClock) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stop != nil
}

// Period implements Clock
func (c *TickerClock) Period() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.period
}

// After implements Clock
func (c *TickerClock) After(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, func() {
		defer func() {
			if r := recover(); r != nil {
				core.HandleCrash(r)
			}
		}()
		fn()
	})
	return func() { t.Stop() }
}
