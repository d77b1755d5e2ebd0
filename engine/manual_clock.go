package engine

import (
	"sync"
	"time"
)

// ManualClock is a Clock driven by virtual time for deterministic tests
// Nothing fires until Advance or Tick is called
type ManualClock struct {
	mu sync.Mutex

	now time.Duration

	// Periodic timer
	armed  bool
	period time.Duration
	next   time.Duration
	fn     func()
	gen    uint64
	arms   int

	// One-shot timers
	timers []*manualTimer
}

type manualTimer struct {
	at        time.Duration
	fn        func()
	cancelled bool
}

// NewManualClock creates a disarmed clock at virtual time zero
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

// Arm implements Clock
func (m *ManualClock) Arm(period time.Duration, fn func()) {
	if period <= 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.armed = true
	m.period = period
	m.next = m.now + period
	m.fn = fn
	m.gen++
	m.arms++
}

// Disarm implements Clock
func (m *ManualClock) Disarm() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.armed = false
	m.period = 0
	m.fn = nil
	m.gen++
}

// Active implements Clock
func (m *ManualClock) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.armed
}

// Period implements Clock
func (m *ManualClock) Period() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.period
}

// After implements Clock
func (m *ManualClock) After(d time.Duration, fn func()) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &manualTimer{at: m.now + d, fn: fn}
	m.timers = append(m.timers, t)
	return func() {
		m.mu.Lock()
		t.cancelled = true
		m.mu.Unlock()
	}
}

// Now returns elapsed virtual time
func (m *ManualClock) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// ArmCount returns how many times Arm has been called
func (m *ManualClock) ArmCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.arms
}

// Pending returns the number of one-shot timers not yet fired or cancelled
func (m *ManualClock) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.timers {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// Tick fires the periodic callback once and restarts its period from now
// Returns false when disarmed
func (m *ManualClock) Tick() bool {
	m.mu.Lock()
	if !m.armed {
		m.mu.Unlock()
		return false
	}
	fn := m.fn
	m.next = m.now + m.period
	m.mu.Unlock()

	fn()
	return true
}

// Advance moves virtual time forward by d, firing due callbacks in deadline order
// One-shot timers fire before a periodic tick due at the same instant
// Callbacks run without the clock lock held and may re-arm or disarm
func (m *ManualClock) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d

	for {
		t, idx := m.earliestTimerLocked()
		periodicDue := m.armed && m.next <= target

		switch {
		case t != nil && t.at <= target && (!periodicDue || t.at <= m.next):
			m.now = t.at
			m.timers = append(m.timers[:idx], m.timers[idx+1:]...)
			m.mu.Unlock()
			t.fn()
			m.mu.Lock()

		case periodicDue:
			m.now = m.next
			fn, gen := m.fn, m.gen
			m.mu.Unlock()
			fn()
			m.mu.Lock()
			// Re-armed or disarmed inside fn owns the next deadline
			if m.armed && m.gen == gen {
				m.next += m.period
			}

		default:
			m.now = target
			m.mu.Unlock()
			return
		}
	}
}

func (m *ManualClock) earliestTimerLocked() (*manualTimer, int) {
	// Drop cancelled timers while scanning
	live := m.timers[:0]
	for _, t := range m.timers {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	m.timers = live

	var best *manualTimer
	idx := -1
	for i, t := range m.timers {
		if best == nil || t.at < best.at {
			best, idx = t, i
		}
	}
	return best, idx
}
