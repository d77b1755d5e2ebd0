package status

import (
	"sort"
	"sync"
	"sync/atomic"
)

// Registry is the central metrics facade
// The session caches pointers at construction; ticks write directly to atomics
type Registry struct {
	Bools *MetricMap[atomic.Bool]
	Ints  *MetricMap[atomic.Int64]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools: NewMetricMap[atomic.Bool](),
		Ints:  NewMetricMap[atomic.Int64](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count()
}

// MetricMap is a named set of lazily created metric cells
type MetricMap[T any] struct {
	mu      sync.RWMutex
	metrics map[string]*T
}

// NewMetricMap creates an empty map
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{metrics: make(map[string]*T)}
}

// Get returns the cell for name, creating it on first use
// The pointer is stable for the lifetime of the map
func (m *MetricMap[T]) Get(name string) *T {
	m.mu.RLock()
	v, ok := m.metrics[name]
	m.mu.RUnlock()
	if ok {
		return v
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok = m.metrics[name]; ok {
		return v
	}
	v = new(T)
	m.metrics[name] = v
	return v
}

// Count returns the number of registered metrics
func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.metrics)
}

// Names returns registered metric names in sorted order
func (m *MetricMap[T]) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.metrics))
	for name := range m.metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
