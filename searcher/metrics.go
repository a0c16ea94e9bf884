package searcher

import (
	"sync/atomic"
	"time"
)

// SearchMetrics describes one FindAction search: how many states were
// expanded, how many leaves were statically evaluated, and how long the
// search took.
type SearchMetrics struct {
	Duration time.Duration
	Expanded int64
	Leaves   int64
}

type MetricsCollector interface {
	Start()
	AddExpansion()
	AddLeaf()
	Complete() SearchMetrics
}

type metricsCollector struct {
	startTime time.Time
	expanded  atomic.Int64
	leaves    atomic.Int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.expanded.Store(0)
	m.leaves.Store(0)
}

func (m *metricsCollector) AddExpansion() {
	m.expanded.Add(1)
}

func (m *metricsCollector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *metricsCollector) Complete() SearchMetrics {
	return SearchMetrics{
		Duration: time.Since(m.startTime),
		Expanded: m.expanded.Load(),
		Leaves:   m.leaves.Load(),
	}
}

// NewDummyCollector returns a collector that records nothing, for searches
// that do not need instrumentation.
func NewDummyCollector() MetricsCollector {
	return dummyCollector{}
}

type dummyCollector struct{}

func (dummyCollector) Start()                  {}
func (dummyCollector) AddExpansion()           {}
func (dummyCollector) AddLeaf()                {}
func (dummyCollector) Complete() SearchMetrics { return SearchMetrics{} }
