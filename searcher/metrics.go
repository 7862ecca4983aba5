package searcher

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Goroutines  int
	Depth       int
	Duration    time.Duration
	Candidates  int   // Root moves scored
	Nodes       int64 // minimax calls, root children included
	Evaluations int64 // Leaf evaluations
	Cutoffs     int64 // Alpha-beta prunes
}

type Collector interface {
	Start(goroutines, depth int)
	AddNode()
	AddEvaluation()
	AddCutoff()
	Complete(candidates int) SearchMetric
}

type collector struct {
	goroutines  int
	depth       int
	startTime   time.Time
	nodes       atomic.Int64
	evaluations atomic.Int64
	cutoffs     atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, depth int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.depth = depth
	m.nodes.Store(0)
	m.evaluations.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddEvaluation() {
	m.evaluations.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete(candidates int) SearchMetric {
	return SearchMetric{
		Goroutines:  m.goroutines,
		Depth:       m.depth,
		Duration:    time.Since(m.startTime),
		Candidates:  candidates,
		Nodes:       m.nodes.Load(),
		Evaluations: m.evaluations.Load(),
		Cutoffs:     m.cutoffs.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, depth int)          {}
func (m *dummyCollector) AddNode()                             {}
func (m *dummyCollector) AddEvaluation()                       {}
func (m *dummyCollector) AddCutoff()                           {}
func (m *dummyCollector) Complete(candidates int) SearchMetric { return SearchMetric{} }
