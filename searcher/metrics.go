package searcher

import (
	"time"

	"pyl/game"
)

// IterationMetric records one deepening pass.
type IterationMetric struct {
	Depth       int
	CacheSize   int
	Uncertainty game.Prob
}

// SearchMetric summarizes one Run.
type SearchMetric struct {
	Duration   time.Duration
	Iterations []IterationMetric
	Solved     bool
}

type Collector interface {
	Start(options SearchOptions)
	AddIteration(iteration IterationMetric)
	Complete(solved bool) SearchMetric
}

type collector struct {
	startTime  time.Time
	iterations []IterationMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(options SearchOptions) {
	c.startTime = time.Now()
	c.iterations = nil
}

func (c *collector) AddIteration(iteration IterationMetric) {
	c.iterations = append(c.iterations, iteration)
}

func (c *collector) Complete(solved bool) SearchMetric {
	return SearchMetric{
		Duration:   time.Since(c.startTime),
		Iterations: c.iterations,
		Solved:     solved,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (dummyCollector) Start(options SearchOptions)            {}
func (dummyCollector) AddIteration(iteration IterationMetric) {}
func (dummyCollector) Complete(solved bool) SearchMetric      { return SearchMetric{} }
