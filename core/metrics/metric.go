package metrics

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
)

var Default = NewMetrics()

type Collectable interface {
	Collect() MetricPoint
}

// Metrics samples its counters and gauges into in-memory series.
type Metrics struct {
	mu      sync.Mutex
	metrics []Collectable
	series  map[string][]MetricPoint
}

func NewMetrics() *Metrics {
	return &Metrics{
		series: make(map[string][]MetricPoint),
	}
}

type MetricPoint struct {
	Time  int64
	Value int64
	Path  string
}

// Run samples every interval until ctx is done, then takes a final sample.
// A non-positive interval only takes the final sample.
func (m *Metrics) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		<-ctx.Done()
		m.Flush()
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			m.Flush()
			return
		case <-ticker.C:
			m.Flush()
		}
	}
}

// Flush takes one sample of every registered metric.
func (m *Metrics) Flush() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.metrics {
		pt := c.Collect()
		m.series[pt.Path] = append(m.series[pt.Path], pt)
	}
}

// Series returns a copy of the samples recorded for path.
func (m *Metrics) Series(path string) []MetricPoint {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]MetricPoint(nil), m.series[path]...)
}

func (m *Metrics) Print() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	paths := make([]string, 0, len(m.series))
	for path := range m.series {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	builder := strings.Builder{}
	for _, path := range paths {
		for _, pt := range m.series[path] {
			builder.WriteString(fmt.Sprintf("%s %s %d\n", path, humanize.Comma(pt.Value), pt.Time))
		}
	}
	return builder.String()
}

func (m *Metrics) register(c Collectable) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.metrics = append(m.metrics, c)
}

func (m *Metrics) NewCounter(path string) *Counter {
	c := &Counter{path: path}
	m.register(c)
	return c
}

func (m *Metrics) NewGauge(path string) *Gauge {
	g := &Gauge{path: path}
	m.register(g)
	return g
}

type Counter struct {
	path  string
	count int64
}

func (c *Counter) Inc() {
	atomic.AddInt64(&c.count, 1)
}

func (c *Counter) Add(n int64) {
	atomic.AddInt64(&c.count, n)
}

func (c *Counter) Collect() MetricPoint {
	return MetricPoint{
		Time:  time.Now().Unix(),
		Value: atomic.LoadInt64(&c.count),
		Path:  c.path,
	}
}

type Gauge struct {
	path  string
	value int64
}

func (g *Gauge) Set(v int64) {
	atomic.StoreInt64(&g.value, v)
}

func (g *Gauge) Collect() MetricPoint {
	return MetricPoint{
		Time:  time.Now().Unix(),
		Value: atomic.LoadInt64(&g.value),
		Path:  g.path,
	}
}
