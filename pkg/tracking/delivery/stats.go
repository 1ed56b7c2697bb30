// Package delivery records how long tracker deliveries take.
package delivery

import (
	"fmt"
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Stats is a concurrency safe latency histogram, values in microseconds.
type Stats struct {
	mu        sync.Mutex
	histogram *hdrhistogram.Histogram
}

func NewStats() *Stats {
	return &Stats{
		// up to a minute, 3 significant figures
		histogram: hdrhistogram.New(1, 60000000, 3),
	}
}

// Record adds a delivery duration.
func (s *Stats) Record(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_ = s.histogram.RecordValue(d.Microseconds())
}

// Count returns how many deliveries were recorded.
func (s *Stats) Count() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.histogram.TotalCount()
}

// String summarizes the recorded latencies.
func (s *Stats) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fmt.Sprintf(
		"deliveries: %d p50: %dµs p99: %dµs max: %dµs",
		s.histogram.TotalCount(),
		s.histogram.ValueAtQuantile(50),
		s.histogram.ValueAtQuantile(99),
		s.histogram.Max(),
	)
}
