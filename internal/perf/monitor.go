// Package perf tracks frame times and reports FPS periodically.
package perf

import (
	"math"
	"time"

	"github.com/charmbracelet/log"
)

// Stats is a snapshot of the monitor.
type Stats struct {
	FPS         float64
	AvgFrame    time.Duration
	MinFrame    time.Duration
	MaxFrame    time.Duration
	TotalFrames int64
}

// Monitor keeps the last Window frame times in a ring buffer and recomputes
// FPS every reportEvery. Not safe for concurrent use; call it from the game loop.
type Monitor struct {
	frameTimes  []float64 // seconds, ring buffer
	next        int
	filled      bool
	frameCount  int
	totalFrames int64
	lastReport  time.Time
	reportEvery time.Duration
	fps         float64
	now         func() time.Time
	logger      *log.Logger
	onReport    func(Stats)
}

// Option configures a Monitor.
type Option func(*Monitor)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Monitor) { m.now = now }
}

// WithReportHook is called after each periodic report.
func WithReportHook(fn func(Stats)) Option {
	return func(m *Monitor) { m.onReport = fn }
}

// NewMonitor creates a monitor. logger may be nil to disable reports.
func NewMonitor(window int, reportEvery time.Duration, logger *log.Logger, opts ...Option) *Monitor {
	if window <= 0 {
		window = 60
	}
	if reportEvery <= 0 {
		reportEvery = time.Second
	}
	m := &Monitor{
		frameTimes:  make([]float64, window),
		reportEvery: reportEvery,
		now:         time.Now,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.lastReport = m.now()
	return m
}

// Update records one frame that took deltaTime seconds.
func (m *Monitor) Update(deltaTime float64) {
	m.frameCount++
	m.totalFrames++
	m.frameTimes[m.next] = deltaTime
	m.next = (m.next + 1) % len(m.frameTimes)
	if m.next == 0 {
		m.filled = true
	}

	now := m.now()
	elapsed := now.Sub(m.lastReport)
	if elapsed < m.reportEvery {
		return
	}
	m.fps = float64(m.frameCount) / elapsed.Seconds()
	m.frameCount = 0
	m.lastReport = now

	st := m.Stats()
	if m.logger != nil {
		m.logger.Info("performance",
			"fps", round1(st.FPS),
			"avg_ms", ms(st.AvgFrame),
			"min_ms", ms(st.MinFrame),
			"max_ms", ms(st.MaxFrame),
		)
	}
	if m.onReport != nil {
		m.onReport(st)
	}
}

// Stats returns the current snapshot.
func (m *Monitor) Stats() Stats {
	st := Stats{FPS: m.fps, TotalFrames: m.totalFrames}
	samples := m.samples()
	if len(samples) == 0 {
		return st
	}
	sum, lo, hi := 0.0, math.Inf(1), 0.0
	for _, v := range samples {
		sum += v
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	st.AvgFrame = seconds(sum / float64(len(samples)))
	st.MinFrame = seconds(lo)
	st.MaxFrame = seconds(hi)
	return st
}

func (m *Monitor) samples() []float64 {
	if m.filled {
		return m.frameTimes
	}
	return m.frameTimes[:m.next]
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func ms(d time.Duration) float64 {
	return math.Round(float64(d)/float64(time.Millisecond)*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
