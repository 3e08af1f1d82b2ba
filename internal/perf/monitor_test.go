package perf

import (
	"bytes"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func TestMonitorEmpty(t *testing.T) {
	m := NewMonitor(60, time.Second, nil)
	st := m.Stats()
	assert.Zero(t, st.FPS)
	assert.Zero(t, st.AvgFrame)
	assert.Zero(t, st.MinFrame)
}

func TestMonitorKeepsLastWindow(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	m := NewMonitor(3, time.Hour, nil, WithClock(clock.Now))

	for _, dt := range []float64{0.5, 0.010, 0.020, 0.030} {
		m.Update(dt)
	}

	st := m.Stats()
	assert.Equal(t, 20*time.Millisecond, st.AvgFrame.Round(time.Microsecond))
	assert.Equal(t, 10*time.Millisecond, st.MinFrame.Round(time.Microsecond))
	assert.Equal(t, 30*time.Millisecond, st.MaxFrame.Round(time.Microsecond))
	assert.Equal(t, int64(4), st.TotalFrames)
}

func TestMonitorReportsOncePerInterval(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	var reports []Stats
	var buf bytes.Buffer
	logger := log.New(&buf)

	m := NewMonitor(60, time.Second, logger,
		WithClock(clock.Now),
		WithReportHook(func(st Stats) { reports = append(reports, st) }),
	)

	for i := 0; i < 49; i++ {
		clock.Advance(20 * time.Millisecond)
		m.Update(0.020)
	}
	require.Empty(t, reports)
	assert.Zero(t, m.Stats().FPS)

	clock.Advance(20 * time.Millisecond)
	m.Update(0.020)
	require.Len(t, reports, 1)
	assert.InDelta(t, 50, m.Stats().FPS, 0.01)
	assert.InDelta(t, 50, reports[0].FPS, 0.01)
	assert.Contains(t, buf.String(), "performance")
	assert.Contains(t, buf.String(), "fps=50")

	// Counter restarts after a report.
	for i := 0; i < 25; i++ {
		clock.Advance(40 * time.Millisecond)
		m.Update(0.040)
	}
	require.Len(t, reports, 2)
	assert.InDelta(t, 25, m.Stats().FPS, 0.01)
}

func TestNewMonitorDefaults(t *testing.T) {
	m := NewMonitor(0, 0, nil)
	assert.Len(t, m.frameTimes, 60)
	assert.Equal(t, time.Second, m.reportEvery)
}
