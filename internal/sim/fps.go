package sim

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"
)

// FPSCounter averages the frame rate over consecutive one-second windows.
// The reported value only changes when a window closes.
type FPSCounter struct {
	windowStart time.Duration
	frames      int
	fps         int
}

// Reset starts a new window at now and forgets the frames counted so far.
func (c *FPSCounter) Reset(now time.Duration) {
	c.windowStart = now
	c.frames = 0
}

// Observe counts a frame delivered at now. When at least one second has passed since the
// window started it computes the rounded average, opens a new window and returns true.
func (c *FPSCounter) Observe(now time.Duration) bool {
	c.frames++
	span := now - c.windowStart
	if span < time.Second {
		return false
	}
	c.fps = int(math.Round(float64(c.frames) / span.Seconds()))
	c.Reset(now)
	return true
}

// FPS is the average of the last closed window (0 before the first one closes).
func (c *FPSCounter) FPS() int {
	return c.fps
}

// DefaultStatsWindow is the number of frame times FrameStats keeps.
const DefaultStatsWindow = 120

// FrameStats keeps the most recent frame times (milliseconds) for the debug overlay.
type FrameStats struct {
	samples []float64
	next    int
	full    bool
}

// NewFrameStats returns stats over the last window frames; window <= 0 uses DefaultStatsWindow.
func NewFrameStats(window int) *FrameStats {
	if window <= 0 {
		window = DefaultStatsWindow
	}
	return &FrameStats{samples: make([]float64, window)}
}

// Add records a frame time in seconds.
func (s *FrameStats) Add(dt float32) {
	s.samples[s.next] = float64(dt) * 1000
	s.next++
	if s.next == len(s.samples) {
		s.next = 0
		s.full = true
	}
}

// Len is the number of samples currently held.
func (s *FrameStats) Len() int {
	if s.full {
		return len(s.samples)
	}
	return s.next
}

// MeanStdDev returns the mean and sample standard deviation of the held frame times in ms.
// With fewer than two samples the deviation is zero.
func (s *FrameStats) MeanStdDev() (mean, std float64) {
	n := s.Len()
	if n == 0 {
		return 0, 0
	}
	x := s.samples[:n]
	if n < 2 {
		return stat.Mean(x, nil), 0
	}
	return stat.MeanStdDev(x, nil)
}
