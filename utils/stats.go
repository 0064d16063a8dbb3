package utils

import (
	"fmt"
	"io"
	"time"
)

// Lap is the time spent between two calls to LapTimer.Lap
type Lap struct {
	Title string
	Wall  time.Duration
	CPU   time.Duration
}

// LapTimer reports wall-clock and process CPU time per phase
type LapTimer struct {
	out   io.Writer
	start time.Time
	cpu   time.Duration
}

// NewLapTimer starts a timer that writes each lap to out
func NewLapTimer(out io.Writer) *LapTimer {
	if out == nil {
		out = io.Discard
	}
	return &LapTimer{out: out, start: time.Now(), cpu: cpuTime()}
}

// Lap writes the time since the previous lap, prefixed by title, and starts the next one.
func (t *LapTimer) Lap(title string) Lap {
	if title == "" {
		title = "Lap:"
	}

	now, cpu := time.Now(), cpuTime()
	lap := Lap{Title: title, Wall: now.Sub(t.start), CPU: cpu - t.cpu}
	t.start, t.cpu = now, cpu

	fmt.Fprintf(t.out, "%s%d CPU:%d\n", lap.Title, lap.Wall.Milliseconds(), lap.CPU.Microseconds())
	return lap
}
