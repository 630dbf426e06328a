package renderer

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Progress is a monotonic counter of completed pixels, shared by every render
// worker. All mutation goes through the atomic Inc; workers never touch the
// underlying value directly.
type Progress struct {
	current atomic.Int64
	max     int64
}

// NewProgress creates a progress counter expecting max completions
func NewProgress(max int64) *Progress {
	return &Progress{max: max}
}

// Inc records one completed pixel and returns the new count
func (p *Progress) Inc() int64 {
	return p.current.Add(1)
}

// Current returns the number of completed pixels so far
func (p *Progress) Current() int64 {
	return p.current.Load()
}

// Max returns the expected number of completions
func (p *Progress) Max() int64 {
	return p.max
}

// Done reports whether every expected completion has been counted
func (p *Progress) Done() bool {
	return p.current.Load() >= p.max
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Bar renders a terminal progress bar with a spinner for the given count.
// Callers draw it outside the parallel render region.
func (p *Progress) Bar(current int64) string {
	// A counter expecting nothing is complete, matching Done.
	percent := 1.0
	if p.max > 0 {
		percent = float64(current) / float64(p.max)
	}
	const barWidth = 48
	filled := int(percent*barWidth + 0.5)
	if filled > barWidth {
		filled = barWidth
	}

	bar := strings.Repeat("━", filled) +
		fmt.Sprintf("\x1b[90m%s\x1b[0m", strings.Repeat("─", barWidth-filled))

	pct := int(percent * 100)
	spinner := ""
	if pct < 100 {
		frame := spinnerFrames[int(current)%len(spinnerFrames)]
		spinner = fmt.Sprintf("\x1b[1m\x1b[36m%s\x1b[0m", frame)
	}

	return fmt.Sprintf("%s %3d%% %s  ", spinner, pct, bar)
}
