// Package pace inserts the presentational pauses between game steps. Pauses
// never influence an outcome; a disabled Pacer returns immediately.
package pace

import (
	"context"
	"time"

	"github.com/coder/quartz"
)

// Pacer waits on an injected clock so tests can drive time explicitly.
type Pacer struct {
	clock   quartz.Clock
	enabled bool
}

// New returns a Pacer on clock. A nil clock uses the real one.
func New(clock quartz.Clock, enabled bool) *Pacer {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Pacer{clock: clock, enabled: enabled}
}

// Disabled returns a Pacer whose pauses are no-ops.
func Disabled() *Pacer {
	return New(nil, false)
}

// Enabled reports whether pauses actually wait.
func (p *Pacer) Enabled() bool {
	return p != nil && p.enabled
}

// Pause blocks for d or until ctx is done. tag labels the timer for quartz traps.
func (p *Pacer) Pause(ctx context.Context, d time.Duration, tag string) error {
	if !p.Enabled() || d <= 0 {
		return ctx.Err()
	}

	timer := p.clock.NewTimer(d, "pace", tag)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
