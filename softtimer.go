package rmicrobit

import (
	"time"

	"github.com/mattheww/rmicrobit/ledmatrix"
)

// DefaultTick is the nominal display tick period (16µs, matching the
// reference hardware timer).
const DefaultTick = 16 * time.Microsecond

// SoftwareTimer is a wall-clock implementation of ledmatrix.Timer for
// hosted targets without a dedicated hardware timer.
//
// It doesn't generate interrupts; instead the events are detected when
// the Check methods run, so Display.HandleEvent should be called in a
// tight loop (sleeping for a fraction of a tick between calls keeps
// the jitter acceptable). A secondary alarm whose tick has already
// passed when it is programmed fires on the next check.
type SoftwareTimer struct {
	tick        time.Duration
	cycle       time.Duration
	cycleStart  time.Time
	secEnabled  bool
	secFired    bool
	secDeadline time.Duration // offset from cycle start
}

// NewSoftwareTimer returns a SoftwareTimer with the specified tick
// period. A zero tick means DefaultTick; a longer tick makes the
// display as a whole run correspondingly slower.
func NewSoftwareTimer(tick time.Duration) *SoftwareTimer {
	if tick == 0 {
		tick = DefaultTick
	}
	return &SoftwareTimer{tick: tick}
}

// InitialiseCycle implements ledmatrix.Timer.
func (t *SoftwareTimer) InitialiseCycle(ticks uint16) {
	t.cycle = t.tick * time.Duration(ticks)
	t.cycleStart = time.Now()
	t.secEnabled = false
	t.secFired = false
}

// EnableSecondary implements ledmatrix.Timer.
func (t *SoftwareTimer) EnableSecondary() {
	t.secEnabled = true
}

// DisableSecondary implements ledmatrix.Timer.
func (t *SoftwareTimer) DisableSecondary() {
	t.secEnabled = false
}

// ProgramSecondary implements ledmatrix.Timer.
//
// ticks is measured from the start of the primary cycle.
func (t *SoftwareTimer) ProgramSecondary(ticks uint16) {
	t.secDeadline = t.tick * time.Duration(ticks)
	t.secFired = false
}

// CheckPrimary implements ledmatrix.Timer.
func (t *SoftwareTimer) CheckPrimary() bool {
	if t.cycle == 0 {
		return false
	}
	elapsed := time.Since(t.cycleStart)
	if elapsed < t.cycle {
		return false
	}
	// Skip whole cycles if the caller fell behind rather than burst
	// through the backlog.
	t.cycleStart = t.cycleStart.Add(elapsed - elapsed%t.cycle)
	t.secFired = false
	return true
}

// CheckSecondary implements ledmatrix.Timer.
func (t *SoftwareTimer) CheckSecondary() bool {
	if !t.secEnabled || t.secFired || t.cycle == 0 {
		return false
	}
	if time.Since(t.cycleStart) < t.secDeadline {
		return false
	}
	t.secFired = true
	return true
}

var _ ledmatrix.Timer = (*SoftwareTimer)(nil)
