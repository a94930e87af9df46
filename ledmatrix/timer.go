package ledmatrix

// Timer is the interface the display needs to work with a hardware
// timer.
//
// The timer counts ticks of 16µs. It resets itself after the number of
// ticks passed to InitialiseCycle (the primary cycle) and signals an
// interrupt. It also provides a secondary alarm which can be programmed
// to signal an interrupt at a specified point within the primary cycle.
//
// A different tick period makes the display as a whole run
// correspondingly faster or slower. A no-op implementation of the
// secondary-alarm methods gives a display which treats level 9 as on
// and all other levels as off.
type Timer interface {
	// InitialiseCycle starts the timer with the specified number of
	// ticks in the primary cycle. Leaves the secondary alarm disabled.
	InitialiseCycle(ticks uint16)

	// EnableSecondary enables interrupts from the secondary alarm.
	EnableSecondary()

	// DisableSecondary disables interrupts from the secondary alarm.
	DisableSecondary()

	// ProgramSecondary sets the tick for the secondary alarm, measured
	// from the start of the primary cycle (not from the previous
	// secondary signal).
	ProgramSecondary(ticks uint16)

	// CheckPrimary reports whether a new primary cycle has begun since
	// the last call, clearing the underlying event.
	CheckPrimary() bool

	// CheckSecondary reports whether the secondary alarm has fired
	// since the last call, clearing the underlying event.
	CheckSecondary() bool
}

// CycleTicks is the length of the primary cycle, in 16µs ticks: 6ms
// per row.
const CycleTicks = 375

// Tick, within the primary cycle, at which LEDs of each brightness
// level are turned on. Level 9 columns are lit for the whole row slot
// and level 0 columns never, so neither has an entry here.
//
// The values are chosen so that each level's total on-time is
// approximately 1.9 times the previous level's, matching the timings
// used by the micro:bit MicroPython port.
var brightnessTicks = [Brightnesses]uint16{
	0,   // level 0: never lit
	373, // level 1: 2 ticks on
	371,
	367,
	360,
	347,
	322,
	273,
	176,
	0, // level 9: lit from cycle start
}
