package buttons

// Debouncer is a debouncing algorithm and its associated state.
//
// The algorithms assume the button is polled at a regular interval.
type Debouncer interface {
	// Debounce accepts a newly polled raw state and returns the
	// debounced state. true indicates the switch is closed.
	Debounce(pressed bool) bool
}

// TrivialDebouncer returns the most recent polled state unchanged.
//
// With a 6ms poll interval the micro:bit's built-in buttons perform
// accurately with no debouncing at all.
type TrivialDebouncer struct{}

// Debounce implements Debouncer.
func (TrivialDebouncer) Debounce(pressed bool) bool {
	return pressed
}

const (
	sigmaMin           = 0
	sigmaMax           = 12
	sigmaLowThreshold  = 2
	sigmaHighThreshold = 8
)

// CountingDebouncer rejects noise using net open/closed counts with
// saturation.
//
// Each closed sample moves a counter up (saturating at 12) and each
// open sample moves it down (saturating at 0); the reported state
// latches pressed above 8 and released below 2, and holds its previous
// value in between.
//
// This is the algorithm used by the micro:bit runtime (as of version
// 2.1) with a 6ms polling interval; it's documented there as suitable
// for touch-sensing inputs as well as buttons.
//
// The zero value is ready to use, reporting released.
type CountingDebouncer struct {
	pressed bool
	count   uint8
}

// Debounce implements Debouncer.
func (d *CountingDebouncer) Debounce(pressed bool) bool {
	if pressed {
		if d.count != sigmaMax {
			d.count++
		}
		if d.count > sigmaHighThreshold {
			d.pressed = true
		}
	} else {
		if d.count != sigmaMin {
			d.count--
		}
		if d.count < sigmaLowThreshold {
			d.pressed = false
		}
	}
	return d.pressed
}
