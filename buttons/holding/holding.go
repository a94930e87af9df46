// Package holding turns button transitions into press, release and
// hold events.
//
// This is part of the implementation of the 'with hold' monitors in
// buttons/monitor, public so that variants with different timings can
// be built.
package holding

import (
	"fmt"

	"github.com/mattheww/rmicrobit/buttons"
)

// Descriptor describes the number of poll ticks to treat as a hold.
type Descriptor struct {
	// Start is the counter value set when the button is pressed.
	Start uint16
	// Increment is added to the counter on each tick the button
	// remains pressed.
	Increment uint16
	// Ticks is the counter value at which Hold is reported.
	Ticks uint16
}

// DefaultDescriptor reports a hold after 250 ticks, which is 1.5s at
// the intended 6ms polling interval.
var DefaultDescriptor = Descriptor{Start: 0, Increment: 1, Ticks: 250}

// Event is a buttons.TransitionEvent with an additional Hold
// possibility.
type Event uint8

const (
	// Press means the button changed from released to pressed.
	Press Event = iota
	// Release means the button changed from pressed to released.
	//
	// Release is reported even if a Hold was already reported for the
	// same press; it's up to the client to suppress it if that's
	// wanted.
	Release
	// Hold means the button has remained pressed for the descriptor's
	// tick count. It is reported exactly once per press.
	Hold
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case Press:
		return "Press"
	case Release:
		return "Release"
	case Hold:
		return "Hold"
	}
	return fmt.Sprintf("Event(%d)", uint8(e))
}

// Annotator is a hold-detection algorithm and its associated state.
type Annotator struct {
	desc    Descriptor
	counter uint16
}

// NewAnnotator returns an Annotator using the specified Descriptor.
func NewAnnotator(desc Descriptor) *Annotator {
	return &Annotator{desc: desc, counter: desc.Start}
}

// Annotate converts the result of a button poll to an event.
//
// Reports events like buttons.PollButton's PollEvent, with Hold as a
// possibility as well as Press and Release. ok is false if there is no
// event for this tick.
func (a *Annotator) Annotate(t buttons.Transition) (event Event, ok bool) {
	switch {
	case !t.WasPressed && t.IsPressed:
		a.counter = a.desc.Start
		return Press, true
	case t.WasPressed && !t.IsPressed:
		return Release, true
	case t.WasPressed && t.IsPressed:
		// The counter saturates just past the threshold, so Hold fires
		// on exactly one tick.
		if a.counter <= a.desc.Ticks {
			a.counter += a.desc.Increment
		}
		if a.counter == a.desc.Ticks {
			return Hold, true
		}
	}
	return 0, false
}
