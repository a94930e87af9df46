// Package monitor filters polled button state into high-level events.
//
// The single-button monitors report Click (and optionally Hold) for
// one button. The dual monitors treat two buttons as a single device,
// reporting exactly one event per 'transaction': a maximal interval
// during which at least one of the buttons stays pressed.
//
// Like the buttons package, nothing here uses interrupts or timers:
// call each monitor's Poll method at a regular interval (6ms is the
// intended cadence).
package monitor

import (
	"fmt"

	"github.com/mattheww/rmicrobit/buttons"
	"github.com/mattheww/rmicrobit/buttons/holding"
)

// Event is an event from a single-button monitor.
type Event uint8

const (
	// Click means the button was pressed and released (or just
	// pressed, for an EagerMonitor).
	Click Event = iota
	// Hold means the button has remained pressed beyond the hold
	// threshold. Only a HoldMonitor reports this.
	Hold
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case Click:
		return "Click"
	case Hold:
		return "Hold"
	}
	return fmt.Sprintf("Event(%d)", uint8(e))
}

// LazyMonitor generates a Click event when its button is released.
type LazyMonitor struct {
	button buttons.PollButton
}

// NewLazy returns a LazyMonitor watching the specified button.
func NewLazy(button buttons.PollButton) *LazyMonitor {
	return &LazyMonitor{button: button}
}

// Poll polls the button and filters for events.
//
// Returns Click if the button was released, otherwise ok == false.
func (m *LazyMonitor) Poll() (event Event, ok bool) {
	if ev, ok := m.button.PollEvent(); ok && ev == buttons.Release {
		return Click, true
	}
	return 0, false
}

// EagerMonitor generates a Click event when its button is pressed.
type EagerMonitor struct {
	button buttons.PollButton
}

// NewEager returns an EagerMonitor watching the specified button.
func NewEager(button buttons.PollButton) *EagerMonitor {
	return &EagerMonitor{button: button}
}

// Poll polls the button and filters for events.
//
// Returns Click if the button was pressed, otherwise ok == false.
func (m *EagerMonitor) Poll() (event Event, ok bool) {
	if ev, ok := m.button.PollEvent(); ok && ev == buttons.Press {
		return Click, true
	}
	return 0, false
}

// HoldMonitor generates Click and Hold events for a single button.
type HoldMonitor struct {
	button    buttons.PollButton
	annotator *holding.Annotator
}

// NewHold returns a HoldMonitor watching the specified button, using
// the specified hold timing.
func NewHold(button buttons.PollButton, desc holding.Descriptor) *HoldMonitor {
	return &HoldMonitor{
		button:    button,
		annotator: holding.NewAnnotator(desc),
	}
}

// Poll polls the button and filters for events.
//
// Returns Hold if the button has been down for longer than the hold
// threshold, Click if the button was released, otherwise ok == false.
//
// Note that a release after a Hold still reports Click: the hold
// annotator doesn't remember that a Hold was already reported for the
// current press. (The dual-button DualWithHold monitor suppresses the
// corresponding case.)
func (m *HoldMonitor) Poll() (event Event, ok bool) {
	ev, ok := m.annotator.Annotate(m.button.PollTransition())
	if !ok {
		return 0, false
	}
	switch ev {
	case holding.Release:
		return Click, true
	case holding.Hold:
		return Hold, true
	}
	return 0, false
}
