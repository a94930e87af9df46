// Package buttons reads debounced state from pushbuttons and switches.
//
// A Button wraps a GPIO input pin and a debouncing algorithm, and
// tracks a single logical pressed/released state. Nothing in this
// package uses interrupts or timers: the client is responsible for
// calling one of the poll methods at a regular interval (6ms is the
// intended cadence; the hold and debounce timings elsewhere in this
// module assume it).
//
// Higher-level event filtering (clicks, holds, two-button chords) is
// provided by the buttons/monitor package.
package buttons

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

// Transition is the old and new state of a button, as reported by a
// poll. The two states may be the same.
type Transition struct {
	WasPressed bool
	IsPressed  bool
}

// TransitionEvent is a press or release event.
type TransitionEvent uint8

const (
	// Press means the button changed from released to pressed.
	Press TransitionEvent = iota
	// Release means the button changed from pressed to released.
	Release
)

// String returns the event name.
func (e TransitionEvent) String() string {
	switch e {
	case Press:
		return "Press"
	case Release:
		return "Release"
	}
	return fmt.Sprintf("TransitionEvent(%d)", uint8(e))
}

// PollButton is a button which keeps track of its debounced state,
// updating it when a poll method is called.
//
// PollTransition and PollEvent have the same effect and report
// equivalent information; use whichever form is more convenient.
type PollButton interface {
	// IsPressed reports whether the button was in pressed state when
	// last polled. It doesn't read the underlying device.
	IsPressed() bool

	// PollTransition reads the underlying device and returns the
	// button's previous and current state.
	PollTransition() Transition

	// PollEvent reads the underlying device and reports any change in
	// state. ok is false if the state didn't change.
	PollEvent() (event TransitionEvent, ok bool)
}

// Opts is the configuration for a Button.
type Opts struct {
	// Pull is the pull resistor to request for the pin
	// (default: gpio.Float, suiting the micro:bit's external pull-ups).
	Pull gpio.Pull

	// Debouncer filters the raw samples (default: TrivialDebouncer,
	// suitable when the poll interval already exceeds the switch's
	// bounce time).
	Debouncer Debouncer
}

// Button is a PollButton based on a GPIO pin.
//
// The pin is read as active low: electrically low means pressed.
//
// The button behaves as if its switch was released before the first
// poll, so if the switch is already closed when New is called, the
// first PollEvent reports Press.
type Button struct {
	pin       gpio.PinIn
	debouncer Debouncer
	pressed   bool
}

// New configures the specified pin as an input and returns a Button.
//
// opts can be nil to use defaults (floating input, no debouncing).
func New(pin gpio.PinIn, opts *Opts) (*Button, error) {
	if pin == nil {
		return nil, errors.New("buttons: pin is required")
	}
	if opts == nil {
		opts = &Opts{}
	}
	pull := opts.Pull
	if pull == gpio.PullNoChange {
		pull = gpio.Float
	}
	debouncer := opts.Debouncer
	if debouncer == nil {
		debouncer = TrivialDebouncer{}
	}
	if err := pin.In(pull, gpio.NoEdge); err != nil {
		return nil, fmt.Errorf("buttons: configuring %s: %w", pin, err)
	}
	return &Button{pin: pin, debouncer: debouncer}, nil
}

// IsPressed reports whether the button was pressed when last polled.
func (b *Button) IsPressed() bool {
	return b.pressed
}

// PollTransition reads the pin and returns the button's previous and
// current debounced state.
func (b *Button) PollTransition() Transition {
	was := b.pressed
	b.pressed = b.debouncer.Debounce(b.pin.Read() == gpio.Low)
	return Transition{WasPressed: was, IsPressed: b.pressed}
}

// PollEvent reads the pin and reports any change in debounced state.
func (b *Button) PollEvent() (TransitionEvent, bool) {
	return EventFromTransition(b.PollTransition())
}

// EventFromTransition converts a Transition to a TransitionEvent.
// ok is false if the transition doesn't represent a change of state.
func EventFromTransition(t Transition) (event TransitionEvent, ok bool) {
	switch {
	case !t.WasPressed && t.IsPressed:
		return Press, true
	case t.WasPressed && !t.IsPressed:
		return Release, true
	}
	return 0, false
}
