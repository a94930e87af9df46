package monitor

import (
	"fmt"

	"github.com/mattheww/rmicrobit/buttons"
)

// DualEvent is an event from one of the two-button monitors.
type DualEvent uint8

const (
	// ClickA means the first button was pressed and released on its
	// own.
	ClickA DualEvent = iota
	// ClickB means the second button was pressed and released on its
	// own.
	ClickB
	// ClickAB means both buttons were down together at some point, and
	// the second one has now been released.
	ClickAB
	// HoldA means the first button was held on its own beyond the hold
	// threshold. Only a DualWithHold reports hold events.
	HoldA
	// HoldB means the second button was held on its own beyond the
	// hold threshold.
	HoldB
	// HoldAB means both buttons were held beyond the hold threshold
	// while down together.
	HoldAB
)

// String returns the event name.
func (e DualEvent) String() string {
	switch e {
	case ClickA:
		return "ClickA"
	case ClickB:
		return "ClickB"
	case ClickAB:
		return "ClickAB"
	case HoldA:
		return "HoldA"
	case HoldB:
		return "HoldB"
	case HoldAB:
		return "HoldAB"
	}
	return fmt.Sprintf("DualEvent(%d)", uint8(e))
}

// dualState is the event-generation state shared between the two
// buttons of a Dual.
//
// handle promises that consecutive calls for the two buttons within
// one poll cycle don't both report an event, and that each transaction
// generates exactly one event.
type dualState struct {
	seenBoth bool
}

// handle processes one button's poll result.
//
// click is the event to generate if this release ends a single-button
// transaction; otherPressed is the other button's current debounced
// state.
func (s *dualState) handle(
	ev buttons.TransitionEvent,
	otherPressed bool,
	click DualEvent,
) (DualEvent, bool) {
	switch ev {
	case buttons.Press:
		s.seenBoth = otherPressed
	case buttons.Release:
		if s.seenBoth {
			if !otherPressed {
				return ClickAB, true
			}
		} else {
			return click, true
		}
	}
	return 0, false
}

// Dual watches two buttons together, generating click events on
// release.
//
// The buttons needn't be the micro:bit's built-in buttons, though the
// generated events include 'A' and 'B' in their names.
type Dual struct {
	buttonA buttons.PollButton
	buttonB buttons.PollButton
	state   dualState
}

// NewDual returns a Dual watching the two specified buttons.
func NewDual(buttonA, buttonB buttons.PollButton) *Dual {
	return &Dual{buttonA: buttonA, buttonB: buttonB}
}

// Poll polls both buttons and filters for events.
//
// If both buttons have been pressed, returns ClickAB when the second
// one is released. Otherwise returns ClickA or ClickB when a button is
// released on its own. Otherwise ok == false.
func (m *Dual) Poll() (event DualEvent, ok bool) {
	eventA, okA := m.pollA()
	eventB, okB := m.pollB()
	if okA && okB {
		// dualState promises this can't happen
		panic("monitor: both buttons produced an event in one cycle")
	}
	if okA {
		return eventA, true
	}
	return eventB, okB
}

func (m *Dual) pollA() (DualEvent, bool) {
	ev, ok := m.buttonA.PollEvent()
	if !ok {
		return 0, false
	}
	return m.state.handle(ev, m.buttonB.IsPressed(), ClickA)
}

func (m *Dual) pollB() (DualEvent, bool) {
	ev, ok := m.buttonB.PollEvent()
	if !ok {
		return 0, false
	}
	return m.state.handle(ev, m.buttonA.IsPressed(), ClickB)
}
