package monitor

import (
	"github.com/mattheww/rmicrobit/buttons"
	"github.com/mattheww/rmicrobit/buttons/holding"
)

// holdState is the shared coordination state of a DualWithHold.
type holdState uint8

const (
	// one button has been pressed
	seenOne holdState = iota
	// both buttons have been down together this transaction
	seenBoth
	// A crossed its hold threshold while both were down
	heldASeenB
	// B crossed its hold threshold while both were down
	heldBSeenA
	// a hold event has been reported; swallow everything until the
	// transaction ends
	reportedHold
)

// role parameterizes the transition logic for one of the two buttons,
// so a single handle function serves both.
type role struct {
	click     DualEvent
	hold      DualEvent
	held      holdState
	otherHeld holdState
}

var (
	roleA = role{click: ClickA, hold: HoldA, held: heldASeenB, otherHeld: heldBSeenA}
	roleB = role{click: ClickB, hold: HoldB, held: heldBSeenA, otherHeld: heldASeenB}
)

// dualHoldState is the event-generation state shared between the two
// buttons of a DualWithHold.
//
// handle promises that consecutive calls for the two buttons within
// one poll cycle don't both report an event, and that each transaction
// generates exactly one event (hold transactions report nothing for
// their trailing releases).
type dualHoldState struct {
	state holdState
}

func newDualHoldState() dualHoldState {
	// Every transaction restarts the state on its first Press, so the
	// initial value is irrelevant.
	return dualHoldState{state: reportedHold}
}

// handle processes one annotated poll result for the button playing
// role r; otherPressed is the other button's current debounced state.
func (s *dualHoldState) handle(
	r role,
	ev holding.Event,
	otherPressed bool,
) (DualEvent, bool) {
	switch {
	case ev == holding.Press && !otherPressed:
		// all transactions start here
		s.state = seenOne
	case ev == holding.Press && s.state == seenOne:
		s.state = seenBoth
	case ev == holding.Release && s.state == seenOne:
		// this transaction ends here
		return r.click, true
	case ev == holding.Release && s.state != reportedHold:
		if !otherPressed {
			// this transaction ends here
			return ClickAB, true
		}
	case ev == holding.Hold && s.state == seenOne:
		s.state = reportedHold
		return r.hold, true
	case ev == holding.Hold && s.state == seenBoth:
		s.state = r.held
	case ev == holding.Hold && s.state == r.otherHeld:
		s.state = reportedHold
		return HoldAB, true
	}
	return 0, false
}

// DualWithHold watches two buttons together, generating click and hold
// events.
//
// The buttons needn't be the micro:bit's built-in buttons, though the
// generated events include 'A' and 'B' in their names.
type DualWithHold struct {
	buttonA    buttons.PollButton
	buttonB    buttons.PollButton
	annotatorA *holding.Annotator
	annotatorB *holding.Annotator
	state      dualHoldState
}

// NewDualWithHold returns a DualWithHold watching the two specified
// buttons, using the specified hold timing for each.
func NewDualWithHold(buttonA, buttonB buttons.PollButton, desc holding.Descriptor) *DualWithHold {
	return &DualWithHold{
		buttonA:    buttonA,
		buttonB:    buttonB,
		annotatorA: holding.NewAnnotator(desc),
		annotatorB: holding.NewAnnotator(desc),
		state:      newDualHoldState(),
	}
}

// Poll polls both buttons and filters for events.
//
// If one button has been down beyond the hold threshold and the other
// hasn't been pressed, returns HoldA or HoldB. If both buttons have
// been down together beyond the hold threshold, returns HoldAB.
// Otherwise, if both buttons have been pressed, returns ClickAB when
// the second one is released; and a button released on its own returns
// ClickA or ClickB. Otherwise ok == false.
//
// Once a hold event has been reported, no further events are reported
// until after both buttons have been released.
func (m *DualWithHold) Poll() (event DualEvent, ok bool) {
	eventA, okA := m.pollA()
	eventB, okB := m.pollB()
	if okA && okB {
		// dualHoldState promises this can't happen
		panic("monitor: both buttons produced an event in one cycle")
	}
	if okA {
		return eventA, true
	}
	return eventB, okB
}

func (m *DualWithHold) pollA() (DualEvent, bool) {
	ev, ok := m.annotatorA.Annotate(m.buttonA.PollTransition())
	if !ok {
		return 0, false
	}
	return m.state.handle(roleA, ev, m.buttonB.IsPressed())
}

func (m *DualWithHold) pollB() (DualEvent, bool) {
	ev, ok := m.annotatorB.Annotate(m.buttonB.PollTransition())
	if !ok {
		return 0, false
	}
	return m.state.handle(roleB, ev, m.buttonA.IsPressed())
}
