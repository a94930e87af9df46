package ledmatrix

import "fmt"

// Event describes what a call to Display.HandleEvent processed.
type Event uint8

const (
	// EventNone means no timer event was pending.
	EventNone Event = iota
	// EventNewRow means a new primary cycle (a new row slot) began.
	// This happens at a regular interval, so it can be used as a
	// time base by the rest of the program.
	EventNewRow
	// EventLightLevel means a secondary alarm fired and more LEDs were
	// turned on in the current row.
	EventLightLevel
)

// IsNewRow reports whether the event indicates the start of a new
// primary cycle.
func (e Event) IsNewRow() bool {
	return e == EventNewRow
}

// Display is the state of the multiplexed greyscale renderer.
//
// A Display lights one matrix row per primary cycle, switching rows
// circularly. At the start of a row's slot it lights the row's
// brightest columns; it then programs the secondary alarm so that
// dimmer columns are turned on progressively later within the cycle.
// All LEDs in the row turn off together at the next primary tick, so a
// column's total on-time is determined by when it was turned on.
//
// Create a Display with NewDisplay, call Initialise once, call
// HandleEvent from the timer's interrupt context, and replace the
// displayed image with SetFrame.
//
// SetFrame must not run concurrently with, or be interrupted by,
// HandleEvent; arranging that is the caller's responsibility.
type Display struct {
	plans []RowPlan
	row   int
	// next brightness level to process for the current row
	nextBrightness uint8
	// snapshot of the row being rendered, so SetFrame between two
	// ticks can't change a row mid-render
	current RowPlan
}

// NewDisplay returns a blank Display for a matrix with the specified
// number of electrical rows.
func NewDisplay(rows int) *Display {
	if rows <= 0 {
		panic(fmt.Sprintf("ledmatrix: invalid row count %d", rows))
	}
	return &Display{plans: make([]RowPlan, rows)}
}

// Initialise prepares the hardware for use by the display.
//
// Call this once, before the first HandleEvent.
func Initialise(t Timer, c Control) {
	c.InitialiseForDisplay()
	t.InitialiseCycle(CycleTicks)
}

// SetFrame accepts a new image to be displayed.
//
// The frame's data is copied, so the caller is free to reuse it.
//
// Panics if the frame's row count doesn't match the display's.
func (d *Display) SetFrame(f Frame) {
	if f.NumRows() != len(d.plans) {
		panic(fmt.Sprintf("ledmatrix: frame has %d rows, display has %d",
			f.NumRows(), len(d.plans)))
	}
	for row := range d.plans {
		d.plans[row] = f.Plan(row)
	}
}

// HandleEvent updates the LEDs and timer state after a timer
// interrupt.
//
// Call this in the interrupt handler for the display's timer; it
// checks and clears both the primary and secondary timer events.
//
// Returns an Event saying what was processed; EventNewRow occurs once
// per primary cycle.
func (d *Display) HandleEvent(t Timer, c Control) Event {
	primary := t.CheckPrimary()
	secondary := t.CheckSecondary()
	// A new row supersedes any pending sub-row work: the schedule is
	// rebuilt from the new row's plan.
	if primary {
		d.startRow(t, c)
		return EventNewRow
	}
	if secondary {
		d.lightLevel(t, c)
		return EventLightLevel
	}
	return EventNone
}

// startRow begins the slot for the next row: lights its brightest
// columns and schedules the first secondary alarm, if any.
func (d *Display) startRow(t Timer, c Control) {
	d.row++
	if d.row == len(d.plans) {
		d.row = 0
	}
	d.current = d.plans[d.row]
	c.DisplayRowLEDs(d.row, d.current.ColumnsAt(MaxBrightness))
	d.nextBrightness = MaxBrightness
	d.programBrightness(t)
}

// lightLevel turns on the columns for the scheduled brightness level
// and schedules the next one.
func (d *Display) lightLevel(t Timer, c Control) {
	c.LightCurrentRowLEDs(d.current.ColumnsAt(d.nextBrightness))
	d.programBrightness(t)
}

// programBrightness finds the next lower brightness level with columns
// to light and programs the secondary alarm for it, or disables the
// alarm if no positive level remains populated.
func (d *Display) programBrightness(t Timer) {
	for {
		d.nextBrightness--
		if d.nextBrightness == 0 {
			t.DisableSecondary()
			return
		}
		if !d.current.ColumnsAt(d.nextBrightness).IsEmpty() {
			break
		}
	}
	t.ProgramSecondary(brightnessTicks[d.nextBrightness])
	t.EnableSecondary()
}
