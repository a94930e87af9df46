package rmicrobit

import (
	"fmt"

	"github.com/mattheww/rmicrobit/ledmatrix"
	"periph.io/x/conn/v3/gpio"
)

// DisplayPort drives the LED matrix through GPIO pins, implementing
// ledmatrix.Control.
//
// An LED lights when its row pin is high and its column pin is low.
// Selecting a row deselects the other rows, so LEDs from at most one
// row are lit at any time.
//
// The ledmatrix.Control methods can't report errors, so pin write
// failures are recorded instead; check Err once the display is
// running if the wiring is in doubt.
type DisplayPort struct {
	pins       DisplayPins
	currentRow int
	err        error
}

// NewDisplayPort validates the pins and returns a DisplayPort.
func NewDisplayPort(pins DisplayPins) (*DisplayPort, error) {
	for i, p := range pins.Rows {
		if p == nil {
			return nil, fmt.Errorf("rmicrobit: row pin %d is required", i)
		}
	}
	for i, p := range pins.Cols {
		if p == nil {
			return nil, fmt.Errorf("rmicrobit: column pin %d is required", i)
		}
	}
	return &DisplayPort{pins: pins}, nil
}

// InitialiseForDisplay implements ledmatrix.Control.
//
// Deselects every row and column, leaving all LEDs off.
func (p *DisplayPort) InitialiseForDisplay() {
	for _, pin := range p.pins.Rows {
		p.out(pin, gpio.Low)
	}
	for _, pin := range p.pins.Cols {
		p.out(pin, gpio.High)
	}
}

// DisplayRowLEDs implements ledmatrix.Control.
//
// In the specified row, lights exactly the LEDs in cols; turns off all
// LEDs in the other rows. Bit 0 of cols is column 0.
func (p *DisplayPort) DisplayRowLEDs(row int, cols ledmatrix.ColumnSet) {
	if row < 0 || row >= MatrixRows {
		panic(fmt.Sprintf("rmicrobit: row %d out of range", row))
	}
	// Deselect rows before changing columns so no other row shows a
	// transient pattern.
	for i, pin := range p.pins.Rows {
		if i != row {
			p.out(pin, gpio.Low)
		}
	}
	for i, pin := range p.pins.Cols {
		if cols.Contains(i) {
			p.out(pin, gpio.Low)
		} else {
			p.out(pin, gpio.High)
		}
	}
	p.out(p.pins.Rows[row], gpio.High)
	p.currentRow = row
}

// LightCurrentRowLEDs implements ledmatrix.Control.
//
// Lights the LEDs in cols, in addition to any already lit, in the row
// most recently passed to DisplayRowLEDs.
func (p *DisplayPort) LightCurrentRowLEDs(cols ledmatrix.ColumnSet) {
	for i, pin := range p.pins.Cols {
		if cols.Contains(i) {
			p.out(pin, gpio.Low)
		}
	}
}

// Err returns the first pin write error encountered, if any.
func (p *DisplayPort) Err() error {
	return p.err
}

// String returns a string representation of the port.
func (p *DisplayPort) String() string {
	return fmt.Sprintf("rmicrobit.DisplayPort{%dx%d}", MatrixCols, MatrixRows)
}

func (p *DisplayPort) out(pin gpio.PinOut, l gpio.Level) {
	if err := pin.Out(l); err != nil && p.err == nil {
		p.err = fmt.Errorf("rmicrobit: writing %s: %w", pin, err)
	}
}

var _ ledmatrix.Control = (*DisplayPort)(nil)
