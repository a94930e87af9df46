package rmicrobit

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

// Dimensions of the electrical LED matrix: the 25 LEDs are multiplexed
// over 3 row drive pins and 9 column drive pins.
const (
	MatrixRows = 3
	MatrixCols = 9
)

// ImageWidth and ImageHeight are the dimensions of the displayed
// image: the 5×5 grid of LEDs as seen on the board.
const (
	ImageWidth  = 5
	ImageHeight = 5
)

// DisplayPins groups the GPIO output pins driving the LED matrix.
//
// Row pins are driven high to select a row; column pins are driven low
// to light an LED in the selected row.
type DisplayPins struct {
	Rows [MatrixRows]gpio.PinOut
	Cols [MatrixCols]gpio.PinOut
}

// DisplayPinsByName looks up the matrix drive pins in the gpioreg
// registry.
func DisplayPinsByName(rows [MatrixRows]string, cols [MatrixCols]string) (DisplayPins, error) {
	var pins DisplayPins
	for i, name := range rows {
		p := gpioreg.ByName(name)
		if p == nil {
			return DisplayPins{}, fmt.Errorf("rmicrobit: row pin %q not found", name)
		}
		pins.Rows[i] = p
	}
	for i, name := range cols {
		p := gpioreg.ByName(name)
		if p == nil {
			return DisplayPins{}, fmt.Errorf("rmicrobit: column pin %q not found", name)
		}
		pins.Cols[i] = p
	}
	return pins, nil
}

// ButtonPins groups the GPIO input pins for the two buttons.
type ButtonPins struct {
	A gpio.PinIn
	B gpio.PinIn
}

// ButtonPinsByName looks up the button pins in the gpioreg registry.
func ButtonPinsByName(a, b string) (ButtonPins, error) {
	pinA := gpioreg.ByName(a)
	if pinA == nil {
		return ButtonPins{}, fmt.Errorf("rmicrobit: button pin %q not found", a)
	}
	pinB := gpioreg.ByName(b)
	if pinB == nil {
		return ButtonPins{}, fmt.Errorf("rmicrobit: button pin %q not found", b)
	}
	return ButtonPins{A: pinA, B: pinB}, nil
}
