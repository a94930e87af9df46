// Package graphics provides simple 5×5 image types for the LED
// display, and support for scrolling sequences of them horizontally.
//
// The image types implement ledmatrix.Render, which is the interface
// the display code needs. Brightness levels run from 0 (off) to 9.
package graphics

import (
	"fmt"

	"github.com/mattheww/rmicrobit/ledmatrix"
)

// Width and Height are the dimensions of this package's images.
const (
	Width  = 5
	Height = 5
)

// GreyscaleImage is a 5×5 image with a brightness level for each LED.
//
// It is a value type: assignment copies it.
type GreyscaleImage struct {
	pix [Height][Width]uint8
}

// NewGreyscaleImage returns a GreyscaleImage with the specified
// levels, indexed as data[y][x].
//
// Panics if any level is greater than ledmatrix.MaxBrightness.
func NewGreyscaleImage(data [Height][Width]uint8) GreyscaleImage {
	for y := range data {
		for x, b := range data[y] {
			if b > ledmatrix.MaxBrightness {
				panic(fmt.Sprintf(
					"graphics: brightness %d at (%d, %d) out of range", b, x, y))
			}
		}
	}
	return GreyscaleImage{pix: data}
}

// BlankGreyscaleImage returns a GreyscaleImage with all LEDs off.
func BlankGreyscaleImage() GreyscaleImage {
	return GreyscaleImage{}
}

// BrightnessAt implements ledmatrix.Render.
func (im *GreyscaleImage) BrightnessAt(x, y int) uint8 {
	return im.pix[y][x]
}

// BitImage is a 5×5 image holding only an on/off state for each LED.
//
// 'On' renders at maximum brightness.
type BitImage struct {
	// one bit per column, bit 0 = x 0
	rows [Height]uint8
}

// NewBitImage returns a BitImage from the specified data, indexed as
// data[y][x]; any nonzero value means on.
func NewBitImage(data [Height][Width]uint8) BitImage {
	var im BitImage
	for y := range data {
		for x, v := range data[y] {
			if v != 0 {
				im.rows[y] |= 1 << uint(x)
			}
		}
	}
	return im
}

// BlankBitImage returns a BitImage with all LEDs off.
func BlankBitImage() BitImage {
	return BitImage{}
}

// BrightnessAt implements ledmatrix.Render.
func (im *BitImage) BrightnessAt(x, y int) uint8 {
	if im.rows[y]&(1<<uint(x)) != 0 {
		return ledmatrix.MaxBrightness
	}
	return 0
}
