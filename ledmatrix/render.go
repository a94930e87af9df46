// Package ledmatrix drives a row-multiplexed LED matrix with greyscale
// support, using a single hardware timer.
//
// The package is hardware independent: it talks to the outside world
// through the Control and Timer interfaces, which the board package
// implements for a particular device.
//
// See the Display type for how the rendering works.
package ledmatrix

// Brightnesses is the number of brightness levels for greyscale images.
const Brightnesses = 10

// MaxBrightness is the maximum brightness level (the minimum is 0,
// meaning off).
const MaxBrightness = Brightnesses - 1

// Render provides the information the display needs to show an image.
//
// The x and y ranges are defined by the Matrix in use; (0, 0) is the
// top left.
//
// BrightnessAt must return a value between 0 and MaxBrightness.
// An out-of-range result is a programming error and makes frame
// construction panic.
type Render interface {
	BrightnessAt(x, y int) uint8
}
