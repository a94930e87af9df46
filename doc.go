// Package rmicrobit drives a micro:bit style 5×5 LED matrix and its
// two pushbuttons through GPIO pins.
//
// The matrix is row-multiplexed: the 25 LEDs are wired as 3 electrical
// rows of up to 9 columns, and only one row is driven at a time. The
// display engine (the ledmatrix package) switches rows every 6ms and
// fakes ten levels of brightness by turning dimmer LEDs on
// progressively later within each row's slot, using one primary timer
// cycle and a reprogrammable secondary alarm.
//
// # Greyscale model
//
// LED brightness levels run from 0 (off) to 9 (brightest). The levels
// are converted to time slices using the same timings as the micro:bit
// MicroPython port: each level's slice is approximately 1.9 times the
// previous level's. An LED with brightness 9 is lit for one third of
// the time (one electrical row of three is addressed at a time).
//
// # Images and frames
//
// Anything implementing ledmatrix.Render (for example the image types
// in the graphics package) can be displayed. Images aren't used
// directly: they're compiled into a Frame, which is the representation
// the display code uses. This lets the compilation run at low
// priority; only Display.SetFrame has to run where the display timer
// can't interrupt.
//
// # Driving the display
//
// The library defines no interrupt handlers or goroutines of its own.
// Create a Display, then call its HandleEvent method from whatever
// context services the timer: a real timer interrupt on bare-metal
// targets, or a loop around SoftwareTimer on hosted ones. HandleEvent
// must never run concurrently with SetFrame; the host program is
// responsible for that exclusion.
//
//	pins, _ := rmicrobit.DisplayPinsByName(rows, cols)
//	port, _ := rmicrobit.NewDisplayPort(pins)
//	timer := rmicrobit.NewSoftwareTimer(0)
//	display := rmicrobit.NewDisplay()
//	ledmatrix.Initialise(timer, port)
//
//	var frame rmicrobit.Frame
//	img := graphics.NewGreyscaleImage([5][5]uint8{...})
//	frame.Set(&img)
//	display.SetFrame(&frame)
//
//	for {
//		display.HandleEvent(timer, port)
//		time.Sleep(4 * time.Microsecond)
//	}
//
// HandleEvent reports EventNewRow once per 6ms cycle, which the rest
// of the program can use as a time base, for example to poll buttons.
//
// # Buttons
//
// The buttons package reads a debounced pressed/released state from a
// GPIO pin; the buttons/monitor package turns that into click, hold
// and two-button chord events. Everything is polled: call the poll
// methods every 6ms, for example from the new-row display event.
//
// See examples/demo for a complete program.
package rmicrobit
