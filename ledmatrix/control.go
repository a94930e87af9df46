package ledmatrix

// Control is the interface the display needs to drive an LED matrix.
//
// It assumes the matrix is organised by rows and columns, wired so
// that LEDs from at most one row are lit at any time.
type Control interface {
	// InitialiseForDisplay performs any required hardware
	// initialisation. It is called once, before the display is used.
	InitialiseForDisplay()

	// DisplayRowLEDs lights exactly the LEDs in cols in the specified
	// row, and turns off all LEDs in the other rows.
	DisplayRowLEDs(row int, cols ColumnSet)

	// LightCurrentRowLEDs lights the LEDs in cols, in addition to any
	// already lit, in the row most recently passed to DisplayRowLEDs.
	LightCurrentRowLEDs(cols ColumnSet)
}
