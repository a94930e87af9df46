package ledmatrix

import "fmt"

// Matrix describes how a board's electrical row/column layout maps to
// image coordinates.
//
// A matrix position either addresses one LED, identified by its (x, y)
// position in image space, or is unconnected.
type Matrix interface {
	// MatrixRows returns the number of electrical rows.
	MatrixRows() int
	// MatrixCols returns the number of electrical columns (at most
	// MaxColumns).
	MatrixCols() int
	// ImagePoint returns the image coordinates of the LED at the
	// specified matrix position, or ok == false if no LED is connected
	// there. Out-of-range positions are a programming error and may
	// panic.
	ImagePoint(col, row int) (x, y int, ok bool)
}

// Frame is a compiled image, held as one RowPlan per electrical row,
// ready to be passed to Display.SetFrame.
type Frame interface {
	// NumRows returns the number of electrical rows.
	NumRows() int
	// Plan returns the rendering plan for the specified row.
	Plan(row int) RowPlan
}

// PlanRow compiles one electrical row of an image into a RowPlan,
// sampling the image through the matrix transform.
//
// Unconnected matrix positions are skipped; level-0 LEDs are left out
// of the plan (they are simply never lit).
func PlanRow(m Matrix, img Render, row int) RowPlan {
	if row < 0 || row >= m.MatrixRows() {
		panic(fmt.Sprintf("ledmatrix: row %d out of range", row))
	}
	var plan RowPlan
	for col := 0; col < m.MatrixCols(); col++ {
		x, y, ok := m.ImagePoint(col, row)
		if !ok {
			continue
		}
		if b := img.BrightnessAt(x, y); b > 0 {
			plan.Light(b, col)
		}
	}
	return plan
}
