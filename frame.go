package rmicrobit

import (
	"fmt"

	"github.com/mattheww/rmicrobit/ledmatrix"
)

// ledLayout maps each electrical matrix position to the {x, y} image
// coordinates of the LED wired there, following the micro:bit V1
// board. Positions (1,7) and (1,8) have no LED.
var ledLayout = [MatrixRows][MatrixCols][2]int8{
	{{0, 0}, {2, 0}, {4, 0}, {4, 3}, {3, 3}, {2, 3}, {1, 3}, {0, 3}, {1, 2}},
	{{4, 2}, {0, 2}, {2, 2}, {1, 0}, {3, 0}, {3, 4}, {1, 4}, {-1, -1}, {-1, -1}},
	{{2, 4}, {4, 4}, {0, 4}, {0, 1}, {1, 1}, {2, 1}, {3, 1}, {4, 1}, {3, 2}},
}

// boardMatrix is the board's coordinate transform, implementing
// ledmatrix.Matrix.
type boardMatrix struct{}

func (boardMatrix) MatrixRows() int { return MatrixRows }

func (boardMatrix) MatrixCols() int { return MatrixCols }

func (boardMatrix) ImagePoint(col, row int) (x, y int, ok bool) {
	if row < 0 || row >= MatrixRows || col < 0 || col >= MatrixCols {
		panic(fmt.Sprintf("rmicrobit: matrix position (%d, %d) out of range", col, row))
	}
	p := ledLayout[row][col]
	if p[0] < 0 {
		return 0, 0, false
	}
	return int(p[0]), int(p[1]), true
}

// Frame is a compiled representation of a 5×5 greyscale image, in the
// form the display code uses directly. It implements ledmatrix.Frame.
//
// Build the representation with Set, in code running at low priority;
// only Display.SetFrame then has to run where the display timer can't
// interrupt. Frame is a value type: once passed to SetFrame it is free
// to be reused.
//
// The zero Frame is blank.
type Frame struct {
	plans [MatrixRows]ledmatrix.RowPlan
}

// NumRows implements ledmatrix.Frame.
func (f *Frame) NumRows() int {
	return MatrixRows
}

// Plan implements ledmatrix.Frame.
func (f *Frame) Plan(row int) ledmatrix.RowPlan {
	return f.plans[row]
}

// Set compiles an image into the frame.
//
// The image's coordinate ranges are 0..ImageWidth and 0..ImageHeight,
// with (0, 0) the top left as seen on the board.
func (f *Frame) Set(img ledmatrix.Render) {
	for row := 0; row < MatrixRows; row++ {
		f.plans[row] = ledmatrix.PlanRow(boardMatrix{}, img, row)
	}
}

// NewDisplay returns a blank ledmatrix.Display sized for this board's
// matrix.
func NewDisplay() *ledmatrix.Display {
	return ledmatrix.NewDisplay(MatrixRows)
}
