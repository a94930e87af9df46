package ledmatrix

import "fmt"

// MaxColumns is the widest matrix row this package supports.
const MaxColumns = 16

// ColumnSet is a set of column indices within one matrix row.
//
// Bit 0 represents column 0, and so on, up to column 15.
type ColumnSet uint16

// WithColumn returns a ColumnSet with the specified column added.
func (s ColumnSet) WithColumn(col int) ColumnSet {
	if col < 0 || col >= MaxColumns {
		panic(fmt.Sprintf("ledmatrix: column %d out of range", col))
	}
	return s | 1<<uint(col)
}

// Contains reports whether the set includes the specified column.
func (s ColumnSet) Contains(col int) bool {
	if col < 0 || col >= MaxColumns {
		return false
	}
	return s&(1<<uint(col)) != 0
}

// IsEmpty reports whether no columns are in the set.
func (s ColumnSet) IsEmpty() bool {
	return s == 0
}

// RowPlan is the 'compiled' rendering plan for one matrix row.
//
// It holds, for each brightness level, the set of columns to be lit at
// that level during the row's slot in the primary cycle. A column
// belongs to exactly one level per frame (level 0 meaning off).
//
// RowPlan is a value type: assignment copies it.
type RowPlan struct {
	lit [Brightnesses]ColumnSet
}

// Clear removes all columns from the plan.
func (p *RowPlan) Clear() {
	p.lit = [Brightnesses]ColumnSet{}
}

// Light adds a column at the specified brightness level.
//
// Panics if the brightness or column is out of range.
func (p *RowPlan) Light(brightness uint8, col int) {
	if brightness > MaxBrightness {
		panic(fmt.Sprintf("ledmatrix: brightness %d out of range", brightness))
	}
	p.lit[brightness] = p.lit[brightness].WithColumn(col)
}

// ColumnsAt returns the set of columns to light at the specified
// brightness level.
//
// Panics if the brightness is out of range.
func (p RowPlan) ColumnsAt(brightness uint8) ColumnSet {
	if brightness > MaxBrightness {
		panic(fmt.Sprintf("ledmatrix: brightness %d out of range", brightness))
	}
	return p.lit[brightness]
}
