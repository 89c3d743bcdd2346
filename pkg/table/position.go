package table

import (
	"fmt"

	apperrors "github.com/alexisbeaulieu97/consolekit/pkg/errors"
)

// CellPosition addresses a cell by zero-based column and row. The zero value
// is the top-left cell.
type CellPosition struct {
	column int
	row    int
}

// NewCellPosition validates and returns a position.
func NewCellPosition(column, row int) (CellPosition, error) {
	if column < 0 {
		return CellPosition{}, apperrors.NewRangeError("column", column, "column number cannot be less than zero")
	}
	if row < 0 {
		return CellPosition{}, apperrors.NewRangeError("row", row, "row number cannot be less than zero")
	}
	return CellPosition{column: column, row: row}, nil
}

// MustCellPosition is NewCellPosition for literal positions; it panics on a
// negative column or row.
func MustCellPosition(column, row int) CellPosition {
	pos, err := NewCellPosition(column, row)
	if err != nil {
		panic(err)
	}
	return pos
}

// At is shorthand for MustCellPosition.
func At(column, row int) CellPosition {
	return MustCellPosition(column, row)
}

// Column returns the zero-based column.
func (p CellPosition) Column() int {
	return p.column
}

// Row returns the zero-based row.
func (p CellPosition) Row() int {
	return p.row
}

func (p CellPosition) String() string {
	return fmt.Sprintf("%dx%d", p.column, p.row)
}
