package table

import (
	"github.com/mattn/go-runewidth"

	"github.com/alexisbeaulieu97/consolekit/pkg/color"
)

// Alignment controls which side of its column a cell value hugs.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	default:
		return "unknown"
	}
}

// Cell is a single grid slot. The zero value is an empty cell: no value, left
// aligned, no color override.
type Cell struct {
	value    string
	hasValue bool
	align    Alignment
	color    color.Pair
	hasColor bool
}

// NewCell returns a cell holding value.
func NewCell(value string) Cell {
	return Cell{value: value, hasValue: true}
}

// EmptyCell returns a cell without a value.
func EmptyCell() Cell {
	return Cell{}
}

// Cells converts values into cells, in order.
func Cells(values ...string) []Cell {
	cells := make([]Cell, len(values))
	for i, v := range values {
		cells[i] = NewCell(v)
	}
	return cells
}

// Value returns the cell value, or "" when the cell is empty.
func (c Cell) Value() string {
	return c.value
}

// HasValue reports whether a value was set.
func (c Cell) HasValue() bool {
	return c.hasValue
}

// Alignment returns the value alignment.
func (c Cell) Alignment() Alignment {
	return c.align
}

// Color returns the cell's color override, if any.
func (c Cell) Color() (color.Pair, bool) {
	return c.color, c.hasColor
}

// WithAlignment returns a copy of c using align.
func (c Cell) WithAlignment(align Alignment) Cell {
	c.align = align
	return c
}

// WithColor returns a copy of c rendered in p instead of the table's value color.
func (c Cell) WithColor(p color.Pair) Cell {
	c.color = p
	c.hasColor = true
	return c
}

// WithoutColor returns a copy of c that falls back to the table's value color.
func (c Cell) WithoutColor() Cell {
	c.color = color.Pair{}
	c.hasColor = false
	return c
}

// Equal compares cells by value only. Two empty cells are equal; an empty cell
// never equals a cell holding "".
func (c Cell) Equal(other Cell) bool {
	if c.hasValue != other.hasValue {
		return false
	}
	return c.value == other.value
}

func (c Cell) String() string {
	return c.value
}

// Width returns the display width of the value in terminal cells.
func (c Cell) Width() int {
	return runewidth.StringWidth(c.value)
}

// Format pads the value to width and surrounds it with the padding strings.
// Right aligned values are padded on the left, everything else on the right.
func (c Cell) Format(width int, left, right string) string {
	var padded string
	if c.align == AlignRight {
		padded = runewidth.FillLeft(c.value, width)
	} else {
		padded = runewidth.FillRight(c.value, width)
	}
	return left + padded + right
}
