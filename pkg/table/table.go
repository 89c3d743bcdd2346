// Package table implements a fixed-size grid of optional cell values that the
// output package renders as a bordered, aligned block of text.
//
// A table is created once with its final dimensions:
//
//	t, err := table.New(3, 2, "")
//	_ = t.UpdateRowValues(table.At(0, 0), []string{"id", "name", "state"})
//	_ = t.UpdateCell(table.At(2, 1), table.NewCell("ok").WithAlignment(table.AlignRight))
//
// Every position-addressed operation validates its bounds before touching the
// grid, so a failed call never leaves a partial update behind.
package table

import (
	"github.com/alexisbeaulieu97/consolekit/pkg/border"
	"github.com/alexisbeaulieu97/consolekit/pkg/color"
	apperrors "github.com/alexisbeaulieu97/consolekit/pkg/errors"
)

// Padding is placed on either side of every formatted cell value.
type Padding struct {
	Left  string
	Right string
}

// Style holds the presentation settings of a table. Zero color pairs render
// in the console's current color.
type Style struct {
	Padding     Padding
	Border      border.Style
	BorderColor color.Pair
	ValueColor  color.Pair
}

// DefaultStyle pads values with a single space and draws a double border.
func DefaultStyle() Style {
	return Style{
		Padding: Padding{Left: " ", Right: " "},
		Border:  border.Double,
	}
}

// Table is a Columns x Rows grid of cells. It is not safe for concurrent
// mutation. Tables come from New; the zero value has no cells and rejects
// every position.
type Table struct {
	cells [][]Cell // [column][row]
	style Style
}

// New creates a columns x rows table. A non-empty defaultValue is stored in
// every cell; otherwise all cells start empty.
func New(columns, rows int, defaultValue string) (*Table, error) {
	if columns < 1 {
		return nil, apperrors.NewRangeError("columns", columns, "columns cannot be less than one")
	}
	if rows < 1 {
		return nil, apperrors.NewRangeError("rows", rows, "rows cannot be less than one")
	}

	fill := EmptyCell()
	if defaultValue != "" {
		fill = NewCell(defaultValue)
	}

	cells := make([][]Cell, columns)
	for col := range cells {
		cells[col] = make([]Cell, rows)
		for row := range cells[col] {
			cells[col][row] = fill
		}
	}

	return &Table{cells: cells, style: DefaultStyle()}, nil
}

// Columns returns the number of columns.
func (t *Table) Columns() int {
	return len(t.cells)
}

// Rows returns the number of rows.
func (t *Table) Rows() int {
	if len(t.cells) == 0 {
		return 0
	}
	return len(t.cells[0])
}

// Style returns the table's presentation settings.
func (t *Table) Style() Style {
	return t.style
}

// WithStyle replaces the presentation settings. A nil border falls back to
// border.Double.
func (t *Table) WithStyle(style Style) *Table {
	style.Border = border.OrDefault(style.Border)
	t.style = style
	return t
}

// Cell returns the cell at pos.
func (t *Table) Cell(pos CellPosition) (Cell, error) {
	if err := t.checkBounds(pos); err != nil {
		return Cell{}, err
	}
	return t.cells[pos.column][pos.row], nil
}

// UpdateCell overwrites the cell at pos. Writing EmptyCell clears it.
func (t *Table) UpdateCell(pos CellPosition, cell Cell) error {
	if err := t.checkBounds(pos); err != nil {
		return err
	}
	t.cells[pos.column][pos.row] = cell
	return nil
}

// UpdateValue stores value at pos with default alignment and color.
func (t *Table) UpdateValue(pos CellPosition, value string) error {
	return t.UpdateCell(pos, NewCell(value))
}

// UpdateRow writes cells left to right starting at pos. Cells beyond the last
// column are dropped; columns beyond the last cell keep their contents.
func (t *Table) UpdateRow(pos CellPosition, cells []Cell) error {
	if cells == nil {
		return apperrors.NewMissingArgumentError("cells", "")
	}
	if pos.column < 0 || pos.column >= t.Columns() {
		return apperrors.NewRangeError("position", pos, "cannot update row: column is outside the bounds of the table")
	}
	if pos.row < 0 || pos.row >= t.Rows() {
		return apperrors.NewRangeError("position", pos, "cannot update row: row is outside the bounds of the table")
	}

	for i, col := 0, pos.column; i < len(cells) && col < t.Columns(); i, col = i+1, col+1 {
		t.cells[col][pos.row] = cells[i]
	}
	return nil
}

// UpdateRowValues is UpdateRow for plain values.
func (t *Table) UpdateRowValues(pos CellPosition, values []string) error {
	if values == nil {
		return apperrors.NewMissingArgumentError("values", "")
	}
	return t.UpdateRow(pos, Cells(values...))
}

// UpdateRowAt writes cells into row starting at the first column.
func (t *Table) UpdateRowAt(row int, cells []Cell) error {
	pos, err := NewCellPosition(0, row)
	if err != nil {
		return err
	}
	return t.UpdateRow(pos, cells)
}

// Row returns a copy of row n, ordered by column.
func (t *Table) Row(n int) ([]Cell, error) {
	if n < 0 || n >= t.Rows() {
		return nil, apperrors.NewRangeError("row", n, "no row exists at this number")
	}
	row := make([]Cell, t.Columns())
	for col := range t.cells {
		row[col] = t.cells[col][n]
	}
	return row, nil
}

// Column returns a copy of column n, ordered by row.
func (t *Table) Column(n int) ([]Cell, error) {
	if n < 0 || n >= t.Columns() {
		return nil, apperrors.NewRangeError("column", n, "no column exists at this number")
	}
	column := make([]Cell, t.Rows())
	copy(column, t.cells[n])
	return column, nil
}

// LongestValueLength returns the display width of the widest value in the
// whole table, or 0 when every cell is empty. Renderers pad every cell to this
// single width.
func (t *Table) LongestValueLength() int {
	longest := 0
	for _, column := range t.cells {
		for _, cell := range column {
			if cell.HasValue() {
				if w := cell.Width(); w > longest {
					longest = w
				}
			}
		}
	}
	return longest
}

func (t *Table) checkBounds(pos CellPosition) error {
	if pos.column < 0 || pos.column >= t.Columns() || pos.row < 0 || pos.row >= t.Rows() {
		return apperrors.NewRangeError("position", pos, "position is outside the bounds of the table")
	}
	return nil
}
