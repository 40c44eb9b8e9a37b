package models

import (
	"github.com/tiendc/go-deepcopy"
)

// Column is one labeled column of cells. Position within a table is
// meaningful: the leading positions are the candidate container slots.
type Column struct {
	// Label identifies the column within its table's current layout.
	Label string
	// Cells holds the column values in row order.
	Cells []Cell
}

// Cell returns the cell at row. Rows beyond the column's length read as
// empty cells.
func (c *Column) Cell(row int) Cell {
	if row < 0 || row >= len(c.Cells) {
		return Cell{}
	}
	return c.Cells[row]
}

// SetCell stores a cell at row, extending the column with empty cells when
// it is shorter.
func (c *Column) SetCell(row int, cell Cell) {
	for len(c.Cells) <= row {
		c.Cells = append(c.Cells, Cell{})
	}
	c.Cells[row] = cell
}

// Table is an ordered sequence of columns. Readers produce equal-length
// columns; the accessors tolerate ragged ones.
type Table struct {
	// Columns in left-to-right order.
	Columns []Column
}

// RowCount returns the length of the longest column.
func (t *Table) RowCount() int {
	rows := 0
	for i := range t.Columns {
		if n := len(t.Columns[i].Cells); n > rows {
			rows = n
		}
	}
	return rows
}

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int {
	return len(t.Columns)
}

// Index resolves a column label to its position, or -1 when no column
// carries the label. The leftmost match wins.
func (t *Table) Index(label string) int {
	for i := range t.Columns {
		if t.Columns[i].Label == label {
			return i
		}
	}
	return -1
}

// Labels returns the column labels in order.
func (t *Table) Labels() []string {
	labels := make([]string, len(t.Columns))
	for i := range t.Columns {
		labels[i] = t.Columns[i].Label
	}
	return labels
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	out := &Table{}
	if err := deepcopy.Copy(out, t); err != nil {
		// Copy fails only on invalid argument types.
		panic(err)
	}
	return out
}
