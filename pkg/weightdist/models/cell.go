// Package models defines the table data structures shared by the pipeline stages.
package models

import (
	"math"
	"strconv"
	"strings"
)

// CellKind identifies how a cell value is stored.
type CellKind uint8

const (
	// CellEmpty marks a cell with no value.
	CellEmpty CellKind = iota
	// CellNumber marks a cell holding a numeric value.
	CellNumber
	// CellText marks a cell holding an uninterpreted string.
	CellText
)

// Cell is a single table value. The zero value is an empty cell.
type Cell struct {
	// Kind discriminates which payload field is meaningful.
	Kind CellKind
	// Number is the value of a CellNumber cell.
	Number float64
	// Text is the value of a CellText cell.
	Text string
}

// NumberCell returns a cell holding v.
func NumberCell(v float64) Cell {
	return Cell{Kind: CellNumber, Number: v}
}

// TextCell returns a cell holding s.
func TextCell(s string) Cell {
	return Cell{Kind: CellText, Text: s}
}

// ParseCell classifies a raw field from an input file. Blank input (after
// trimming spaces) yields an empty cell; anything strconv.ParseFloat accepts,
// NaN excluded, yields a number cell; everything else is kept as text.
// Thousand separators are not recognized.
func ParseCell(s string) Cell {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Cell{}
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil && !math.IsNaN(f) {
		return NumberCell(f)
	}
	return TextCell(s)
}

// Numeric interprets the cell as a number. Number cells yield their value,
// text cells are re-parsed with the ParseCell policy, and empty cells have
// no numeric interpretation. NaN never counts as numeric.
func (c Cell) Numeric() (float64, bool) {
	switch c.Kind {
	case CellNumber:
		if math.IsNaN(c.Number) {
			return 0, false
		}
		return c.Number, true
	case CellText:
		f, err := strconv.ParseFloat(strings.TrimSpace(c.Text), 64)
		if err != nil || math.IsNaN(f) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// String renders the cell for display or CSV output. Numbers use the
// shortest decimal form that round-trips ("2", "1.8"); empty cells render
// as the empty string.
func (c Cell) String() string {
	switch c.Kind {
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case CellText:
		return c.Text
	default:
		return ""
	}
}
