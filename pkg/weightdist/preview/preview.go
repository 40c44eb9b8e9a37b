// Package preview produces a quick look at an input file: its dimensions
// and its first rows, without materializing a full table.
package preview

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/thedatashed/xlsxreader"

	"github.com/knaka75/weightdist/pkg/weightdist"
)

// Summary describes the shape of an input file and carries its first rows
// as display strings.
type Summary struct {
	// Rows holds the first rows of the file, at most the requested count.
	Rows [][]string
	// RowCount is the total number of rows in the file.
	RowCount int
	// ColumnCount is the width of the widest row.
	ColumnCount int
}

// Head scans the file at path and returns its dimensions together with the
// first n rows. The whole file is read for the dimensions but only n rows
// are kept in memory. The reader is picked by extension like
// parser.ReadFile; XLSX files are streamed row by row.
func Head(path string, n int) (*Summary, error) {
	if n < 0 {
		n = 0
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return headCSV(f, n)
	case ".xlsx":
		return headXLSX(path, n)
	default:
		return nil, fmt.Errorf("%w: %q", weightdist.ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func headCSV(r io.Reader, n int) (*Summary, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	s := &Summary{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", weightdist.ErrMalformedTable, err)
		}
		s.observe(record, n)
	}
	return s, nil
}

func headXLSX(path string, n int) (*Summary, error) {
	xl, err := xlsxreader.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", weightdist.ErrMalformedTable, err)
	}
	defer xl.Close()

	if len(xl.Sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", weightdist.ErrMalformedTable)
	}

	s := &Summary{}
	for row := range xl.ReadRows(xl.Sheets[0]) {
		if row.Error != nil {
			return nil, fmt.Errorf("%w: %v", weightdist.ErrMalformedTable, row.Error)
		}
		s.observe(rowValues(row), n)
	}
	return s, nil
}

// observe folds one record into the summary, keeping at most n rows.
func (s *Summary) observe(record []string, n int) {
	s.RowCount++
	if len(record) > s.ColumnCount {
		s.ColumnCount = len(record)
	}
	if len(s.Rows) < n {
		row := make([]string, len(record))
		copy(row, record)
		s.Rows = append(s.Rows, row)
	}
}

// rowValues places sparse cells at their spreadsheet positions.
func rowValues(row xlsxreader.Row) []string {
	var values []string
	for _, cell := range row.Cells {
		idx := cell.ColumnIndex()
		for len(values) <= idx {
			values = append(values, "")
		}
		values[idx] = cell.Value
	}
	return values
}

// Render prints the summary's rows as an aligned terminal table. A summary
// with no rows renders nothing.
func Render(w io.Writer, s *Summary) error {
	if len(s.Rows) == 0 {
		return nil
	}
	table := tablewriter.NewTable(w)
	for _, row := range s.Rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}
