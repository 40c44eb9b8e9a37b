package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/knaka75/weightdist/pkg/weightdist"
	"github.com/knaka75/weightdist/pkg/weightdist/models"
)

// ReadXLSX reads the first sheet of the workbook at path into a table.
// Row 1 supplies the column labels.
func ReadXLSX(path string) (*models.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", weightdist.ErrMalformedTable, err)
	}
	defer f.Close()
	return readWorkbook(f)
}

// ReadXLSXFrom reads a workbook from r, for callers holding a stream
// instead of a path.
func ReadXLSXFrom(r io.Reader) (*models.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", weightdist.ErrMalformedTable, err)
	}
	defer f.Close()
	return readWorkbook(f)
}

func readWorkbook(f *excelize.File) (*models.Table, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", weightdist.ErrMalformedTable)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", weightdist.ErrMalformedTable, err)
	}
	if len(rows) == 0 {
		return &models.Table{}, nil
	}

	// GetRows trims trailing empty cells per row, so data rows may be wider
	// than the header.
	header := rows[0]
	data := rows[1:]
	width := len(header)
	for _, record := range data {
		if len(record) > width {
			width = len(record)
		}
	}

	labels := headerLabels(header, width)
	table := &models.Table{Columns: make([]models.Column, width)}
	for col := 0; col < width; col++ {
		cells := make([]models.Cell, len(data))
		for row, record := range data {
			if col < len(record) {
				cells[row] = models.ParseCell(record[col])
			}
		}
		table.Columns[col] = models.Column{
			Label: labels[col],
			Cells: cells,
		}
	}
	return table, nil
}

// headerLabels turns the header row into width usable labels. Blank header
// cells become Unnamed_{position}, and a duplicate gets a numeric suffix so
// every label resolves to exactly one column.
func headerLabels(header []string, width int) []string {
	labels := make([]string, width)
	seen := make(map[string]bool, width)
	for i := 0; i < width; i++ {
		label := ""
		if i < len(header) {
			label = strings.TrimSpace(header[i])
		}
		if label == "" {
			label = fmt.Sprintf("Unnamed_%d", i)
		}
		if seen[label] {
			base := label
			for n := 2; seen[label]; n++ {
				label = fmt.Sprintf("%s_%d", base, n)
			}
		}
		seen[label] = true
		labels[i] = label
	}
	return labels
}
