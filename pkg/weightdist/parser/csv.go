package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/knaka75/weightdist/pkg/weightdist"
	"github.com/knaka75/weightdist/pkg/weightdist/models"
)

// ReadCSV reads headerless CSV data into a table. Columns are labeled by
// position ("0", "1", ...) and records shorter than the widest one are
// padded with empty cells.
func ReadCSV(r io.Reader) (*models.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // accept ragged records

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", weightdist.ErrMalformedTable, err)
	}

	width := 0
	for _, record := range records {
		if len(record) > width {
			width = len(record)
		}
	}

	table := &models.Table{Columns: make([]models.Column, width)}
	for col := 0; col < width; col++ {
		cells := make([]models.Cell, len(records))
		for row, record := range records {
			if col < len(record) {
				cells[row] = models.ParseCell(record[col])
			}
		}
		table.Columns[col] = models.Column{
			Label: strconv.Itoa(col),
			Cells: cells,
		}
	}
	return table, nil
}
