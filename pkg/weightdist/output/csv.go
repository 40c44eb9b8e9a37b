package output

import (
	"encoding/csv"
	"io"

	"github.com/knaka75/weightdist/pkg/weightdist/models"
)

// WriteCSV writes the table as CSV without a header row, mirroring the
// headerless input convention. Numbers use the shortest form that
// round-trips and empty cells become empty fields.
func WriteCSV(t *models.Table, w io.Writer) error {
	writer := csv.NewWriter(w)
	rows := t.RowCount()
	record := make([]string, t.ColumnCount())
	for row := 0; row < rows; row++ {
		for col := range t.Columns {
			record[col] = t.Columns[col].Cell(row).String()
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
