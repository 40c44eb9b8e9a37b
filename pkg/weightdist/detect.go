package weightdist

import (
	"log/slog"

	"github.com/knaka75/weightdist/pkg/weightdist/logging"
	"github.com/knaka75/weightdist/pkg/weightdist/models"
)

// FindWeightColumn scans the table for the column most likely to hold weight
// data: the one with the most cells that parse as numbers. Columns are
// visited left to right and only a strictly higher count replaces the
// current candidate, so the leftmost of tied columns wins. Returns the
// column label and its numeric count, or ErrNoWeightColumn when no column
// has a single numeric cell.
func FindWeightColumn(t *models.Table) (string, int, error) {
	var (
		weightColumn string
		found        bool
		maxNumbers   int
	)

	for i := range t.Columns {
		numericCount := 0
		for _, cell := range t.Columns[i].Cells {
			if _, ok := cell.Numeric(); ok {
				numericCount++
			}
		}
		if numericCount > maxNumbers {
			maxNumbers = numericCount
			weightColumn = t.Columns[i].Label
			found = true
		}
	}

	if !found {
		return "", 0, ErrNoWeightColumn
	}

	logging.Logger().Debug("weight column detected",
		slog.String("column", weightColumn),
		slog.Int("numeric_count", maxNumbers))
	return weightColumn, maxNumbers, nil
}
