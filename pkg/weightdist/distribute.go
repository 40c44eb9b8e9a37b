package weightdist

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/knaka75/weightdist/pkg/weightdist/logging"
	"github.com/knaka75/weightdist/pkg/weightdist/models"
)

// DistributeWeights splits each row's weight equally across the container
// columns, writing round(weight/N, 2) into every container cell of the row.
// Each share is rounded independently and no remainder is redistributed, so
// the container sum may drift from the weight by up to N × 0.005. Rows whose
// weight is missing or not positive get zeroed containers and are not
// counted. The table is mutated in place; the count of rows with a positive
// weight is returned.
func DistributeWeights(t *models.Table, weightColumn string, containerColumns []string) (int, error) {
	if len(containerColumns) == 0 {
		return 0, fmt.Errorf("%w: no container columns", ErrInvalidContainerCount)
	}
	weightIndex := t.Index(weightColumn)
	if weightIndex < 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownColumn, weightColumn)
	}
	containerIndex := make([]int, len(containerColumns))
	for i, label := range containerColumns {
		idx := t.Index(label)
		if idx < 0 {
			return 0, fmt.Errorf("%w: %q", ErrUnknownColumn, label)
		}
		containerIndex[i] = idx
	}

	n := float64(len(containerColumns))
	processed := 0
	rows := t.RowCount()
	for row := 0; row < rows; row++ {
		weight, ok := t.Columns[weightIndex].Cell(row).Numeric()
		if !ok || weight <= 0 {
			for _, idx := range containerIndex {
				t.Columns[idx].SetCell(row, models.NumberCell(0))
			}
			continue
		}
		share := roundShare(weight / n)
		for _, idx := range containerIndex {
			t.Columns[idx].SetCell(row, models.NumberCell(share))
		}
		processed++
	}

	logging.Logger().Debug("weights distributed",
		slog.Int("processed_rows", processed),
		slog.Int("containers", len(containerColumns)))
	return processed, nil
}

// roundShare rounds to 2 decimal places, halves away from zero.
func roundShare(v float64) float64 {
	return math.Round(v*100) / 100
}
