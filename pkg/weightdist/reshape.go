package weightdist

import (
	"fmt"
	"log/slog"

	"github.com/knaka75/weightdist/pkg/weightdist/logging"
	"github.com/knaka75/weightdist/pkg/weightdist/models"
)

// Reshape makes room for containerCount container columns ahead of the
// weight column and returns the reshaped table, the weight column's
// identifier in the new layout, and the container column labels in order.
// The input table is never modified.
//
// When fewer than containerCount columns precede the weight column, the
// whole layout shifts right: containerCount fresh zero-filled columns are
// prepended and every original column is relabeled positionally, discarding
// its header. Otherwise the layout is kept and the first containerCount
// columns take the container role.
func Reshape(t *models.Table, weightColumn string, containerCount int) (*models.Table, string, []string, error) {
	if containerCount < 1 {
		return nil, "", nil, fmt.Errorf("%w: %d", ErrInvalidContainerCount, containerCount)
	}
	weightIndex := t.Index(weightColumn)
	if weightIndex < 0 {
		return nil, "", nil, fmt.Errorf("%w: %q", ErrUnknownColumn, weightColumn)
	}

	if weightIndex >= containerCount {
		// Enough columns already precede the weight column. Columns between
		// the container block and the weight column stay ordinary data.
		containerColumns := make([]string, containerCount)
		for i := 0; i < containerCount; i++ {
			containerColumns[i] = t.Columns[i].Label
		}
		logging.Logger().Debug("layout kept",
			slog.String("weight_column", weightColumn),
			slog.Int("weight_index", weightIndex))
		return t.Clone(), weightColumn, containerColumns, nil
	}

	shiftAmount := containerCount - weightIndex
	rows := t.RowCount()

	reshaped := &models.Table{Columns: make([]models.Column, 0, containerCount+len(t.Columns))}
	containerColumns := make([]string, containerCount)
	for i := 0; i < containerCount; i++ {
		label := fmt.Sprintf("Container_%d", i+1)
		containerColumns[i] = label
		reshaped.Columns = append(reshaped.Columns, models.Column{
			Label: label,
			Cells: zeroCells(rows),
		})
	}
	for i := range t.Columns {
		cells := make([]models.Cell, len(t.Columns[i].Cells))
		copy(cells, t.Columns[i].Cells)
		reshaped.Columns = append(reshaped.Columns, models.Column{
			Label: fmt.Sprintf("Column_%d", i+shiftAmount),
			Cells: cells,
		})
	}

	finalWeightColumn := fmt.Sprintf("Column_%d", weightIndex+shiftAmount)
	logging.Logger().Debug("layout shifted",
		slog.Int("shift_amount", shiftAmount),
		slog.String("weight_column", finalWeightColumn))
	return reshaped, finalWeightColumn, containerColumns, nil
}

func zeroCells(n int) []models.Cell {
	cells := make([]models.Cell, n)
	for i := range cells {
		cells[i] = models.NumberCell(0)
	}
	return cells
}
