package weightdist

import (
	"github.com/knaka75/weightdist/pkg/weightdist/models"
)

// Result holds the transformed table together with the decisions the
// pipeline made, for callers that present them.
type Result struct {
	// Table is the transformed table.
	Table *models.Table
	// DetectedColumn is the weight column label before reshaping.
	DetectedColumn string
	// DetectedIndex is the weight column position before reshaping.
	DetectedIndex int
	// NumericCount is the number of numeric cells in the detected column.
	NumericCount int
	// WeightColumn is the weight column identifier after reshaping.
	WeightColumn string
	// ContainerColumns lists the container column labels in order.
	ContainerColumns []string
	// Shifted reports whether the layout was shifted to host the containers.
	Shifted bool
	// ShiftAmount is how far the original columns moved in the relabeling,
	// 0 when not shifted.
	ShiftAmount int
	// ProcessedRows counts rows that had a positive weight.
	ProcessedRows int
	// OriginalLabels preserves the input column labels, which a shifted
	// table no longer carries.
	OriginalLabels []string
}

// Process runs detection, reshaping, and distribution in sequence and
// returns the transformed table with a summary of every decision. The input
// table is left untouched; failures carry the stage they occurred in and
// unwrap to the sentinel errors.
func Process(t *models.Table, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	detected, numericCount, err := FindWeightColumn(t)
	if err != nil {
		return nil, NewStageError("detect", err)
	}
	detectedIndex := t.Index(detected)

	reshaped, weightColumn, containerColumns, err := Reshape(t, detected, opts.Containers)
	if err != nil {
		return nil, NewStageError("reshape", err)
	}

	processed, err := DistributeWeights(reshaped, weightColumn, containerColumns)
	if err != nil {
		return nil, NewStageError("distribute", err)
	}

	shifted := detectedIndex < opts.Containers
	shiftAmount := 0
	if shifted {
		shiftAmount = opts.Containers - detectedIndex
	}

	return &Result{
		Table:            reshaped,
		DetectedColumn:   detected,
		DetectedIndex:    detectedIndex,
		NumericCount:     numericCount,
		WeightColumn:     weightColumn,
		ContainerColumns: containerColumns,
		Shifted:          shifted,
		ShiftAmount:      shiftAmount,
		ProcessedRows:    processed,
		OriginalLabels:   t.Labels(),
	}, nil
}
