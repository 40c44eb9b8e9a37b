package weightdist

import (
	"errors"
	"fmt"
)

// ErrNoWeightColumn indicates no column of the table holds a numeric value.
var ErrNoWeightColumn = errors.New("no weight column found")

// ErrInvalidContainerCount indicates the configured container count is below 1.
var ErrInvalidContainerCount = errors.New("invalid container count")

// ErrUnknownColumn indicates a column identifier does not resolve in the
// table's current layout, usually because it is stale after a reshape.
var ErrUnknownColumn = errors.New("unknown column")

// ErrMalformedTable indicates an input file could not be parsed into a table.
var ErrMalformedTable = errors.New("malformed input table")

// ErrUnsupportedFormat indicates a file extension no reader or writer handles.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// StageError represents an error during one pipeline stage.
type StageError struct {
	Stage string // "detect", "reshape", "distribute"
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("weight distribution failed in %s stage: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError creates a new StageError.
func NewStageError(stage string, err error) *StageError {
	return &StageError{
		Stage: stage,
		Err:   err,
	}
}
