package weightdist

import (
	"errors"
	"reflect"
	"testing"

	"github.com/knaka75/weightdist/pkg/weightdist/models"
)

func shiftInput() *models.Table {
	return &models.Table{Columns: []models.Column{
		{Label: "A", Cells: []models.Cell{models.TextCell("x"), models.TextCell("p")}},
		{Label: "B", Cells: []models.Cell{models.TextCell("y"), models.TextCell("q")}},
		{Label: "weight", Cells: []models.Cell{models.NumberCell(10), models.NumberCell(0)}},
	}}
}

func TestReshapeShift(t *testing.T) {
	input := shiftInput()

	reshaped, weightColumn, containers, err := Reshape(input, "weight", 5)
	if err != nil {
		t.Fatalf("Reshape failed: %v", err)
	}

	if got := reshaped.ColumnCount(); got != 8 {
		t.Fatalf("reshaped table has %d columns, expected 8", got)
	}
	if weightColumn != "Column_5" {
		t.Errorf("weight column = %q, expected Column_5", weightColumn)
	}

	expectedContainers := []string{"Container_1", "Container_2", "Container_3", "Container_4", "Container_5"}
	if !reflect.DeepEqual(containers, expectedContainers) {
		t.Errorf("containers = %v, expected %v", containers, expectedContainers)
	}

	expectedLabels := append(expectedContainers, "Column_3", "Column_4", "Column_5")
	if got := reshaped.Labels(); !reflect.DeepEqual(got, expectedLabels) {
		t.Errorf("labels = %v, expected %v", got, expectedLabels)
	}

	// Container columns start as zeros.
	for i := 0; i < 5; i++ {
		for row := 0; row < 2; row++ {
			if got := reshaped.Columns[i].Cell(row); got != models.NumberCell(0) {
				t.Errorf("container %d row %d = %+v, expected number 0", i, row, got)
			}
		}
	}

	// Every original cell is preserved right of the container block.
	for i, col := range shiftInput().Columns {
		shifted := reshaped.Columns[5+i]
		if !reflect.DeepEqual(shifted.Cells, col.Cells) {
			t.Errorf("column %d cells = %+v, expected %+v", 5+i, shifted.Cells, col.Cells)
		}
	}

	// The weight identifier resolves to the original weight data.
	idx := reshaped.Index(weightColumn)
	if idx != 7 {
		t.Fatalf("Index(%q) = %d, expected 7", weightColumn, idx)
	}
	if got := reshaped.Columns[idx].Cell(0); got != models.NumberCell(10) {
		t.Errorf("weight cell = %+v, expected number 10", got)
	}
}

func TestReshapeShiftLeavesInputUntouched(t *testing.T) {
	input := shiftInput()

	if _, _, _, err := Reshape(input, "weight", 5); err != nil {
		t.Fatalf("Reshape failed: %v", err)
	}

	if !reflect.DeepEqual(input, shiftInput()) {
		t.Errorf("input table was modified: %+v", input)
	}
}

func noShiftInput() *models.Table {
	columns := make([]models.Column, 0, 7)
	for _, label := range []string{"c1", "c2", "c3", "c4", "c5", "c6"} {
		columns = append(columns, models.Column{Label: label, Cells: []models.Cell{models.TextCell("v")}})
	}
	columns = append(columns, models.Column{Label: "weight", Cells: []models.Cell{models.NumberCell(9)}})
	return &models.Table{Columns: columns}
}

func TestReshapeNoShift(t *testing.T) {
	input := noShiftInput()

	reshaped, weightColumn, containers, err := Reshape(input, "weight", 5)
	if err != nil {
		t.Fatalf("Reshape failed: %v", err)
	}

	if weightColumn != "weight" {
		t.Errorf("weight column = %q, expected weight (unchanged)", weightColumn)
	}
	expectedContainers := []string{"c1", "c2", "c3", "c4", "c5"}
	if !reflect.DeepEqual(containers, expectedContainers) {
		t.Errorf("containers = %v, expected %v", containers, expectedContainers)
	}
	if !reflect.DeepEqual(reshaped.Labels(), input.Labels()) {
		t.Errorf("labels changed: %v", reshaped.Labels())
	}

	// c6 sits between the containers and the weight column and stays data.
	if got := reshaped.Columns[5].Label; got != "c6" {
		t.Errorf("column 5 label = %q, expected c6", got)
	}

	// The result is a fresh copy, not the input.
	reshaped.Columns[0].Cells[0] = models.NumberCell(99)
	if input.Columns[0].Cells[0] != models.TextCell("v") {
		t.Errorf("mutating the reshaped table leaked into the input")
	}
}

func TestReshapeBoundaryIsNoShift(t *testing.T) {
	// weightIndex == containerCount is the no-shift case.
	input := &models.Table{Columns: []models.Column{
		{Label: "a", Cells: []models.Cell{models.TextCell("x")}},
		{Label: "b", Cells: []models.Cell{models.TextCell("y")}},
		{Label: "weight", Cells: []models.Cell{models.NumberCell(4)}},
	}}

	reshaped, weightColumn, containers, err := Reshape(input, "weight", 2)
	if err != nil {
		t.Fatalf("Reshape failed: %v", err)
	}

	if weightColumn != "weight" {
		t.Errorf("weight column = %q, expected weight", weightColumn)
	}
	if !reflect.DeepEqual(containers, []string{"a", "b"}) {
		t.Errorf("containers = %v, expected [a b]", containers)
	}
	if reshaped.ColumnCount() != 3 {
		t.Errorf("reshaped table has %d columns, expected 3", reshaped.ColumnCount())
	}
}

func TestReshapeWeightInFirstPosition(t *testing.T) {
	input := &models.Table{Columns: []models.Column{
		{Label: "weight", Cells: []models.Cell{models.NumberCell(6)}},
		{Label: "note", Cells: []models.Cell{models.TextCell("x")}},
	}}

	reshaped, weightColumn, _, err := Reshape(input, "weight", 3)
	if err != nil {
		t.Fatalf("Reshape failed: %v", err)
	}

	// shiftAmount equals the container count, so the label number and the
	// position coincide.
	if weightColumn != "Column_3" {
		t.Errorf("weight column = %q, expected Column_3", weightColumn)
	}
	if idx := reshaped.Index(weightColumn); idx != 3 {
		t.Errorf("Index(%q) = %d, expected 3", weightColumn, idx)
	}
	if got := reshaped.ColumnCount(); got != 5 {
		t.Errorf("reshaped table has %d columns, expected 5", got)
	}
}

func TestReshapeInvalidContainerCount(t *testing.T) {
	for _, count := range []int{0, -1, -5} {
		_, _, _, err := Reshape(shiftInput(), "weight", count)
		if !errors.Is(err, ErrInvalidContainerCount) {
			t.Errorf("Reshape with count %d: expected ErrInvalidContainerCount, got %v", count, err)
		}
	}
}

func TestReshapeUnknownColumn(t *testing.T) {
	_, _, _, err := Reshape(shiftInput(), "missing", 5)
	if !errors.Is(err, ErrUnknownColumn) {
		t.Errorf("expected ErrUnknownColumn, got %v", err)
	}
}
