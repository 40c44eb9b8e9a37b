package output

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/knaka75/weightdist/pkg/weightdist/models"
)

// WriteXLSX writes the table as a workbook to w. Row 1 holds the column
// labels; numbers are stored as numeric cell values so spreadsheet
// consumers can calculate with them directly.
func WriteXLSX(t *models.Table, w io.Writer) error {
	f, err := buildWorkbook(t)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

// WriteXLSXFile writes the table as a workbook at path.
func WriteXLSXFile(t *models.Table, path string) error {
	f, err := buildWorkbook(t)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

func buildWorkbook(t *models.Table) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := fillWorkbook(f, f.GetSheetName(0), t); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func fillWorkbook(f *excelize.File, sheet string, t *models.Table) error {
	for col := range t.Columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, t.Columns[col].Label); err != nil {
			return err
		}
	}

	rows := t.RowCount()
	for row := 0; row < rows; row++ {
		for col := range t.Columns {
			value := t.Columns[col].Cell(row)
			if value.Kind == models.CellEmpty {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, cellValue(value)); err != nil {
				return err
			}
		}
	}
	return nil
}

// cellValue maps a cell to the native value excelize should store.
func cellValue(c models.Cell) interface{} {
	if c.Kind == models.CellNumber {
		return c.Number
	}
	return c.Text
}
