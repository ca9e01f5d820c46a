package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"fashion-dashboard/internal/engine"
)

const sheetName = "Catalog"

// WriteXLSX writes the dataset as a single-sheet workbook, header row
// included, for analysts who want the filtered view in a spreadsheet.
func WriteXLSX(w io.Writer, d *engine.Dataset) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	writeRow := func(rowNum int, cells []string) error {
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		row := make([]interface{}, len(cells))
		for i, c := range cells {
			row[i] = c
		}
		return f.SetSheetRow(sheetName, cell, &row)
	}

	if err := writeRow(1, d.Attributes()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i := 0; i < d.Len(); i++ {
		if err := writeRow(i+2, d.Record(i)); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
