package parser

import (
	"github.com/ukaji3/xlsx2csv-go/pkg/xlsx2csv/models"
	"github.com/xuri/excelize/v2"
)

// ReadOptions configures how a sheet is loaded.
type ReadOptions struct {
	// RawValues returns stored cell values instead of number-formatted text.
	RawValues bool
	// PrintAreaOnly crops the table to the sheet's first print area, if any.
	PrintAreaOnly bool
	// TrimToData crops the table to the bounding box of non-empty cells.
	TrimToData bool
}

// ReadTable loads a sheet into a rectangular table.
// Empty cells inside the used range are kept as empty strings so that
// column positions are preserved.
func ReadTable(f *excelize.File, sheetName string, opts ReadOptions) (*models.Table, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: opts.RawValues})
	if err != nil {
		return nil, err
	}

	// Pad ragged rows so every row has the same width
	table := models.NewTable(sheetName, rows)

	if opts.PrintAreaOnly {
		if area, ok := PrintAreaFor(f, sheetName); ok {
			table = area.Apply(table)
		}
	}

	if opts.TrimToData {
		table = TrimToData(table)
	}

	return table, nil
}
