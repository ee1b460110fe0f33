// Package testkit builds workbook fixtures for tests.
package testkit

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// Sheet describes one worksheet of a fixture workbook.
type Sheet struct {
	Name string
	Rows [][]any
	// PrintArea is an optional range such as $A$1:$B$2.
	PrintArea string
}

// WriteWorkbook saves a workbook with the given sheets to path.
// With no sheets the workbook keeps excelize's default empty Sheet1.
func WriteWorkbook(tb testing.TB, path string, sheets ...Sheet) {
	tb.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			if sheet.Name != "Sheet1" {
				if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
					tb.Fatalf("rename sheet: %v", err)
				}
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			tb.Fatalf("new sheet %q: %v", sheet.Name, err)
		}

		for r, row := range sheet.Rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				tb.Fatalf("cell name: %v", err)
			}
			values := row
			if err := f.SetSheetRow(sheet.Name, cell, &values); err != nil {
				tb.Fatalf("set row %d of %q: %v", r+1, sheet.Name, err)
			}
		}

		if sheet.PrintArea != "" {
			err := f.SetDefinedName(&excelize.DefinedName{
				Name:     "_xlnm.Print_Area",
				RefersTo: quoteSheet(sheet.Name) + "!" + sheet.PrintArea,
				Scope:    sheet.Name,
			})
			if err != nil {
				tb.Fatalf("set print area: %v", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		tb.Fatalf("save %s: %v", path, err)
	}
}

// NewWorkbook writes a single-sheet workbook named name into dir and returns
// its path.
func NewWorkbook(tb testing.TB, dir, name string, rows [][]any) string {
	tb.Helper()
	path := filepath.Join(dir, name)
	WriteWorkbook(tb, path, Sheet{Name: "Sheet1", Rows: rows})
	return path
}

func quoteSheet(name string) string {
	return "'" + name + "'"
}
