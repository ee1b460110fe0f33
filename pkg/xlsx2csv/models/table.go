// Package models defines data structures for sheet conversion.
package models

// Table is a rectangular snapshot of one sheet.
// Rows[0] holds the column names when the sheet is not empty.
type Table struct {
	// SheetName is the name of the sheet the table was read from.
	SheetName string
	// Rows holds cell values in sheet order; every row has Cols() cells.
	Rows [][]string
}

// NewTable builds a Table from ragged rows, padding every row with empty
// cells up to the widest row.
func NewTable(sheetName string, rows [][]string) *Table {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	padded := make([][]string, len(rows))
	for i, row := range rows {
		cells := make([]string, width)
		copy(cells, row)
		padded[i] = cells
	}

	return &Table{SheetName: sheetName, Rows: padded}
}

// NumRows returns the number of rows including the header row.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// Cols returns the number of columns.
func (t *Table) Cols() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0])
}

// DataRows returns the number of rows below the header.
func (t *Table) DataRows() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows) - 1
}

// Crop returns the sub-table bounded by 0-based inclusive row and column
// indexes. Bounds outside the table are clamped; an inverted range yields an
// empty table.
func (t *Table) Crop(r1, c1, r2, c2 int) *Table {
	r1, c1 = max(r1, 0), max(c1, 0)
	r2, c2 = min(r2, t.NumRows()-1), min(c2, t.Cols()-1)
	if r1 > r2 || c1 > c2 {
		return &Table{SheetName: t.SheetName}
	}

	rows := make([][]string, 0, r2-r1+1)
	for _, row := range t.Rows[r1 : r2+1] {
		cells := make([]string, c2-c1+1)
		copy(cells, row[c1:c2+1])
		rows = append(rows, cells)
	}
	return &Table{SheetName: t.SheetName, Rows: rows}
}
