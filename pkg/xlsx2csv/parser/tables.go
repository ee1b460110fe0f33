package parser

import (
	"github.com/ukaji3/xlsx2csv-go/pkg/xlsx2csv/models"
)

// TrimToData crops a table to the bounding box of its non-empty cells.
// A table with no data yields an empty table.
func TrimToData(t *models.Table) *models.Table {
	minRow, maxRow, minCol, maxCol := findDataBounds(t.Rows)

	// No non-empty cell at all
	if minRow < 0 {
		return &models.Table{SheetName: t.SheetName}
	}
	return t.Crop(minRow, minCol, maxRow, maxCol)
}

// findDataBounds finds the bounding box of non-empty cells.
// All bounds are -1 when every cell is empty.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			// Rows are visited in order, so the first hit is the top row
			if minRow < 0 {
				minRow = rowIdx
			}
			maxRow = rowIdx
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}
