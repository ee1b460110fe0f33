package parser

import (
	"strings"

	"github.com/ukaji3/xlsx2csv-go/pkg/xlsx2csv/models"
	"github.com/xuri/excelize/v2"
)

const printAreaName = "_xlnm.Print_Area"

// ExtractPrintAreas returns the print areas defined in a workbook, keyed by
// sheet name.
func ExtractPrintAreas(f *excelize.File) map[string][]models.PrintArea {
	result := make(map[string][]models.PrintArea)

	for _, dn := range f.GetDefinedName() {
		// Only _xlnm.Print_Area names describe print areas
		if !strings.EqualFold(dn.Name, printAreaName) {
			continue
		}
		sheetName, areas := parsePrintAreaReference(dn.RefersTo)
		// Fall back to the name's scope when the reference has no sheet
		if sheetName == "" {
			sheetName = dn.Scope
		}
		if sheetName != "" && len(areas) > 0 {
			result[sheetName] = append(result[sheetName], areas...)
		}
	}

	return result
}

// PrintAreaFor returns the first print area of a sheet.
func PrintAreaFor(f *excelize.File, sheetName string) (models.PrintArea, bool) {
	areas := ExtractPrintAreas(f)[sheetName]
	if len(areas) == 0 {
		return models.PrintArea{}, false
	}
	return areas[0], true
}

// parsePrintAreaReference splits a reference such as
// 'Sheet 1'!$A$1:$D$10,'Sheet 1'!$F$1:$G$4 into its sheet name and areas.
func parsePrintAreaReference(ref string) (string, []models.PrintArea) {
	var (
		sheetName string
		areas     []models.PrintArea
	)

	// Split by comma for multiple print areas
	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)

		// Split by ! to separate sheet name and range
		idx := strings.LastIndex(part, "!")
		if idx < 0 {
			continue
		}

		if sheetName == "" {
			sheetName = unquoteSheetName(part[:idx])
		}
		if area, ok := parseRangeToArea(part[idx+1:]); ok {
			areas = append(areas, area)
		}
	}

	return sheetName, areas
}

// unquoteSheetName strips the quoting Excel applies to sheet names with
// spaces or punctuation ('It''s' -> It's).
func unquoteSheetName(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, "'") && strings.HasSuffix(s, "'") {
		s = strings.ReplaceAll(s[1:len(s)-1], "''", "'")
	}
	return s
}

// parseRangeToArea parses $A$1:$D$10 (or a single cell $B$2).
func parseRangeToArea(rangeStr string) (models.PrintArea, bool) {
	// Remove $ signs, then split by :
	parts := strings.Split(strings.ReplaceAll(rangeStr, "$", ""), ":")

	// A single cell is a 1x1 area
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return models.PrintArea{}, false
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.PrintArea{}, false
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.PrintArea{}, false
	}

	return models.PrintArea{R1: startRow, C1: startCol, R2: endRow, C2: endCol}, true
}
