// Package xlsx2csv converts Excel workbooks to comma-separated text.
package xlsx2csv

import (
	"strconv"
	"strings"
)

// Extension is the file extension of convertible workbooks.
const Extension = ".xlsx"

// OutputExtension is the extension given to generated files.
const OutputExtension = ".csv"

// SheetSelector picks one sheet of a workbook by 0-based position or by name.
// The zero value selects the first sheet.
type SheetSelector struct {
	// Index is the 0-based sheet position, used when Name is empty.
	Index int
	// Name selects a sheet by name.
	Name string
}

// SheetIndex selects a sheet by 0-based position.
func SheetIndex(i int) SheetSelector {
	return SheetSelector{Index: i}
}

// SheetName selects a sheet by name.
func SheetName(name string) SheetSelector {
	return SheetSelector{Name: name}
}

// ParseSheetSelector interprets s as an index when it is a non-negative
// integer and as a sheet name otherwise. An empty string selects the first
// sheet.
func ParseSheetSelector(s string) SheetSelector {
	if s == "" {
		return SheetSelector{}
	}
	if i, err := strconv.Atoi(s); err == nil && i >= 0 && !strings.HasPrefix(s, "+") {
		return SheetIndex(i)
	}
	return SheetName(s)
}

func (s SheetSelector) String() string {
	if s.Name != "" {
		return strconv.Quote(s.Name)
	}
	return "#" + strconv.Itoa(s.Index)
}

// Options configures conversion behavior.
type Options struct {
	// Sheet selects the sheet to convert.
	Sheet SheetSelector
	// OutputDir, if set, replaces the source directory when a destination
	// path is derived from the source path.
	OutputDir string
	// Delimiter separates fields. Zero means ','.
	Delimiter rune
	// UseCRLF terminates lines with \r\n.
	UseCRLF bool
	// Encoding is the output encoding label. Empty means UTF-8.
	Encoding string
	// RawValues writes stored cell values instead of formatted text.
	RawValues bool
	// PrintAreaOnly restricts output to the sheet's print area.
	PrintAreaOnly bool
	// TrimToData drops blank rows and columns surrounding the data.
	TrimToData bool
}

// DefaultOptions returns options converting the first sheet to UTF-8,
// comma-separated text next to the source file.
func DefaultOptions() Options {
	return Options{Delimiter: ','}
}

func (o Options) delimiter() rune {
	if o.Delimiter == 0 {
		return ','
	}
	return o.Delimiter
}
