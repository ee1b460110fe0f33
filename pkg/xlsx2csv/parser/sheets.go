package parser

import (
	"errors"
	"fmt"
)

// ErrEmptyWorkbook indicates the workbook has no sheets to select from.
var ErrEmptyWorkbook = errors.New("workbook has no sheets")

// ErrSheetNotFound indicates the selected sheet does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// ResolveSheet picks a sheet name from the workbook's sheet list.
// A non-empty name takes precedence over index; index is 0-based.
func ResolveSheet(sheets []string, index int, name string) (string, error) {
	if len(sheets) == 0 {
		return "", ErrEmptyWorkbook
	}

	if name != "" {
		for _, s := range sheets {
			if s == name {
				return s, nil
			}
		}
		return "", fmt.Errorf("%w: %q", ErrSheetNotFound, name)
	}

	if index < 0 || index >= len(sheets) {
		return "", fmt.Errorf("%w: index %d out of range (workbook has %d)", ErrSheetNotFound, index, len(sheets))
	}
	return sheets[index], nil
}
