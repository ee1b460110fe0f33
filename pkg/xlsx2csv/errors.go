package xlsx2csv

import (
	"errors"
	"fmt"

	"github.com/ukaji3/xlsx2csv-go/pkg/xlsx2csv/parser"
)

// ErrNotFound indicates the source file does not exist.
var ErrNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the source file is not a valid xlsx workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrEmptyWorkbook indicates the workbook has no sheets.
var ErrEmptyWorkbook = parser.ErrEmptyWorkbook

// ErrSheetNotFound indicates the selected sheet does not exist.
var ErrSheetNotFound = parser.ErrSheetNotFound

// Conversion stages reported in ConversionError.Op.
const (
	OpOpen  = "open"
	OpParse = "parse"
	OpWrite = "write"
)

// ConversionError represents a failed conversion of one file.
type ConversionError struct {
	Path string
	Op   string // OpOpen, OpParse or OpWrite
	Err  error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// NewConversionError creates a new ConversionError.
func NewConversionError(path, op string, err error) *ConversionError {
	return &ConversionError{
		Path: path,
		Op:   op,
		Err:  err,
	}
}

// IsNotFound reports whether err means the source file was missing.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
