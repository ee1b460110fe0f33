// Package output serializes tables to delimited text.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/ukaji3/xlsx2csv-go/pkg/xlsx2csv/models"
)

// CSVOptions configures delimited-text output.
type CSVOptions struct {
	// Comma is the field delimiter. Zero means ','.
	Comma rune
	// UseCRLF terminates lines with \r\n instead of \n.
	UseCRLF bool
}

// ValidDelimiter reports whether r can separate fields.
func ValidDelimiter(r rune) bool {
	return r != 0 && r != '"' && r != '\r' && r != '\n' && utf8.ValidRune(r) && r != utf8.RuneError
}

// WriteCSV writes every row of t, header first, quoting fields that contain
// the delimiter, a quote or a line break.
func WriteCSV(w io.Writer, t *models.Table, opts CSVOptions) error {
	cw := csv.NewWriter(w)
	if opts.Comma != 0 {
		if !ValidDelimiter(opts.Comma) {
			return fmt.Errorf("invalid delimiter %q", opts.Comma)
		}
		cw.Comma = opts.Comma
	}
	cw.UseCRLF = opts.UseCRLF

	eol := "\n"
	if opts.UseCRLF {
		eol = "\r\n"
	}

	for _, row := range t.Rows {
		// A lone empty field would come out as a blank line, which readers
		// skip; quote it so the row survives.
		if len(row) == 1 && row[0] == "" {
			cw.Flush()
			if err := cw.Error(); err != nil {
				return fmt.Errorf("write csv: %w", err)
			}
			if _, err := io.WriteString(w, `""`+eol); err != nil {
				return fmt.Errorf("write csv: %w", err)
			}
			continue
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}
