package xlsx2csv

import (
	"archive/zip"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/xlsx2csv-go/pkg/xlsx2csv/models"
	"github.com/ukaji3/xlsx2csv-go/pkg/xlsx2csv/output"
	"github.com/ukaji3/xlsx2csv-go/pkg/xlsx2csv/parser"
	"github.com/xuri/excelize/v2"
)

// Convert writes one sheet of the workbook at source as delimited text.
// An empty destination is derived with DestinationPath.
//
// On failure the returned Result carries the same *ConversionError that is
// returned, and nothing is left at the destination path.
func Convert(source, destination string, opts Options) (*Result, error) {
	res := &Result{Source: source}
	fail := func(op string, err error) (*Result, error) {
		res.Err = NewConversionError(source, op, err)
		return res, res.Err
	}

	// Validate input file exists
	info, err := os.Stat(source)
	if errors.Is(err, fs.ErrNotExist) {
		return fail(OpOpen, ErrNotFound)
	}
	if err != nil {
		return fail(OpOpen, err)
	}
	if info.IsDir() {
		return fail(OpOpen, fmt.Errorf("%s is a directory", source))
	}

	// Derive output path from the source name
	if destination == "" {
		destination = DestinationPath(source, opts.OutputDir)
	}
	res.Destination = destination

	// Reject bad output settings before reading anything
	if _, err := output.LookupEncoding(opts.Encoding); err != nil {
		return fail(OpWrite, err)
	}
	if !output.ValidDelimiter(opts.delimiter()) {
		return fail(OpWrite, fmt.Errorf("invalid delimiter %q", opts.delimiter()))
	}

	// Load the selected sheet
	table, err := ReadTable(source, opts)
	if err != nil {
		return fail(OpParse, err)
	}
	slog.Debug("sheet loaded", "source", source, "selector", opts.Sheet.String(),
		"sheet", table.SheetName, "rows", table.NumRows(), "cols", table.Cols())

	// Write output
	if err := writeTable(destination, table, opts); err != nil {
		return fail(OpWrite, err)
	}
	slog.Debug("csv written", "destination", destination)

	res.Sheet = table.SheetName
	res.Rows = table.NumRows()
	res.Cols = table.Cols()
	return res, nil
}

// ReadTable opens the workbook at path and loads the sheet chosen by
// opts.Sheet.
func ReadTable(path string, opts Options) (*models.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, zip.ErrFormat) || errors.Is(err, excelize.ErrWorkbookFileFormat) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		return nil, err
	}
	defer f.Close()

	// Pick the sheet by name or position
	sheet, err := parser.ResolveSheet(f.GetSheetList(), opts.Sheet.Index, opts.Sheet.Name)
	if err != nil {
		return nil, err
	}

	return parser.ReadTable(f, sheet, parser.ReadOptions{
		RawValues:     opts.RawValues,
		PrintAreaOnly: opts.PrintAreaOnly,
		TrimToData:    opts.TrimToData,
	})
}

// DestinationPath replaces the extension of source with OutputExtension.
// The result stays next to source unless outputDir is set.
func DestinationPath(source, outputDir string) string {
	dest := strings.TrimSuffix(source, filepath.Ext(source)) + OutputExtension
	if outputDir != "" {
		return filepath.Join(outputDir, filepath.Base(dest))
	}
	return dest
}

// writeTable writes t to a temporary file beside dest and renames it into
// place once fully written.
func writeTable(dest string, t *models.Table, opts Options) (err error) {
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// Write beside dest so the final rename stays on one filesystem
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(dest)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	w, err := output.NewEncodedWriter(tmp, opts.Encoding)
	if err != nil {
		return err
	}
	csvOpts := output.CSVOptions{Comma: opts.delimiter(), UseCRLF: opts.UseCRLF}
	if err = output.WriteCSV(w, t, csvOpts); err != nil {
		return err
	}
	if err = w.Close(); err != nil {
		return err
	}
	if err = tmp.Chmod(0644); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), dest)
}
