package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/ukaji3/xlsx2csv-go/pkg/xlsx2csv"
)

// consoleReporter prints human-readable status lines.
type consoleReporter struct {
	w io.Writer
}

func (r *consoleReporter) Found(dir string, names []string) {
	if len(names) == 0 {
		fmt.Fprintln(r.w, "No XLSX files found in the directory.")
		return
	}

	fmt.Fprintf(r.w, "Found %d XLSX file(s):\n", len(names))
	for _, name := range names {
		fmt.Fprintf(r.w, "- %s\n", name)
	}
	fmt.Fprintln(r.w)
}

func (r *consoleReporter) Converted(res xlsx2csv.Result) {
	switch {
	case res.OK():
		fmt.Fprintf(r.w, "Successfully converted %s to %s\n", res.Source, res.Destination)
		fmt.Fprintf(r.w, "Shape: %d rows, %d columns\n", res.DataRows(), res.Cols)
	case xlsx2csv.IsNotFound(res.Err):
		fmt.Fprintf(r.w, "Error: File '%s' not found.\n", res.Source)
	default:
		slog.Warn("conversion failed", "source", res.Source, "error", res.Err)
		fmt.Fprintf(r.w, "Error converting file: %v\n", res.Err)
	}
}

func (r *consoleReporter) summary(results []xlsx2csv.Result) {
	if len(results) == 0 {
		return
	}
	succeeded, _ := xlsx2csv.Summary(results)
	fmt.Fprintf(r.w, "\nConverted %d of %d file(s)\n", succeeded, len(results))
}
