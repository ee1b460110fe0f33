package xlsx2csv

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Reporter receives progress from ConvertAll.
type Reporter interface {
	// Found is called once with the workbook names about to be converted.
	Found(dir string, names []string)
	// Converted is called after each file, whether it succeeded or not.
	Converted(res Result)
}

// FindWorkbooks lists the xlsx files directly inside dir, sorted by name.
// Subdirectories and Excel lock files (~$name.xlsx) are skipped.
func FindWorkbooks(dir string) ([]string, error) {
	// os.ReadDir returns entries sorted by filename.
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, "~$") {
			continue
		}
		if strings.EqualFold(filepath.Ext(name), Extension) {
			names = append(names, name)
		}
	}
	return names, nil
}

// ConvertAll converts every workbook in dir (default ".") with a derived
// destination. A failing file does not stop the batch; its Result carries
// the error. The returned error is only set when dir cannot be listed.
// rep may be nil.
func ConvertAll(dir string, opts Options, rep Reporter) ([]Result, error) {
	if dir == "" {
		dir = "."
	}

	names, err := FindWorkbooks(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	if rep != nil {
		rep.Found(dir, names)
	}

	results := make([]Result, 0, len(names))
	for _, name := range names {
		res, err := Convert(filepath.Join(dir, name), "", opts)
		if err != nil {
			slog.Debug("conversion failed", "file", name, "error", err)
		}
		results = append(results, *res)
		if rep != nil {
			rep.Converted(*res)
		}
	}

	return results, nil
}
