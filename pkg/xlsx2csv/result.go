package xlsx2csv

// Result describes the outcome of converting one file.
type Result struct {
	// Source is the workbook path.
	Source string
	// Destination is the output path; set once it has been derived.
	Destination string
	// Sheet is the name of the converted sheet.
	Sheet string
	// Rows is the number of written lines, header included.
	Rows int
	// Cols is the number of fields per line.
	Cols int
	// Err is nil on success.
	Err error
}

// OK reports whether the conversion succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// DataRows returns the number of rows below the header.
func (r Result) DataRows() int {
	if r.Rows == 0 {
		return 0
	}
	return r.Rows - 1
}

// Summary counts succeeded and failed results.
func Summary(results []Result) (succeeded, failed int) {
	for _, r := range results {
		if r.OK() {
			succeeded++
		} else {
			failed++
		}
	}
	return succeeded, failed
}
