package models

// PrintArea represents cell coordinate bounds for a print area.
type PrintArea struct {
	// R1 is the start row (1-based).
	R1 int
	// C1 is the start column (1-based).
	C1 int
	// R2 is the end row (1-based, inclusive).
	R2 int
	// C2 is the end column (1-based, inclusive).
	C2 int
}

// Apply crops t to the area.
func (a PrintArea) Apply(t *Table) *Table {
	return t.Crop(a.R1-1, a.C1-1, a.R2-1, a.C2-1)
}
