package parser

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ukaji3/xlsx2csv-go/internal/testkit"
	"github.com/xuri/excelize/v2"
)

func openFixture(t *testing.T, sheets ...testkit.Sheet) *excelize.File {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.xlsx")
	testkit.WriteWorkbook(t, path, sheets...)

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func TestReadTable(t *testing.T) {
	f := openFixture(t, testkit.Sheet{
		Name: "Sheet1",
		Rows: [][]any{
			{"Header1", "Header2", "Header3"},
			{100, 200.5},
			{"Text", nil, true},
		},
	})

	table, err := ReadTable(f, "Sheet1", ReadOptions{})
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}

	want := [][]string{
		{"Header1", "Header2", "Header3"},
		{"100", "200.5", ""},
		{"Text", "", "TRUE"},
	}
	if !reflect.DeepEqual(table.Rows, want) {
		t.Errorf("rows = %q, want %q", table.Rows, want)
	}
	if table.NumRows() != 3 || table.Cols() != 3 {
		t.Errorf("dimensions = %dx%d, want 3x3", table.NumRows(), table.Cols())
	}
	if table.SheetName != "Sheet1" {
		t.Errorf("SheetName = %q, want %q", table.SheetName, "Sheet1")
	}
}

func TestReadTableHeaderOnly(t *testing.T) {
	f := openFixture(t, testkit.Sheet{
		Name: "Sheet1",
		Rows: [][]any{{"id", "name"}},
	})

	table, err := ReadTable(f, "Sheet1", ReadOptions{})
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}
	if table.NumRows() != 1 || table.DataRows() != 0 {
		t.Errorf("NumRows = %d, DataRows = %d, want 1 and 0", table.NumRows(), table.DataRows())
	}
}

func TestReadTableUnknownSheet(t *testing.T) {
	f := openFixture(t, testkit.Sheet{Name: "Sheet1", Rows: [][]any{{"a"}}})

	if _, err := ReadTable(f, "Nope", ReadOptions{}); err == nil {
		t.Error("expected error for unknown sheet")
	}
}

func TestReadTablePrintArea(t *testing.T) {
	f := openFixture(t, testkit.Sheet{
		Name: "Report",
		Rows: [][]any{
			{"title"},
			{"a", "b", "c"},
			{1, 2, 3},
			{"footer"},
		},
		PrintArea: "$A$2:$B$3",
	})

	table, err := ReadTable(f, "Report", ReadOptions{PrintAreaOnly: true})
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}

	want := [][]string{{"a", "b"}, {"1", "2"}}
	if !reflect.DeepEqual(table.Rows, want) {
		t.Errorf("rows = %q, want %q", table.Rows, want)
	}
}

func TestReadTableTrimToData(t *testing.T) {
	f := openFixture(t, testkit.Sheet{
		Name: "Sheet1",
		Rows: [][]any{
			{},
			{nil, "id", "name"},
			{nil, 1, "x"},
		},
	})

	table, err := ReadTable(f, "Sheet1", ReadOptions{TrimToData: true})
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}

	want := [][]string{{"id", "name"}, {"1", "x"}}
	if !reflect.DeepEqual(table.Rows, want) {
		t.Errorf("rows = %q, want %q", table.Rows, want)
	}
}
