package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/xlsx2csv-go/internal/config"
	"github.com/ukaji3/xlsx2csv-go/internal/testkit"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cfg, err := config.Load()
	require.NoError(t, err)

	cmd := newRootCmd(cfg)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRunDirectory(t *testing.T) {
	dir := t.TempDir()
	testkit.NewWorkbook(t, dir, "a.xlsx", [][]any{{"x", "y"}, {1, 2}})
	testkit.NewWorkbook(t, dir, "b.xlsx", [][]any{{"z"}})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.txt"), []byte("skip"), 0644))

	out, _, err := runCLI(t, dir)
	require.NoError(t, err)

	assert.Contains(t, out, "Found 2 XLSX file(s):\n- a.xlsx\n- b.xlsx\n")
	assert.Contains(t, out, "Successfully converted "+filepath.Join(dir, "a.xlsx")+" to "+filepath.Join(dir, "a.csv"))
	assert.Contains(t, out, "Shape: 1 rows, 2 columns")
	assert.Contains(t, out, "Shape: 0 rows, 1 columns")
	assert.Contains(t, out, "Converted 2 of 2 file(s)")
	assert.NotContains(t, out, "c.txt")

	assert.FileExists(t, filepath.Join(dir, "a.csv"))
	assert.FileExists(t, filepath.Join(dir, "b.csv"))
	assert.NoFileExists(t, filepath.Join(dir, "c.csv"))
}

func TestRunCurrentDirectoryByDefault(t *testing.T) {
	dir := t.TempDir()
	testkit.NewWorkbook(t, dir, "only.xlsx", [][]any{{"h"}})
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	out, _, err := runCLI(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Found 1 XLSX file(s):")
	assert.FileExists(t, filepath.Join(dir, "only.csv"))
}

func TestRunEmptyDirectory(t *testing.T) {
	out, _, err := runCLI(t, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "No XLSX files found in the directory.\n", out)
}

func TestRunMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.xlsx")

	out, _, err := runCLI(t, missing)
	require.NoError(t, err)
	assert.Equal(t, "Error: File '"+missing+"' not found.\n", out)

	_, _, err = runCLI(t, "--strict", missing)
	assert.ErrorIs(t, err, errFailures)
}

func TestRunFailureContinuesBatch(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.xlsx"), []byte("nope"), 0644))
	testkit.NewWorkbook(t, dir, "fine.xlsx", [][]any{{"ok"}})

	out, stderr, err := runCLI(t, dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Error converting file: ")
	assert.Contains(t, out, "Successfully converted "+filepath.Join(dir, "fine.xlsx"))
	assert.Contains(t, out, "Converted 1 of 2 file(s)")
	assert.Contains(t, stderr, "conversion failed")

	_, _, err = runCLI(t, "--strict", dir)
	assert.ErrorIs(t, err, errFailures)
}

func TestRunSingleFileWithOptions(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "book.xlsx")
	testkit.WriteWorkbook(t, src,
		testkit.Sheet{Name: "Cover", Rows: [][]any{{"cover"}}},
		testkit.Sheet{Name: "Data", Rows: [][]any{{"a", "b"}, {1, 2}}},
	)
	dest := filepath.Join(dir, "custom.tsv")

	out, _, err := runCLI(t, "--sheet", "Data", "--delimiter", "tab", "-o", dest, src)
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully converted "+src+" to "+dest)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "a\tb\n1\t2\n", string(data))

	_, _, err = runCLI(t, "--sheet", "1", "--output-dir", filepath.Join(dir, "out"), src)
	require.NoError(t, err)
	data, err = os.ReadFile(filepath.Join(dir, "out", "book.csv"))
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", string(data))
}

func TestRunUsageErrors(t *testing.T) {
	dir := t.TempDir()

	tests := [][]string{
		{"--delimiter", ";;", dir},
		{"--delimiter", `"`, dir},
		{"--encoding", "klingon", dir},
		{"-o", filepath.Join(dir, "x.csv"), dir},
		{dir, dir},
	}

	for _, args := range tests {
		_, _, err := runCLI(t, args...)
		assert.Error(t, err, strings.Join(args, " "))
	}
}
