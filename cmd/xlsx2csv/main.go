// Package main provides the CLI entry point for xlsx2csv.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/xlsx2csv-go/internal/config"
	"github.com/ukaji3/xlsx2csv-go/internal/logging"
	"github.com/ukaji3/xlsx2csv-go/pkg/xlsx2csv"
	"github.com/ukaji3/xlsx2csv-go/pkg/xlsx2csv/output"
)

// errFailures is returned in --strict mode when any file failed.
var errFailures = errors.New("one or more files failed to convert")

type cliFlags struct {
	output    string
	outputDir string
	sheet     string
	delimiter string
	encoding  string
	crlf      bool
	raw       bool
	printArea bool
	trim      bool
	strict    bool
	logLevel  string
	logFormat string
}

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	var fl cliFlags

	rootCmd := &cobra.Command{
		Use:   "xlsx2csv [input.xlsx | directory]",
		Short: "Convert Excel workbooks to CSV",
		Long: `xlsx2csv converts one sheet of an .xlsx workbook to comma-separated text.

Given a directory, or no argument at all, every .xlsx file directly inside the
directory (default: the current directory) is converted next to its source.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(cmd.ErrOrStderr(), fl.logLevel, fl.logFormat)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, fl)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&fl.output, "output", "o", "", "Output file path for a single input (default: input path with .csv)")
	flags.StringVar(&fl.outputDir, "output-dir", cfg.Output.Dir, "Directory for generated files (default: next to each input)")
	flags.StringVarP(&fl.sheet, "sheet", "s", "", "Sheet to convert: 0-based index or name (default: first sheet)")
	flags.StringVarP(&fl.delimiter, "delimiter", "d", cfg.Output.Delimiter, `Field delimiter, "tab" for \t`)
	flags.StringVar(&fl.encoding, "encoding", cfg.Output.Encoding, "Output encoding (e.g. utf-8, windows-1252, shift_jis)")
	flags.BoolVar(&fl.crlf, "crlf", cfg.Output.CRLF, "Terminate lines with CRLF")
	flags.BoolVar(&fl.raw, "raw", false, "Write stored cell values instead of formatted text")
	flags.BoolVar(&fl.printArea, "print-area", false, "Only convert the sheet's print area when one is defined")
	flags.BoolVar(&fl.trim, "trim", false, "Drop blank rows and columns around the data")
	flags.BoolVar(&fl.strict, "strict", false, "Exit with an error if any file fails to convert")
	flags.StringVar(&fl.logLevel, "log-level", cfg.Logging.Level, "Log level: debug, info, warn, error")
	flags.StringVar(&fl.logFormat, "log-format", cfg.Logging.Format, "Log format: text, json")

	return rootCmd
}

func run(cmd *cobra.Command, args []string, fl cliFlags) error {
	opts, err := fl.options()
	if err != nil {
		return err
	}

	inputPath := "."
	if len(args) == 1 {
		inputPath = args[0]
	}

	rep := &consoleReporter{w: cmd.OutOrStdout()}

	if info, err := os.Stat(inputPath); err == nil && info.IsDir() {
		if fl.output != "" {
			return errors.New("--output applies to a single file; use --output-dir with a directory")
		}

		results, err := xlsx2csv.ConvertAll(inputPath, opts, rep)
		if err != nil {
			return err
		}
		rep.summary(results)
		return fl.check(results)
	}

	// A missing input is reported like any other per-file failure.
	res, _ := xlsx2csv.Convert(inputPath, fl.output, opts)
	rep.Converted(*res)
	return fl.check([]xlsx2csv.Result{*res})
}

func (fl cliFlags) options() (xlsx2csv.Options, error) {
	delim, err := config.ParseDelimiter(fl.delimiter)
	if err != nil {
		return xlsx2csv.Options{}, err
	}
	if !output.ValidDelimiter(delim) {
		return xlsx2csv.Options{}, fmt.Errorf("invalid delimiter %q", fl.delimiter)
	}
	if _, err := output.LookupEncoding(fl.encoding); err != nil {
		return xlsx2csv.Options{}, err
	}

	return xlsx2csv.Options{
		Sheet:         xlsx2csv.ParseSheetSelector(fl.sheet),
		OutputDir:     fl.outputDir,
		Delimiter:     delim,
		UseCRLF:       fl.crlf,
		Encoding:      fl.encoding,
		RawValues:     fl.raw,
		PrintAreaOnly: fl.printArea,
		TrimToData:    fl.trim,
	}, nil
}

func (fl cliFlags) check(results []xlsx2csv.Result) error {
	if !fl.strict {
		return nil
	}
	if _, failed := xlsx2csv.Summary(results); failed > 0 {
		return errFailures
	}
	return nil
}
