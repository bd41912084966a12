// Copyright 2026 The Gridview Authors
// SPDX-License-Identifier: Apache-2.0

// gridview is a standalone TUI for browsing tabular data. It loads a
// declarative table definition (columns plus behavior switches) and a
// row data file, both authored as YAML or JSONC, and runs the
// interactive table component: incremental search, tri-state column
// sorting, pagination, and multi-row selection.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/gridview-ui/gridview/lib/tabledef"
	"github.com/gridview-ui/gridview/lib/tableui"
	"github.com/gridview-ui/gridview/lib/tableview"
	"github.com/gridview-ui/gridview/lib/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var tablePath string
	var dataPath string
	var logOutput string

	flagSet := pflag.NewFlagSet("gridview", pflag.ContinueOnError)
	flagSet.StringVar(&tablePath, "table", "", "path to the table definition (.yaml, .yml, .json, or .jsonc)")
	flagSet.StringVar(&dataPath, "data", "", "path to the row data file (same formats)")
	flagSet.StringVar(&logOutput, "log-output", "", "write JSON log records to this file")
	flagSet.BoolP("help", "h", false, "show help")

	// Handle --version before flag parsing so it works regardless of
	// other flags.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("gridview")
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}
	if tablePath == "" {
		return fmt.Errorf("--table is required (see --help)")
	}
	if dataPath == "" {
		return fmt.Errorf("--data is required (see --help)")
	}

	definition, err := tabledef.ReadFile(tablePath)
	if err != nil {
		return err
	}
	if issues := tabledef.Validate(definition); len(issues) > 0 {
		return fmt.Errorf("invalid table definition %s:\n  %s", tablePath, strings.Join(issues, "\n  "))
	}

	records, err := tabledef.ReadRecords(dataPath)
	if err != nil {
		return err
	}

	logger, cleanup, err := newLogger(logOutput)
	if err != nil {
		return err
	}
	defer cleanup()

	columns, options := tabledef.Build(definition)
	options.OnSelectionChange = func(selected []tabledef.Record) {
		logger.Debug("selection changed", "count", len(selected))
	}

	engine := tableview.NewEngine(records, columns, options)
	model := tableui.NewModel(engine)
	model.Title = definition.Title

	logger.Info("loaded table",
		"definition", tablePath,
		"rows", len(records),
		"columns", len(columns),
	)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = program.Run()
	return err
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `Gridview — interactive terminal UI for tabular data.

Loads a table definition and a row data file, then opens the
interactive table: type / to search, click a header (or press 1-9) to
cycle a column's sort between ascending, descending, and off, h/l to
change pages, space to select rows.

Definitions and data are YAML or JSONC, chosen by file extension.

Usage:
  gridview --table <definition> --data <rows> [flags]

Examples:
  # Browse deployments
  gridview --table deployments.yaml --data deployments.json

  # Capture structured logs for debugging
  gridview --table t.jsonc --data rows.jsonc --log-output /tmp/gridview.log

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}

// newLogger builds the command logger: TextHandler when stderr is a
// terminal, JSONHandler when piped. With --log-output, records also
// go to a JSON file at debug level; stderr stays at info. Returns a
// cleanup function that closes the file.
func newLogger(logOutput string) (*slog.Logger, func(), error) {
	var stderrHandler slog.Handler
	options := &slog.HandlerOptions{Level: slog.LevelInfo}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		stderrHandler = slog.NewTextHandler(os.Stderr, options)
	} else {
		stderrHandler = slog.NewJSONHandler(os.Stderr, options)
	}

	if logOutput == "" {
		return slog.New(stderrHandler), func() {}, nil
	}

	file, err := os.Create(logOutput)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file %s: %w", logOutput, err)
	}
	fileHandler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := slog.New(fanoutHandler{stderrHandler, fileHandler})
	return logger, func() { file.Close() }, nil
}

// fanoutHandler is a slog.Handler that sends each record to multiple
// underlying handlers. A record is enabled if any sub-handler is
// enabled for that level.
type fanoutHandler []slog.Handler

func (handlers fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (handlers fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record); err != nil {
				return err
			}
		}
	}
	return nil
}

func (handlers fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	derived := make(fanoutHandler, len(handlers))
	for index, handler := range handlers {
		derived[index] = handler.WithAttrs(attrs)
	}
	return derived
}

func (handlers fanoutHandler) WithGroup(name string) slog.Handler {
	derived := make(fanoutHandler, len(handlers))
	for index, handler := range handlers {
		derived[index] = handler.WithGroup(name)
	}
	return derived
}
