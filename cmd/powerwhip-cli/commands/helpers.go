package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/enconnex/powerwhip-engine/cmd/powerwhip-cli/ui"
	"github.com/enconnex/powerwhip-engine/internal/config"
	"github.com/enconnex/powerwhip-engine/internal/observability"
	"github.com/enconnex/powerwhip-engine/internal/orderrow"
	"github.com/enconnex/powerwhip-engine/internal/sheet"
	"github.com/enconnex/powerwhip-engine/pkg/engine"
)

// loadConfig loads configuration honoring the global --config flag.
func loadConfig() (*config.Config, error) {
	return config.Load(cfgFile)
}

// newCLILogger builds a console logger; verbose raises the level to debug.
func newCLILogger(cfg *config.Config) *observability.Logger {
	level := cfg.Observability.LogLevel
	if verbose {
		level = "debug"
	}
	return observability.NewLogger(observability.LogConfig{
		Level:       level,
		Format:      "console",
		ServiceName: "powerwhip-cli",
	})
}

// newEngine builds an order engine without batch history; the CLI is a
// one-shot tool and does not persist batches.
func newEngine(cfg *config.Config, logger *observability.Logger) *engine.OrderEngine {
	return engine.NewOrderEngine(logger, nil, engine.Config{
		MaxQuantity:     cfg.Pipeline.MaxQuantity,
		ReviewThreshold: cfg.Pipeline.ReviewThreshold,
	})
}

// readPatternLines collects pattern lines from positional args, an input file,
// or stdin, in that priority order.
func readPatternLines(args []string, inputPath string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var r io.Reader
	if inputPath != "" && inputPath != "-" {
		f, err := os.Open(inputPath)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	} else {
		r = os.Stdin
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("no pattern lines provided")
	}
	return lines, nil
}

// writeWorkbook saves the batch rows as an order entry workbook.
func writeWorkbook(path string, result *engine.BatchResult) error {
	rows := make([][]string, len(result.Rows))
	for i, row := range result.Rows {
		rows[i] = row
	}

	data, err := sheet.WriteRows("PreSal", orderrow.Columns, rows)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// printBatchSummary renders the per-line outcomes and the batch summary.
func printBatchSummary(result *engine.BatchResult) {
	ui.Section("Results")
	for _, res := range result.Results {
		status := "defaulted"
		if res.Matched {
			status = "matched"
		}
		ui.Info("%-40s %-9s confidence %.2f  rows %d", res.InputPattern, status, res.Confidence, res.GeneratedRowCount)
		if res.Fill.Note != "" {
			ui.Warning("  %s", res.Fill.Note)
		}
	}

	ui.Section("Summary")
	ui.Info("lines %d  rows %d  matched %d  defaulted %d  mean confidence %.2f",
		result.Summary.LineCount, result.Summary.RowCount,
		result.Summary.MatchedCount, result.Summary.DefaultedCount,
		result.Summary.MeanConfidence)
	if result.Summary.Notes != "" {
		ui.Warning("%s", result.Summary.Notes)
	}
}
