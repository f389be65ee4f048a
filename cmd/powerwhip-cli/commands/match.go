package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/enconnex/powerwhip-engine/cmd/powerwhip-cli/ui"
	"github.com/enconnex/powerwhip-engine/internal/lookup"
	"github.com/enconnex/powerwhip-engine/internal/sheet"
	"github.com/enconnex/powerwhip-engine/pkg/engine"
)

var (
	matchTablePath  string
	matchInputPath  string
	matchOutputPath string
)

var matchCmd = &cobra.Command{
	Use:   "match [pattern]...",
	Short: "Match pattern lines against a reference workbook",
	Long: `Match pattern lines using the lookup pipeline. The reference workbook given
with --table must carry a header row with at least a receptacle column; rows
match on exact (case-insensitive) receptacle, conduit, whip length and tail
length, where a blank pattern field acts as a wildcard.`,
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVarP(&matchTablePath, "table", "t", "", "reference lookup workbook (required)")
	matchCmd.Flags().StringVarP(&matchInputPath, "input", "i", "", "file with one pattern per line (- for stdin)")
	matchCmd.Flags().StringVarP(&matchOutputPath, "out", "o", "", "write order entry rows to an xlsx file")
	matchCmd.MarkFlagRequired("table")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ui.Init(noColor)

	logger := newCLILogger(cfg)
	eng := newEngine(cfg, logger)

	lines, err := readPatternLines(args, matchInputPath)
	if err != nil {
		return err
	}

	sp := ui.NewSpinner("loading reference table...")
	sp.Start()
	table, err := loadLookupTable(matchTablePath)
	sp.Stop()
	if err != nil {
		return err
	}
	ui.Success("loaded %d reference rows from %s", len(table.Rows), matchTablePath)

	resolver := engine.NewLookupResolver(table)
	result := eng.ProcessBatch(ctx, lines, resolver, matchTablePath)
	printBatchSummary(result)

	if matchOutputPath != "" {
		if err := writeWorkbook(matchOutputPath, result); err != nil {
			return err
		}
		ui.Success("wrote %d rows to %s", len(result.Rows), matchOutputPath)
	}

	return nil
}

// loadLookupTable reads an xlsx file from disk and builds a lookup table.
func loadLookupTable(path string) (*lookup.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat table: %w", err)
	}

	grid, err := sheet.ReadGrid(f, info.Size())
	if err != nil {
		return nil, err
	}

	return lookup.LoadTable(path, grid)
}
