package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/enconnex/powerwhip-engine/cmd/powerwhip-cli/ui"
	"github.com/enconnex/powerwhip-engine/internal/catalog"
	"github.com/enconnex/powerwhip-engine/pkg/engine"
)

var (
	parseInputPath  string
	parseOutputPath string
)

var parseCmd = &cobra.Command{
	Use:   "parse [pattern]...",
	Short: "Parse pattern lines against the built-in receptacle catalog",
	Long: `Parse one or more pattern lines using the catalog pipeline. Patterns may be
given as arguments, read from a file with --input, or piped on stdin.`,
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseInputPath, "input", "i", "", "file with one pattern per line (- for stdin)")
	parseCmd.Flags().StringVarP(&parseOutputPath, "out", "o", "", "write order entry rows to an xlsx file")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ui.Init(noColor)

	logger := newCLILogger(cfg)
	eng := newEngine(cfg, logger)
	resolver := engine.NewCatalogResolver(catalog.Default(), cfg.Pipeline.DefaultTailLength)

	lines, err := readPatternLines(args, parseInputPath)
	if err != nil {
		return err
	}

	result := eng.ProcessBatch(ctx, lines, resolver, "cli")
	printBatchSummary(result)

	if parseOutputPath != "" {
		if err := writeWorkbook(parseOutputPath, result); err != nil {
			return err
		}
		ui.Success("wrote %d rows to %s", len(result.Rows), parseOutputPath)
	}

	return nil
}
