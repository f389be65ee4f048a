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
	exportTablePath  string
	exportInputPath  string
	exportOutputPath string
)

var exportCmd = &cobra.Command{
	Use:   "export [pattern]...",
	Short: "Run a pipeline and write the order entry workbook",
	Long: `Run pattern lines through the catalog pipeline (or the lookup pipeline when
--table is given) and write the resulting order entry rows to an xlsx file.
Unlike parse and match, export prints only the batch summary.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportTablePath, "table", "t", "", "optional reference lookup workbook; switches to the lookup pipeline")
	exportCmd.Flags().StringVarP(&exportInputPath, "input", "i", "", "file with one pattern per line (- for stdin)")
	exportCmd.Flags().StringVarP(&exportOutputPath, "out", "o", "", "output xlsx file (required)")
	exportCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ui.Init(noColor)

	logger := newCLILogger(cfg)
	eng := newEngine(cfg, logger)

	lines, err := readPatternLines(args, exportInputPath)
	if err != nil {
		return err
	}

	var resolver engine.PatternResolver
	source := "cli"
	if exportTablePath != "" {
		table, err := loadLookupTable(exportTablePath)
		if err != nil {
			return err
		}
		resolver = engine.NewLookupResolver(table)
		source = exportTablePath
	} else {
		resolver = engine.NewCatalogResolver(catalog.Default(), cfg.Pipeline.DefaultTailLength)
	}

	result := eng.ProcessBatch(ctx, lines, resolver, source)

	if err := writeWorkbook(exportOutputPath, result); err != nil {
		return err
	}

	ui.Success("wrote %d rows to %s (%d matched, %d defaulted, mean confidence %.2f)",
		len(result.Rows), exportOutputPath,
		result.Summary.MatchedCount, result.Summary.DefaultedCount,
		result.Summary.MeanConfidence)
	if result.Summary.Notes != "" {
		ui.Warning("%s", result.Summary.Notes)
	}
	return nil
}
