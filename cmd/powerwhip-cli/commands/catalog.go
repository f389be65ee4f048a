package commands

import (
	"github.com/spf13/cobra"

	"github.com/enconnex/powerwhip-engine/cmd/powerwhip-cli/ui"
	"github.com/enconnex/powerwhip-engine/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [token]",
	Short: "List the receptacle catalog or resolve a single token",
	RunE:  runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	ui.Init(noColor)
	cat := catalog.Default()

	if len(args) > 0 {
		token := args[0]
		spec, found := cat.Resolve(token)
		if !found {
			ui.Warning("%q is not in the catalog; the pipeline would apply defaults", token)
			return nil
		}
		ui.Success("%s resolves to %s", token, spec.StandardID)
		ui.Info("  voltage %sV  current %sA  conductor AWG %s", spec.Voltage, spec.Current, spec.WireGauge)
		ui.Info("  %s", spec.Description)
		ui.Info("  id %s", catalog.SpecID(spec))
		return nil
	}

	ui.Section("Receptacle catalog")
	seen := make(map[string]bool)
	for _, e := range cat.Entries() {
		if seen[e.Spec.StandardID] {
			continue
		}
		seen[e.Spec.StandardID] = true
		ui.Info("%-10s %8sV %5sA  AWG %-3s %s", e.Spec.StandardID, e.Spec.Voltage, e.Spec.Current, e.Spec.WireGauge, e.Spec.Description)
	}
	return nil
}
