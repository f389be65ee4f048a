// Package commands implements the powerwhip CLI commands.
package commands

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "powerwhip",
	Short: "PowerWhip Configurator - parse receptacle patterns into order entry rows",
	Long: `The powerwhip CLI parses free-form power whip pattern lines (for example
"L6-30R, LFMC, 30 ft, pigtail 10!2") into fully populated order entry rows,
using either the built-in receptacle catalog or an uploaded reference workbook.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
