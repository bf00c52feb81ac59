// ABOUTME: Root command for the gtm-planner CLI
// ABOUTME: Handles global flags shared by all subcommands

package cmd

import (
	"github.com/spf13/cobra"
)

var jsonOutput bool

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "gtm-planner",
	Short: "GTM headcount planner",
	Long: `gtm-planner converts revenue targets, retention, win rates, and quotas
into a recommended headcount mix (AEs by segment, AMs, BDRs) that covers
the revenue plan at minimum headcount, subject to hiring caps.

Commands run fully offline; 'serve' exposes the same planner over HTTP.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}
