// ABOUTME: Preset scenario command
// ABOUTME: Runs the built-in scenarios and renders each plan in order

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/markalston/gtm-planner/internal/tui/render"
	"github.com/markalston/gtm-planner/models"
	"github.com/markalston/gtm-planner/services"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "Run the preset scenarios",
	Long: `Evaluate the built-in Base, Optimistic, and Conservative scenarios
side by side.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScenarios(cmd.Context(), os.Stdout, IsJSONOutput())
	},
}

func init() {
	rootCmd.AddCommand(scenariosCmd)
}

func runScenarios(ctx context.Context, w io.Writer, jsonOut bool) error {
	results, err := services.NewPlanner().RunScenarios(ctx, models.PresetScenarios())
	if err != nil {
		return fmt.Errorf("scenario run failed: %w", err)
	}

	if jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for _, result := range results {
		fmt.Fprintln(w, render.Plan(result))
	}
	return nil
}
