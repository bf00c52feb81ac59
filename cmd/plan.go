// ABOUTME: Interactive planning command
// ABOUTME: Collects assumptions through a terminal form, then renders the plan

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/markalston/gtm-planner/internal/tui/render"
	"github.com/markalston/gtm-planner/internal/tui/wizard"
	"github.com/markalston/gtm-planner/models"
	"github.com/markalston/gtm-planner/services"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Plan interactively",
	Long: `Walk through the planning assumptions in a terminal form and solve
for the headcount mix. Fields are pre-filled with the baseline scenario.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := wizard.New(models.DefaultAssumptions(), models.DefaultConstraints())
		a, c, err := w.Run()
		if err != nil {
			return fmt.Errorf("form aborted: %w", err)
		}

		result, err := services.NewPlanner().Plan(a, c)
		if err != nil {
			return err
		}

		if IsJSONOutput() {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		fmt.Println(render.Plan(result))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
}
