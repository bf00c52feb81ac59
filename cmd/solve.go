// ABOUTME: Non-interactive planning command
// ABOUTME: Flags for every assumption and constraint, for CI/CD usage

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/markalston/gtm-planner/internal/tui/render"
	"github.com/markalston/gtm-planner/models"
	"github.com/markalston/gtm-planner/services"
)

var (
	solveAssumptions = models.DefaultAssumptions()
	solveConstraints = models.DefaultConstraints()
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve for the headcount mix",
	Long: `Run one planning pass without the interactive form.

All assumptions and constraints default to the baseline scenario and can
be overridden per flag.

Example:
  gtm-planner solve --target-arr 30000000 --max-total-ae 18 --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSolve(os.Stdout, solveAssumptions, solveConstraints, IsJSONOutput())
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)

	f := solveCmd.Flags()
	f.Float64Var(&solveAssumptions.TargetARR, "target-arr", solveAssumptions.TargetARR, "Target ARR ($)")
	f.Float64Var(&solveAssumptions.StartingARR, "starting-arr", solveAssumptions.StartingARR, "Starting ARR ($)")
	f.Float64Var(&solveAssumptions.NDRPercent, "ndr", solveAssumptions.NDRPercent, "Net dollar retention (%)")
	f.Float64Var(&solveAssumptions.CommASP, "comm-asp", solveAssumptions.CommASP, "Commercial ASP ($)")
	f.Float64Var(&solveAssumptions.EntASP, "ent-asp", solveAssumptions.EntASP, "Enterprise ASP ($)")
	f.Float64Var(&solveAssumptions.CommWinRate, "comm-win-rate", solveAssumptions.CommWinRate, "Commercial win rate (0,1]")
	f.Float64Var(&solveAssumptions.EntWinRate, "ent-win-rate", solveAssumptions.EntWinRate, "Enterprise win rate (0,1]")
	f.Float64Var(&solveAssumptions.MtgToSQORate, "mtg-to-sqo", solveAssumptions.MtgToSQORate, "Meeting to SQO conversion (0,1]")
	f.Float64Var(&solveAssumptions.CommQuota, "comm-quota", solveAssumptions.CommQuota, "Commercial AE quota ($)")
	f.Float64Var(&solveAssumptions.EntQuota, "ent-quota", solveAssumptions.EntQuota, "Enterprise AE quota ($)")
	f.Float64Var(&solveAssumptions.AMQuota, "am-quota", solveAssumptions.AMQuota, "AM quota ($)")

	f.Float64Var(&solveConstraints.MinCommAE, "min-comm-ae", solveConstraints.MinCommAE, "Minimum commercial AEs")
	f.Float64Var(&solveConstraints.MinEntAE, "min-ent-ae", solveConstraints.MinEntAE, "Minimum enterprise AEs")
	f.Float64Var(&solveConstraints.MaxTotalAE, "max-total-ae", solveConstraints.MaxTotalAE, "Maximum total AEs")
	f.Float64Var(&solveConstraints.BDRMeetingsComm, "bdr-meetings-comm", solveConstraints.BDRMeetingsComm, "Meetings/month per commercial BDR")
	f.Float64Var(&solveConstraints.BDRMeetingsEnt, "bdr-meetings-ent", solveConstraints.BDRMeetingsEnt, "Meetings/month per enterprise BDR")
	f.Float64Var(&solveConstraints.BDRBudget, "bdr-budget", solveConstraints.BDRBudget, "Maximum total BDRs")
}

func runSolve(w io.Writer, a models.AssumptionSet, c models.Constraints, jsonOut bool) error {
	if err := c.Validate(); err != nil {
		return err
	}

	result, err := services.NewPlanner().Plan(a, c)
	if err != nil {
		if errors.Is(err, services.ErrInvalidAssumption) {
			return err
		}
		return fmt.Errorf("planning failed: %w", err)
	}

	if jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Fprintln(w, render.Plan(result))
	return nil
}
