// ABOUTME: Concurrent evaluation of multiple planning scenarios
// ABOUTME: Each scenario runs against an independent copy of its inputs

package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/markalston/gtm-planner/models"
)

// RunScenarios evaluates scenarios concurrently. Results are ordered by
// input index; runs share no state, so there is no ordering dependency
// between them. The first InvalidAssumptionError (or internal solver
// failure) cancels the batch; infeasible scenarios are not errors and
// appear in the results with their Infeasible marker set.
func (p *Planner) RunScenarios(ctx context.Context, scenarios []models.Scenario) ([]models.PlanResult, error) {
	results := make([]models.PlanResult, len(scenarios))

	g, _ := errgroup.WithContext(ctx)
	for i, scenario := range scenarios {
		g.Go(func() error {
			result, err := p.PlanScenario(scenario)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
