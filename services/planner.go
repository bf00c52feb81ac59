// ABOUTME: Planner composing decomposition, headcount solve, and sensitivity
// ABOUTME: Produces the full plan result consumed by the HTTP API and CLI

package services

import (
	"errors"

	"github.com/markalston/gtm-planner/models"
)

// Planner runs a full planning pass: decompose revenue, solve for
// headcount, attach sensitivity and the pipeline breakdown. Each run is
// a pure transformation of its inputs; the planner holds no state
// between invocations and is safe to share across goroutines.
type Planner struct {
	decomposer *RevenueDecomposer
	solver     *HeadcountSolver
}

// NewPlanner creates a new planner
func NewPlanner() *Planner {
	return &Planner{
		decomposer: NewRevenueDecomposer(),
		solver:     NewHeadcountSolver(),
	}
}

// Plan evaluates one scenario. An InvalidAssumptionError fails the
// whole call. An infeasible solve does not: the result then carries the
// derived revenue, sensitivity table, and pipeline breakdown with the
// Infeasible marker set and no headcount fields, so the caller can
// present "adjust constraints" alongside the revenue math.
func (p *Planner) Plan(a models.AssumptionSet, c models.Constraints) (models.PlanResult, error) {
	derived, err := p.decomposer.Decompose(a)
	if err != nil {
		return models.PlanResult{}, err
	}

	result := models.PlanResult{
		Assumptions: a,
		Constraints: c,
		Derived:     derived,
		Sensitivity: Sensitivity(derived, a),
		Breakdown:   derived.PipelineBreakdown(),
	}

	sol, err := p.solver.Solve(derived, a, c)
	if err != nil {
		if errors.Is(err, ErrInfeasible) {
			result.Infeasible = true
			result.Message = err.Error()
			return result, nil
		}
		return models.PlanResult{}, err
	}

	result.Solution = &sol
	return result, nil
}

// PlanScenario evaluates a named scenario.
func (p *Planner) PlanScenario(s models.Scenario) (models.PlanResult, error) {
	result, err := p.Plan(s.Assumptions, s.Constraints)
	if err != nil {
		return models.PlanResult{}, err
	}
	result.Scenario = s.Name
	return result, nil
}
