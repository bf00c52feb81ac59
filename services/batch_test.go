// ABOUTME: Tests for concurrent scenario batch evaluation
// ABOUTME: Validates result ordering, input independence, and error propagation

package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/markalston/gtm-planner/models"
)

func TestRunScenarios_OrderedResults(t *testing.T) {
	p := NewPlanner()
	scenarios := models.PresetScenarios()

	results, err := p.RunScenarios(context.Background(), scenarios)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != len(scenarios) {
		t.Fatalf("Expected %d results, got %d", len(scenarios), len(results))
	}
	for i, s := range scenarios {
		if results[i].Scenario != s.Name {
			t.Errorf("Result %d: expected scenario %q, got %q", i, s.Name, results[i].Scenario)
		}
	}
}

func TestRunScenarios_IndependentRuns(t *testing.T) {
	// Two scenarios with different inputs must not bleed into each
	// other; results equal what a standalone run produces.
	optimistic := models.Scenario{
		Name:        "Optimistic",
		Assumptions: models.DefaultAssumptions(),
		Constraints: models.DefaultConstraints(),
	}
	optimistic.Assumptions.NDRPercent = 160

	tight := models.Scenario{
		Name:        "Tight",
		Assumptions: models.DefaultAssumptions(),
		Constraints: models.DefaultConstraints(),
	}
	tight.Constraints.BDRBudget = 0

	p := NewPlanner()
	results, err := p.RunScenarios(context.Background(), []models.Scenario{optimistic, tight})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, s := range []models.Scenario{optimistic, tight} {
		standalone, err := p.PlanScenario(s)
		if err != nil {
			t.Fatalf("standalone run failed: %v", err)
		}
		if !reflect.DeepEqual(results[i], standalone) {
			t.Errorf("Batch result %d differs from standalone run", i)
		}
	}
}

func TestRunScenarios_InvalidAssumptionFailsBatch(t *testing.T) {
	bad := models.Scenario{
		Name:        "Broken",
		Assumptions: models.DefaultAssumptions(),
		Constraints: models.DefaultConstraints(),
	}
	bad.Assumptions.EntWinRate = -1

	scenarios := append(models.PresetScenarios(), bad)
	_, err := NewPlanner().RunScenarios(context.Background(), scenarios)
	if !errors.Is(err, ErrInvalidAssumption) {
		t.Errorf("expected ErrInvalidAssumption, got %v", err)
	}
}

func TestRunScenarios_InfeasibleIsNotABatchError(t *testing.T) {
	infeasible := models.Scenario{
		Name:        "Overconstrained",
		Assumptions: models.DefaultAssumptions(),
		Constraints: models.DefaultConstraints(),
	}
	infeasible.Constraints.MaxTotalAE = 1

	results, err := NewPlanner().RunScenarios(context.Background(), []models.Scenario{infeasible})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !results[0].Infeasible {
		t.Error("expected infeasible marker on overconstrained scenario")
	}
}
