// ABOUTME: Tests for the headcount LP solver
// ABOUTME: Validates feasibility, infeasibility, bounds, rounding, and determinism

package services

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/markalston/gtm-planner/models"
)

// solveTol absorbs LP arithmetic noise when comparing solution values.
const solveTol = 1e-6

func mustDecompose(t *testing.T, a models.AssumptionSet) models.DerivedRevenue {
	t.Helper()
	derived, err := NewRevenueDecomposer().Decompose(a)
	if err != nil {
		t.Fatalf("decompose failed: %v", err)
	}
	return derived
}

func TestSolve_BaselineFeasible(t *testing.T) {
	// With quota 600k, comm ARR of 5.751M requires 9.585 commercial AEs
	// and ent ARR of 3.834M requires 6.39 enterprise AEs; expansion of
	// 5.715M at an AM quota of 750k requires 7.62 AMs. The AE total of
	// 15.975 fits under the cap of 20.
	a := models.DefaultAssumptions()
	c := models.DefaultConstraints()
	derived := mustDecompose(t, a)

	sol, err := NewHeadcountSolver().Solve(derived, a, c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(sol.AEComm-9.585) > solveTol {
		t.Errorf("Expected ae_comm 9.585, got %v", sol.AEComm)
	}
	if math.Abs(sol.AEEnt-6.39) > solveTol {
		t.Errorf("Expected ae_ent 6.39, got %v", sol.AEEnt)
	}
	if math.Abs(sol.AMs-7.62) > solveTol {
		t.Errorf("Expected ams 7.62, got %v", sol.AMs)
	}

	if sol.Rounded.AEComm != 10 {
		t.Errorf("Expected rounded ae_comm 10, got %d", sol.Rounded.AEComm)
	}
	if sol.Rounded.AEEnt != 6 {
		t.Errorf("Expected rounded ae_ent 6, got %d", sol.Rounded.AEEnt)
	}
	if sol.Rounded.AMs != 8 {
		t.Errorf("Expected rounded ams 8, got %d", sol.Rounded.AMs)
	}

	// The BDR split is solver-chosen; only the budget and sign bounds
	// are part of the contract.
	if sol.BDRComm < -solveTol || sol.BDREnt < -solveTol {
		t.Errorf("BDR counts must be non-negative, got %v / %v", sol.BDRComm, sol.BDREnt)
	}
	if sol.BDRComm+sol.BDREnt > c.BDRBudget+solveTol {
		t.Errorf("BDR total %v exceeds budget %v", sol.BDRComm+sol.BDREnt, c.BDRBudget)
	}

	wantBDRMeetings := sol.BDRComm*c.BDRMeetingsComm*12 + sol.BDREnt*c.BDRMeetingsEnt*12
	if math.Abs(sol.TotalBDRMeetings-wantBDRMeetings) > solveTol {
		t.Errorf("Expected total_bdr_meetings %v, got %v", wantBDRMeetings, sol.TotalBDRMeetings)
	}
	if math.Abs(sol.SelfGenMeetings-(derived.TotalMeetingsNeeded-sol.TotalBDRMeetings)) > solveTol {
		t.Errorf("self_gen_meetings must equal total needed minus BDR-sourced, got %v", sol.SelfGenMeetings)
	}
}

func TestSolve_RoundsHalfUp(t *testing.T) {
	// Target tuned so comm new ARR is exactly 5.7M: 9.5 commercial AEs
	// at a 600k quota. The documented rounding rule is round half up
	// (math.Round), so the display headcount is 10, not 9.
	a := models.DefaultAssumptions()
	a.TargetARR = 27_915_000 // 12.7M + 5.715M expansion + 9.5M new logo
	c := models.DefaultConstraints()
	derived := mustDecompose(t, a)

	if math.Abs(derived.CommNewARR-5_700_000) > epsilon {
		t.Fatalf("test setup: expected comm_new_arr 5700000, got %v", derived.CommNewARR)
	}

	sol, err := NewHeadcountSolver().Solve(derived, a, c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(sol.AEComm-9.5) > solveTol {
		t.Fatalf("Expected ae_comm 9.5, got %v", sol.AEComm)
	}
	if sol.Rounded.AEComm != 10 {
		t.Errorf("Expected 9.5 to round half up to 10, got %d", sol.Rounded.AEComm)
	}
}

func TestSolve_MinimumsExceedingCapIsInfeasible(t *testing.T) {
	// min_comm_ae + min_ent_ae > max_total_ae can never be satisfied.
	a := models.DefaultAssumptions()
	c := models.DefaultConstraints()
	c.MinCommAE = 12
	c.MinEntAE = 9
	c.MaxTotalAE = 20
	derived := mustDecompose(t, a)

	_, err := NewHeadcountSolver().Solve(derived, a, c)
	if err == nil {
		t.Fatal("expected infeasible solve, got nil error")
	}
	if !errors.Is(err, ErrInfeasible) {
		t.Errorf("expected ErrInfeasible, got %v", err)
	}
	var infeasible *InfeasibleError
	if !errors.As(err, &infeasible) {
		t.Errorf("expected *InfeasibleError, got %T", err)
	}
}

func TestSolve_AECapBelowRequiredHeadcountIsInfeasible(t *testing.T) {
	// The equalities demand 15.975 AEs in total; a cap of 12 leaves no
	// feasible point even though the per-segment minimums are met.
	a := models.DefaultAssumptions()
	c := models.DefaultConstraints()
	c.MaxTotalAE = 12
	derived := mustDecompose(t, a)

	_, err := NewHeadcountSolver().Solve(derived, a, c)
	if !errors.Is(err, ErrInfeasible) {
		t.Errorf("expected ErrInfeasible, got %v", err)
	}
}

func TestSolve_NegativeExpansionIsInfeasible(t *testing.T) {
	// NDR below 100% makes expansion ARR negative; the AM equality then
	// demands a negative headcount, which the bounds forbid.
	a := models.DefaultAssumptions()
	a.NDRPercent = 90
	c := models.DefaultConstraints()
	derived := mustDecompose(t, a)

	if derived.ExpansionARR >= 0 {
		t.Fatalf("test setup: expected negative expansion, got %v", derived.ExpansionARR)
	}

	_, err := NewHeadcountSolver().Solve(derived, a, c)
	if !errors.Is(err, ErrInfeasible) {
		t.Errorf("expected ErrInfeasible, got %v", err)
	}
}

func TestSolve_ZeroBDRBudgetForcesZeroBDRs(t *testing.T) {
	a := models.DefaultAssumptions()
	c := models.DefaultConstraints()
	c.BDRBudget = 0
	derived := mustDecompose(t, a)

	sol, err := NewHeadcountSolver().Solve(derived, a, c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(sol.BDRComm) > solveTol || math.Abs(sol.BDREnt) > solveTol {
		t.Errorf("Expected zero BDRs, got %v / %v", sol.BDRComm, sol.BDREnt)
	}
	if math.Abs(sol.TotalBDRMeetings) > solveTol {
		t.Errorf("Expected zero BDR meetings, got %v", sol.TotalBDRMeetings)
	}
	if math.Abs(sol.SelfGenMeetings-derived.TotalMeetingsNeeded) > solveTol {
		t.Errorf("Expected self_gen to equal total meetings %v, got %v",
			derived.TotalMeetingsNeeded, sol.SelfGenMeetings)
	}
}

func TestSolve_NonPositiveQuotaIsInvalidAssumption(t *testing.T) {
	a := models.DefaultAssumptions()
	derived := mustDecompose(t, a)
	a.EntQuota = 0

	_, err := NewHeadcountSolver().Solve(derived, a, models.DefaultConstraints())
	if !errors.Is(err, ErrInvalidAssumption) {
		t.Errorf("expected ErrInvalidAssumption for zero quota, got %v", err)
	}
}

func TestSolve_Deterministic(t *testing.T) {
	// The zero-objective feasibility solve must return the identical
	// point for identical inputs; reproducibility of reports depends on
	// it.
	a := models.DefaultAssumptions()
	c := models.DefaultConstraints()
	derived := mustDecompose(t, a)
	solver := NewHeadcountSolver()

	first, err := solver.Solve(derived, a, c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := solver.Solve(derived, a, c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("solve is not deterministic:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
