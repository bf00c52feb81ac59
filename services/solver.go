// ABOUTME: Headcount LP solver for GTM planning
// ABOUTME: Builds a feasibility LP from derived revenue and hiring constraints

package services

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/markalston/gtm-planner/models"
)

// monthsPerYear annualizes the monthly BDR meeting rates.
const monthsPerYear = 12

// HeadcountSolver finds a headcount mix satisfying revenue coverage at
// the configured quotas, subject to hiring caps and the BDR budget.
//
// The problem is a pure feasibility LP: the objective vector is zero
// and the solver is used for its phase-one feasibility search. The
// general form
//
//	ae_comm * comm_quota = comm_new_arr
//	ae_ent  * ent_quota  = ent_new_arr
//	ams     * am_quota   = expansion_arr
//	ae_comm + ae_ent   <= max_total_ae
//	bdr_comm + bdr_ent <= bdr_budget
//	ae_comm >= min_comm_ae, ae_ent >= min_ent_ae, others >= 0
//
// is reduced to standard form (Ax = b, x >= 0) by shifting the two AE
// variables by their lower bounds and adding one slack variable per
// inequality. gonum's simplex then reports primal feasibility
// explicitly via lp.ErrInfeasible, and its pivoting is deterministic
// for a fixed gonum version, so identical inputs yield identical
// solutions.
type HeadcountSolver struct{}

// NewHeadcountSolver creates a new solver
func NewHeadcountSolver() *HeadcountSolver {
	return &HeadcountSolver{}
}

// Solve returns a feasible headcount mix or an InfeasibleError. The
// fractional LP values are kept as the source of truth; rounded display
// headcounts (round half up, math.Round on non-negative values) and the
// annualized meeting metrics are derived on success.
func (s *HeadcountSolver) Solve(derived models.DerivedRevenue, a models.AssumptionSet, c models.Constraints) (models.HeadcountSolution, error) {
	quotas := []struct {
		name  string
		value float64
	}{
		{"comm_quota", a.CommQuota},
		{"ent_quota", a.EntQuota},
		{"am_quota", a.AMQuota},
	}
	for _, q := range quotas {
		if math.IsNaN(q.value) || q.value <= 0 {
			return models.HeadcountSolution{}, &InvalidAssumptionError{
				Reason: fmt.Sprintf("%s must be positive, got %v", q.name, q.value),
			}
		}
	}

	// Standard-form variable order:
	// [ae_comm-min, ae_ent-min, ams, bdr_comm, bdr_ent, slack_ae, slack_bdr]
	const nVars = 7
	obj := make([]float64, nVars)

	A := mat.NewDense(5, nVars, nil)
	A.Set(0, 0, a.CommQuota)
	A.Set(1, 1, a.EntQuota)
	A.Set(2, 2, a.AMQuota)
	A.Set(3, 0, 1)
	A.Set(3, 1, 1)
	A.Set(3, 5, 1)
	A.Set(4, 3, 1)
	A.Set(4, 4, 1)
	A.Set(4, 6, 1)

	b := []float64{
		derived.CommNewARR - a.CommQuota*c.MinCommAE,
		derived.EntNewARR - a.EntQuota*c.MinEntAE,
		derived.ExpansionARR,
		c.MaxTotalAE - c.MinCommAE - c.MinEntAE,
		c.BDRBudget,
	}

	_, x, err := lp.Simplex(obj, A, b, 0, nil)
	if err != nil {
		if errors.Is(err, lp.ErrInfeasible) {
			return models.HeadcountSolution{}, &InfeasibleError{
				Reason: "no headcount mix satisfies the revenue coverage and hiring constraints; adjust constraints",
			}
		}
		return models.HeadcountSolution{}, fmt.Errorf("headcount solve failed: %w", err)
	}

	sol := models.HeadcountSolution{
		AEComm:  x[0] + c.MinCommAE,
		AEEnt:   x[1] + c.MinEntAE,
		AMs:     x[2],
		BDRComm: x[3],
		BDREnt:  x[4],
	}
	sol.Rounded = models.RoundedHeadcount{
		AEComm:  int(math.Round(sol.AEComm)),
		AEEnt:   int(math.Round(sol.AEEnt)),
		AMs:     int(math.Round(sol.AMs)),
		BDRComm: int(math.Round(sol.BDRComm)),
		BDREnt:  int(math.Round(sol.BDREnt)),
	}
	sol.TotalBDRMeetings = sol.BDRComm*c.BDRMeetingsComm*monthsPerYear +
		sol.BDREnt*c.BDRMeetingsEnt*monthsPerYear
	sol.SelfGenMeetings = derived.TotalMeetingsNeeded - sol.TotalBDRMeetings

	return sol, nil
}
