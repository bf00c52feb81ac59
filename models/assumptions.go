// ABOUTME: Input records for GTM planning runs
// ABOUTME: Assumption set, hiring constraints, and named scenario presets

package models

import (
	"fmt"
	"math"
)

// AssumptionSet holds the business assumptions for a single planning run.
// It is immutable per run; every run recomputes from scratch.
type AssumptionSet struct {
	TargetARR   float64 `json:"target_arr"`   // Revenue goal for the planning year
	StartingARR float64 `json:"starting_arr"` // ARR entering the year
	NDRPercent  float64 `json:"ndr_percent"`  // Net dollar retention, e.g. 145

	CommASP float64 `json:"comm_asp"` // Commercial average selling price
	EntASP  float64 `json:"ent_asp"`  // Enterprise average selling price

	CommWinRate  float64 `json:"comm_win_rate"`   // (0,1]
	EntWinRate   float64 `json:"ent_win_rate"`    // (0,1]
	MtgToSQORate float64 `json:"mtg_to_sqo_rate"` // Meeting -> SQO conversion, (0,1]

	CommQuota float64 `json:"comm_quota"` // Annual quota per commercial AE
	EntQuota  float64 `json:"ent_quota"`  // Annual quota per enterprise AE
	AMQuota   float64 `json:"am_quota"`   // Expansion revenue per AM
}

// Constraints holds the hiring limits applied to the headcount solve.
type Constraints struct {
	MinCommAE  float64 `json:"min_comm_ae"`  // Lower bound on commercial AEs
	MinEntAE   float64 `json:"min_ent_ae"`   // Lower bound on enterprise AEs
	MaxTotalAE float64 `json:"max_total_ae"` // Upper bound on comm+ent AEs

	BDRMeetingsComm float64 `json:"bdr_meetings_comm"` // Meetings/month per commercial BDR
	BDRMeetingsEnt  float64 `json:"bdr_meetings_ent"`  // Meetings/month per enterprise BDR
	BDRBudget       float64 `json:"bdr_budget"`        // Max total BDR headcount
}

// Scenario is a named set of planning inputs.
type Scenario struct {
	Name        string        `json:"name"`
	Assumptions AssumptionSet `json:"assumptions"`
	Constraints Constraints   `json:"constraints"`
}

// Validate checks the bounds documented on each field. Rates must be in
// (0,1]; every other assumption must be a positive finite number.
func (a AssumptionSet) Validate() error {
	positives := []struct {
		name  string
		value float64
	}{
		{"target_arr", a.TargetARR},
		{"starting_arr", a.StartingARR},
		{"ndr_percent", a.NDRPercent},
		{"comm_asp", a.CommASP},
		{"ent_asp", a.EntASP},
		{"comm_quota", a.CommQuota},
		{"ent_quota", a.EntQuota},
		{"am_quota", a.AMQuota},
	}
	for _, p := range positives {
		if err := checkPositive(p.name, p.value); err != nil {
			return err
		}
	}

	rates := []struct {
		name  string
		value float64
	}{
		{"comm_win_rate", a.CommWinRate},
		{"ent_win_rate", a.EntWinRate},
		{"mtg_to_sqo_rate", a.MtgToSQORate},
	}
	for _, r := range rates {
		if err := checkPositive(r.name, r.value); err != nil {
			return err
		}
		if r.value > 1 {
			return fmt.Errorf("%s must be in (0,1], got %v", r.name, r.value)
		}
	}

	return nil
}

// Validate checks constraint bounds: non-negative minimums and budget,
// positive BDR meeting rates. Called by the presentation layer before a
// solve is attempted.
func (c Constraints) Validate() error {
	nonNegatives := []struct {
		name  string
		value float64
	}{
		{"min_comm_ae", c.MinCommAE},
		{"min_ent_ae", c.MinEntAE},
		{"max_total_ae", c.MaxTotalAE},
		{"bdr_budget", c.BDRBudget},
	}
	for _, n := range nonNegatives {
		if math.IsNaN(n.value) || math.IsInf(n.value, 0) {
			return fmt.Errorf("%s must be a finite number", n.name)
		}
		if n.value < 0 {
			return fmt.Errorf("%s must be non-negative, got %v", n.name, n.value)
		}
	}

	if err := checkPositive("bdr_meetings_comm", c.BDRMeetingsComm); err != nil {
		return err
	}
	return checkPositive("bdr_meetings_ent", c.BDRMeetingsEnt)
}

func checkPositive(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%s must be a finite number", name)
	}
	if value <= 0 {
		return fmt.Errorf("%s must be positive, got %v", name, value)
	}
	return nil
}

// DefaultAssumptions returns the baseline planning assumptions.
func DefaultAssumptions() AssumptionSet {
	return AssumptionSet{
		TargetARR:    28_000_000,
		StartingARR:  12_700_000,
		NDRPercent:   145,
		CommASP:      15_000,
		EntASP:       100_000,
		CommWinRate:  0.55,
		EntWinRate:   0.40,
		MtgToSQORate: 0.33,
		CommQuota:    600_000,
		EntQuota:     600_000,
		AMQuota:      750_000,
	}
}

// DefaultConstraints returns the baseline hiring constraints.
func DefaultConstraints() Constraints {
	return Constraints{
		MinCommAE:       2,
		MinEntAE:        1,
		MaxTotalAE:      20,
		BDRMeetingsComm: 25,
		BDRMeetingsEnt:  15,
		BDRBudget:       8,
	}
}

// PresetScenarios returns the named scenarios offered by the planner.
// The presets share the baseline inputs; the name labels the run.
func PresetScenarios() []Scenario {
	names := []string{"Base", "Optimistic", "Conservative"}
	scenarios := make([]Scenario, 0, len(names))
	for _, name := range names {
		scenarios = append(scenarios, Scenario{
			Name:        name,
			Assumptions: DefaultAssumptions(),
			Constraints: DefaultConstraints(),
		})
	}
	return scenarios
}
