// ABOUTME: Headcount solution records produced by the LP solve
// ABOUTME: Fractional LP values, rounded display headcounts, and plan results

package models

// HeadcountSolution is a feasible headcount mix. The five fractional
// values are the LP solution and remain the source of truth for the
// meeting math; Rounded carries the display headcounts.
type HeadcountSolution struct {
	AEComm  float64 `json:"ae_comm"`
	AEEnt   float64 `json:"ae_ent"`
	AMs     float64 `json:"ams"`
	BDRComm float64 `json:"bdr_comm"`
	BDREnt  float64 `json:"bdr_ent"`

	Rounded RoundedHeadcount `json:"rounded"`

	// TotalBDRMeetings is annualized from the fractional BDR counts.
	TotalBDRMeetings float64 `json:"total_bdr_meetings"`
	// SelfGenMeetings may be negative when BDR capacity exceeds total
	// meeting need; it is reported as-is, never clamped.
	SelfGenMeetings float64 `json:"self_gen_meetings"`
}

// RoundedHeadcount holds display headcounts, rounded half up
// (math.Round on non-negative values).
type RoundedHeadcount struct {
	AEComm  int `json:"ae_comm"`
	AEEnt   int `json:"ae_ent"`
	AMs     int `json:"ams"`
	BDRComm int `json:"bdr_comm"`
	BDREnt  int `json:"bdr_ent"`
}

// PlanResult is the full output of a planning run. When the solve is
// infeasible, Solution is nil, Infeasible is true, and the derived
// revenue, sensitivity table, and pipeline breakdown are still present
// (they depend only on the decomposition).
type PlanResult struct {
	Scenario    string        `json:"scenario,omitempty"`
	Assumptions AssumptionSet `json:"assumptions"`
	Constraints Constraints   `json:"constraints"`

	Derived     DerivedRevenue     `json:"derived"`
	Solution    *HeadcountSolution `json:"solution,omitempty"`
	Infeasible  bool               `json:"infeasible"`
	Message     string             `json:"message,omitempty"`
	Sensitivity []SensitivityRow   `json:"sensitivity"`
	Breakdown   []PipelineSegment  `json:"pipeline_breakdown"`
}

// ErrorResponse is the JSON error envelope returned by the API.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}
