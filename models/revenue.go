// ABOUTME: Derived revenue and pipeline records produced by decomposition
// ABOUTME: Sensitivity rows and pipeline breakdown for charting

package models

// DerivedRevenue is the output of revenue decomposition: how much new
// and expansion revenue is needed, and the pipeline/meeting volume that
// implies. Values are never clamped; a negative NewLogoARRNeeded (the
// retention engine alone exceeds the target) propagates through the
// pipeline figures and is interpreted by the caller.
type DerivedRevenue struct {
	ExpansionARR     float64 `json:"expansion_arr"`
	NewLogoARRNeeded float64 `json:"new_logo_arr_needed"`

	CommNewARR float64 `json:"comm_new_arr"` // 60% of new-logo ARR
	EntNewARR  float64 `json:"ent_new_arr"`  // 40% of new-logo ARR

	CommPipeline float64 `json:"comm_pipeline"`
	EntPipeline  float64 `json:"ent_pipeline"`

	CommMeetingsNeeded  float64 `json:"comm_meetings_needed"`
	EntMeetingsNeeded   float64 `json:"ent_meetings_needed"`
	TotalMeetingsNeeded float64 `json:"total_meetings_needed"`
}

// PipelineBreakdown returns the per-segment pipeline pairs for charting.
func (d DerivedRevenue) PipelineBreakdown() []PipelineSegment {
	return []PipelineSegment{
		{Segment: "Commercial", Pipeline: d.CommPipeline},
		{Segment: "Enterprise", Pipeline: d.EntPipeline},
	}
}

// PipelineSegment pairs a segment name with its required pipeline.
type PipelineSegment struct {
	Segment  string  `json:"segment"`
	Pipeline float64 `json:"pipeline"`
}

// SensitivityRow is one row of the fixed four-scenario risk table.
type SensitivityRow struct {
	Variable string  `json:"variable"`
	Pipeline float64 `json:"pipeline_impact"`
}
