// ABOUTME: Revenue decomposition calculator for GTM planning
// ABOUTME: Maps assumptions to expansion/new-logo ARR, pipeline, and meeting volume

package services

import (
	"github.com/markalston/gtm-planner/models"
)

const (
	// CommSplit and EntSplit divide new-logo ARR between segments.
	// Fixed policy constants, not configurable.
	CommSplit = 0.6
	EntSplit  = 0.4
)

// RevenueDecomposer derives revenue, pipeline, and meeting requirements
// from a set of planning assumptions.
type RevenueDecomposer struct{}

// NewRevenueDecomposer creates a new decomposer
func NewRevenueDecomposer() *RevenueDecomposer {
	return &RevenueDecomposer{}
}

// Decompose maps assumptions to a DerivedRevenue record. Returns an
// InvalidAssumptionError when any field violates its documented bounds;
// rate guards run before any division so a zero rate never propagates
// as Inf.
//
// Negative figures are never clamped: when retention alone exceeds the
// target, NewLogoARRNeeded and the downstream pipeline values go
// negative and the caller interprets the sign.
func (d *RevenueDecomposer) Decompose(a models.AssumptionSet) (models.DerivedRevenue, error) {
	if err := a.Validate(); err != nil {
		return models.DerivedRevenue{}, &InvalidAssumptionError{Reason: err.Error()}
	}

	expansionARR := a.StartingARR * (a.NDRPercent/100 - 1)
	newLogoARR := a.TargetARR - a.StartingARR - expansionARR
	commNewARR := newLogoARR * CommSplit
	entNewARR := newLogoARR * EntSplit

	commPipeline := commNewARR / a.CommWinRate
	entPipeline := entNewARR / a.EntWinRate
	commMeetings := commPipeline / a.MtgToSQORate
	entMeetings := entPipeline / a.MtgToSQORate

	return models.DerivedRevenue{
		ExpansionARR:        expansionARR,
		NewLogoARRNeeded:    newLogoARR,
		CommNewARR:          commNewARR,
		EntNewARR:           entNewARR,
		CommPipeline:        commPipeline,
		EntPipeline:         entPipeline,
		CommMeetingsNeeded:  commMeetings,
		EntMeetingsNeeded:   entMeetings,
		TotalMeetingsNeeded: commMeetings + entMeetings,
	}, nil
}
