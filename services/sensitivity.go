// ABOUTME: Fixed four-scenario sensitivity table for pipeline risk
// ABOUTME: Pure re-derivations from decomposed revenue, independent of the LP

package services

import (
	"github.com/markalston/gtm-planner/models"
)

// Sensitivity computes the fixed risk table: required pipeline when
// each segment's win rate drops 10%, and when each segment's ASP rises
// 5% (reducing the volume needed to hit the same revenue). The rows are
// re-derivations from the decomposition only and never depend on the
// LP result.
func Sensitivity(derived models.DerivedRevenue, a models.AssumptionSet) []models.SensitivityRow {
	return []models.SensitivityRow{
		{Variable: "Comm Win Rate -10%", Pipeline: derived.CommNewARR / (a.CommWinRate * 0.9)},
		{Variable: "Ent Win Rate -10%", Pipeline: derived.EntNewARR / (a.EntWinRate * 0.9)},
		{Variable: "ASP +5% (Comm)", Pipeline: derived.CommNewARR * 0.95 / a.CommWinRate},
		{Variable: "ASP +5% (Ent)", Pipeline: derived.EntNewARR * 0.95 / a.EntWinRate},
	}
}
