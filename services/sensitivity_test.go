// ABOUTME: Tests for the fixed sensitivity table
// ABOUTME: Validates the four rows, their direction, and LP independence

package services

import (
	"math"
	"testing"

	"github.com/markalston/gtm-planner/models"
)

func TestSensitivity_RowsAndValues(t *testing.T) {
	a := models.DefaultAssumptions()
	derived := mustDecompose(t, a)

	rows := Sensitivity(derived, a)
	if len(rows) != 4 {
		t.Fatalf("Expected 4 sensitivity rows, got %d", len(rows))
	}

	wantNames := []string{
		"Comm Win Rate -10%",
		"Ent Win Rate -10%",
		"ASP +5% (Comm)",
		"ASP +5% (Ent)",
	}
	for i, want := range wantNames {
		if rows[i].Variable != want {
			t.Errorf("Row %d: expected %q, got %q", i, want, rows[i].Variable)
		}
	}

	if math.Abs(rows[0].Pipeline-derived.CommNewARR/(a.CommWinRate*0.9)) > epsilon {
		t.Errorf("Comm win rate row mismatch: got %v", rows[0].Pipeline)
	}
	if math.Abs(rows[1].Pipeline-derived.EntNewARR/(a.EntWinRate*0.9)) > epsilon {
		t.Errorf("Ent win rate row mismatch: got %v", rows[1].Pipeline)
	}
	if math.Abs(rows[2].Pipeline-derived.CommNewARR*0.95/a.CommWinRate) > epsilon {
		t.Errorf("Comm ASP row mismatch: got %v", rows[2].Pipeline)
	}
	if math.Abs(rows[3].Pipeline-derived.EntNewARR*0.95/a.EntWinRate) > epsilon {
		t.Errorf("Ent ASP row mismatch: got %v", rows[3].Pipeline)
	}
}

func TestSensitivity_Direction(t *testing.T) {
	// A lower win rate always inflates required pipeline; a 5% ASP
	// uplift always deflates it.
	a := models.DefaultAssumptions()
	derived := mustDecompose(t, a)
	rows := Sensitivity(derived, a)

	if rows[0].Pipeline <= derived.CommPipeline {
		t.Errorf("comm win rate -10%% should exceed base pipeline %v, got %v",
			derived.CommPipeline, rows[0].Pipeline)
	}
	if rows[1].Pipeline <= derived.EntPipeline {
		t.Errorf("ent win rate -10%% should exceed base pipeline %v, got %v",
			derived.EntPipeline, rows[1].Pipeline)
	}
	if rows[2].Pipeline >= derived.CommPipeline {
		t.Errorf("comm ASP +5%% should reduce base pipeline %v, got %v",
			derived.CommPipeline, rows[2].Pipeline)
	}
	if rows[3].Pipeline >= derived.EntPipeline {
		t.Errorf("ent ASP +5%% should reduce base pipeline %v, got %v",
			derived.EntPipeline, rows[3].Pipeline)
	}
}
