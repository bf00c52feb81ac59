// ABOUTME: HTTP handlers for preset scenarios
// ABOUTME: Lists presets and serves their plans with TTL caching

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/markalston/gtm-planner/models"
)

const scenarioPlanCacheKey = "scenarios:plan"

// ListScenarios returns the named preset scenarios with their inputs.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, models.PresetScenarios())
}

// PlanScenarios evaluates every preset scenario. Presets are fixed
// inputs, so results are cached at this layer; the planner itself stays
// stateless and recomputes on every invocation.
func (h *Handler) PlanScenarios(w http.ResponseWriter, r *http.Request) {
	if cached, found := h.scenarios.Get(scenarioPlanCacheKey); found {
		slog.Debug("Scenario plan cache hit")
		h.writeJSON(w, http.StatusOK, cached)
		return
	}

	results, err := h.planner.RunScenarios(r.Context(), models.PresetScenarios())
	if err != nil {
		h.writeError(w, "Scenario planning failed", http.StatusInternalServerError)
		return
	}

	h.scenarios.Set(scenarioPlanCacheKey, results)
	h.writeJSON(w, http.StatusOK, results)
}
