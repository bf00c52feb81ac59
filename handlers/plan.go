// ABOUTME: HTTP handler for ad-hoc planning runs
// ABOUTME: Accepts assumptions and constraints, returns the full plan result

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/markalston/gtm-planner/models"
	"github.com/markalston/gtm-planner/services"
)

// PlanRequest is the body for POST /api/v1/plan.
type PlanRequest struct {
	Scenario    string               `json:"scenario,omitempty"`
	Assumptions models.AssumptionSet `json:"assumptions"`
	Constraints models.Constraints   `json:"constraints"`
}

// Plan runs one planning pass. Invalid assumptions are a 400; an
// infeasible solve is a 200 whose body carries the infeasible marker
// and "adjust constraints" guidance, because it is a legitimate
// planning outcome rather than a request error.
func (h *Handler) Plan(w http.ResponseWriter, r *http.Request) {
	// MaxBytesReader only triggers on read, so decode immediately
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	var req PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			h.writeError(w, "Request body too large", http.StatusBadRequest)
			return
		}
		h.writeError(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if err := req.Constraints.Validate(); err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.planner.Plan(req.Assumptions, req.Constraints)
	if err != nil {
		if errors.Is(err, services.ErrInvalidAssumption) {
			h.writeError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.writeError(w, "Planning failed", http.StatusInternalServerError)
		return
	}
	result.Scenario = req.Scenario

	h.writeJSON(w, http.StatusOK, result)
}
