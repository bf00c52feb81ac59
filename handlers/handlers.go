// ABOUTME: HTTP handlers for the GTM planner API
// ABOUTME: Handler struct wiring config, planner services, and the scenario cache

package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/markalston/gtm-planner/cache"
	"github.com/markalston/gtm-planner/config"
	"github.com/markalston/gtm-planner/models"
	"github.com/markalston/gtm-planner/services"
)

// maxRequestBodySize limits JSON request bodies to 1MB to prevent DOS attacks
const maxRequestBodySize = 1 << 20 // 1MB

type Handler struct {
	cfg       *config.Config
	planner   *services.Planner
	scenarios *cache.Cache[[]models.PlanResult]
}

func NewHandler(cfg *config.Config) *Handler {
	ttl := 300 * time.Second
	if cfg != nil {
		ttl = time.Duration(cfg.ScenarioCacheTTL) * time.Second
	}
	return &Handler{
		cfg:       cfg,
		planner:   services.NewPlanner(),
		scenarios: cache.New[[]models.PlanResult](ttl),
	}
}

// Health returns API health status.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(models.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
