// ABOUTME: Declarative route table for API endpoints
// ABOUTME: Defines all routes with their HTTP methods and handlers

package handlers

import (
	"net/http"

	"github.com/markalston/gtm-planner/middleware"
)

// Route defines an API endpoint with its HTTP method and handler.
type Route struct {
	Method  string           // HTTP method (GET, POST, etc.)
	Path    string           // URL path (e.g., "/api/v1/health")
	Handler http.HandlerFunc // Handler function
}

// Routes returns all API routes for registration.
func (h *Handler) Routes() []Route {
	return []Route{
		// Health
		{Method: http.MethodGet, Path: "/api/v1/health", Handler: h.Health},

		// Planning
		{Method: http.MethodPost, Path: "/api/v1/plan", Handler: h.Plan},

		// Preset scenarios
		{Method: http.MethodGet, Path: "/api/v1/scenarios", Handler: h.ListScenarios},
		{Method: http.MethodGet, Path: "/api/v1/scenarios/plan", Handler: h.PlanScenarios},
	}
}

// Mux registers all routes on a new ServeMux with CORS and request
// logging applied. CORS preflight requests short-circuit before the
// method check so OPTIONS never hits a handler.
func (h *Handler) Mux(allowedOrigins []string) *http.ServeMux {
	mux := http.NewServeMux()
	for _, route := range h.Routes() {
		handler := requireMethod(route.Method, route.Handler)
		mux.HandleFunc(route.Path, middleware.CORS(allowedOrigins, middleware.LogRequest(handler)))
	}
	return mux
}

func requireMethod(method string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		next(w, r)
	}
}
