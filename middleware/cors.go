// ABOUTME: CORS middleware for API cross-origin requests
// ABOUTME: Handles preflight OPTIONS and applies the configured origin allowlist

package middleware

import "net/http"

// CORS returns middleware that adds CORS headers for origins on the
// allowlist. An empty allowlist blocks all cross-origin requests;
// a single "*" entry allows any origin. OPTIONS preflights return
// 200 OK without calling the wrapped handler.
func CORS(allowedOrigins []string, next http.HandlerFunc) http.HandlerFunc {
	allowAll := len(allowedOrigins) == 1 && allowedOrigins[0] == "*"
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}

	return func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && (allowAll || allowed[origin]) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.Header().Set("Vary", "Origin")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}
