// ABOUTME: HTTP server command
// ABOUTME: Serves the planning API with logging and CORS middleware

package cmd

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/markalston/gtm-planner/config"
	"github.com/markalston/gtm-planner/handlers"
	"github.com/markalston/gtm-planner/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the planning API server",
	Long: `Start the HTTP API. Configuration is read from the environment
(and an optional .env file): PORT, CORS_ALLOWED_ORIGINS, SCENARIO_CACHE_TTL.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Initialize structured logging
		logger.Init()

		// Load configuration
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		slog.Info("Starting GTM Planner API")
		slog.Info("Scenario cache configured", "ttl", cfg.ScenarioCacheTTL)

		// Initialize handlers and routes
		h := handlers.NewHandler(cfg)
		mux := h.Mux(cfg.CORSAllowedOrigins)

		// Start server
		addr := ":" + cfg.Port
		slog.Info("Server listening", "addr", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
