package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/theopenlane/mailmeter/config"
	"github.com/theopenlane/mailmeter/internal/api"
)

// serveCmd is the cobra command that starts the mailmeter API server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the mailmeter api server",
	Run: func(cmd *cobra.Command, _ []string) {
		err := serve(cmd.Context())
		cobra.CheckErr(err)
	},
}

// init registers the serve command and its flags on the root command
func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.PersistentFlags().String("port", "", "listen port, overrides MAILMETER_PORT")
}

// serve initializes dependencies and starts the mailmeter API server
func serve(ctx context.Context) error {
	cfg := config.New()

	if port := k.String("port"); port != "" {
		cfg.Port = port
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	orchestrator := setupOrchestrator(cfg)

	handler := api.NewRouter(api.RouterConfig{
		Auditor:        orchestrator,
		Thresholds:     buildThresholds(cfg),
		MaxBodySize:    cfg.MaxBodySize,
		RequestTimeout: cfg.WriteTimeout,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort("", cfg.Port),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown error")
		}
	}()

	log.Info().Str("port", cfg.Port).Int("workers", cfg.Workers).Msg("starting mailmeter service")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}

	return nil
}
