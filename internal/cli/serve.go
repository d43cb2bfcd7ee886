package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"volunteermatch/config"
	"volunteermatch/internal/adapters/auth"
	delivery "volunteermatch/internal/delivery/http"
	"volunteermatch/internal/delivery/http/controllers"
	"volunteermatch/internal/delivery/http/middleware"
)

const shutdownTimeout = 15 * time.Second

func newServeCommand(deps func() (*config.Config, *slog.Logger)) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger := deps()
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer a.Close()

			router := delivery.NewRouter(delivery.Controllers{
				Matches:     controllers.NewMatchController(logger, a.matching, a.volunteers),
				Invitations: controllers.NewInvitationController(logger, a.invitations),
				Volunteers:  controllers.NewVolunteerController(logger, a.volunteers),
			}, auth.NewJWTVerifier(cfg.JWTSecret), logger)

			var handler http.Handler = router
			handler = middleware.LoggingMiddleware(logger, handler)
			handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)

			srv := &http.Server{
				Addr:              ":" + cfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}
