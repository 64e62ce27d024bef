package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/lounnaci/gestion-eau/internal/api"
	"github.com/lounnaci/gestion-eau/internal/repository"
	"github.com/lounnaci/gestion-eau/internal/service"
	"github.com/lounnaci/gestion-eau/pkg/broker"
	"github.com/lounnaci/gestion-eau/pkg/postgres"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Démarre le serveur HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.ConnectToPostgres(ctx, cfg.PostgresDSN, cfg.PostgresMaxConns)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer pool.Close()

	err = postgres.UpMigrations(cfg.PostgresDSN)
	if err != nil {
		return fmt.Errorf("up migrations: %w", err)
	}

	var events service.SecurityEvents

	if len(cfg.KafkaBrokers) > 0 {
		producer := broker.NewProducer(slog.Default(), cfg.KafkaBrokers, cfg.KafkaTopic)
		defer producer.Close()

		events = producer
	}

	svc := service.NewService(
		cfg,
		repository.NewUserRepository(pool),
		repository.NewAttemptRepository(pool),
		repository.NewDocumentRepository(pool),
		events,
	)

	router := api.NewRouter(api.NewHandler(svc, cfg.DatabaseName), api.NewMiddleware())

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	go cleanExpiredBlocksLoop(ctx, svc, cfg.Login.CleanupInterval)

	errCh := make(chan error, 1)

	go func() {
		slog.Info("server starting", "port", cfg.HTTPPort)

		var err error

		if cfg.ServerCert != "" && cfg.ServerKey != "" {
			err = srv.ListenAndServeTLS(cfg.ServerCert, cfg.ServerKey)
		} else {
			err = srv.ListenAndServe()
		}

		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// cleanExpiredBlocksLoop purges lapsed ledger rows on a fixed interval,
// standing in for the TTL index the document store used to provide.
func cleanExpiredBlocksLoop(ctx context.Context, svc *service.Service, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			err := svc.CleanExpiredBlocks(ctx)
			if err != nil {
				slog.ErrorContext(ctx, "error cleaning expired blocks", "error", err)
			}
		}
	}
}
