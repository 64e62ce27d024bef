// Package cli regroupe les commandes du binaire: le serveur HTTP et les
// outils de maintenance (migrations, sécurisation des mots de passe,
// réinitialisation, purge du registre de tentatives).
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lounnaci/gestion-eau/internal/repository"
	"github.com/lounnaci/gestion-eau/internal/service"
	"github.com/lounnaci/gestion-eau/pkg/config"
	"github.com/lounnaci/gestion-eau/pkg/logger"
	"github.com/lounnaci/gestion-eau/pkg/postgres"
)

var envPath string

func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "gestion-eau",
		Short:         "API d'administration pour la gestion des branchements d'eau",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&envPath, "env", ".env", "chemin du fichier d'environnement")

	root.AddCommand(
		newServeCommand(),
		newMigrateCommand(),
		newSecurePasswordsCommand(),
		newResetPasswordCommand(),
		newClearAttemptsCommand(),
	)

	return root
}

func Execute() {
	err := NewRootCommand().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (config.Config, error) {
	cfg, err := config.New(envPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}

	slog.SetDefault(logger.New(logger.ParseLevel(cfg.LogLevel)))

	return cfg, nil
}

// withService connects to the database and hands a ready service to fn,
// closing the pool afterwards. Maintenance commands run without the
// security-event producer.
func withService(ctx context.Context, fn func(ctx context.Context, svc *service.Service) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	pool, err := postgres.ConnectToPostgres(ctx, cfg.PostgresDSN, cfg.PostgresMaxConns)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer pool.Close()

	svc := service.NewService(
		cfg,
		repository.NewUserRepository(pool),
		repository.NewAttemptRepository(pool),
		repository.NewDocumentRepository(pool),
		nil,
	)

	return fn(ctx, svc)
}
