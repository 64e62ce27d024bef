package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/lounnaci/gestion-eau/pkg/postgres"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Applique les migrations de la base de données",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			err = postgres.UpMigrations(cfg.PostgresDSN)
			if err != nil {
				return fmt.Errorf("up migrations: %w", err)
			}

			slog.Info("migrations applied")

			return nil
		},
	}
}
