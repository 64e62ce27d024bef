package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/lounnaci/gestion-eau/internal/service"
)

func newSecurePasswordsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "secure-passwords",
		Short: "Convertit les mots de passe en clair vers la forme hachée salée",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withService(cmd.Context(), func(ctx context.Context, svc *service.Service) error {
				secured, err := svc.SecurePasswords(ctx)
				if err != nil {
					return err
				}

				slog.Info("password sweep finished", "secured", secured)

				return nil
			})
		},
	}
}
