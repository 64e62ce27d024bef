package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/lounnaci/gestion-eau/internal/entity"
	"github.com/lounnaci/gestion-eau/internal/service"
)

func newResetPasswordCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset-password <username> <password>",
		Short: "Définit un nouveau mot de passe pour un utilisateur",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd.Context(), func(ctx context.Context, svc *service.Service) error {
				err := svc.ResetPassword(ctx, args[0], args[1])
				if err != nil {
					if errors.Is(err, entity.ErrNotFound) {
						return fmt.Errorf("utilisateur %q introuvable", args[0])
					}

					return err
				}

				slog.Info("password reset", "username", args[0])

				return nil
			})
		},
	}
}
