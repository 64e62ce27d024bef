package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/lounnaci/gestion-eau/internal/service"
)

func newClearAttemptsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-attempts [username]",
		Short: "Purge le registre des tentatives de connexion",
		Long:  "Sans argument, toutes les entrées sont supprimées; avec un nom d'utilisateur, seule la sienne.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd.Context(), func(ctx context.Context, svc *service.Service) error {
				username := ""
				if len(args) == 1 {
					username = args[0]
				}

				cleared, err := svc.ClearAttempts(ctx, username)
				if err != nil {
					return err
				}

				slog.Info("login attempts cleared", "username", username, "cleared", cleared)

				return nil
			})
		},
	}
}
