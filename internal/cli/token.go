package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"volunteermatch/config"
	"volunteermatch/internal/adapters/auth"
	"volunteermatch/internal/domain"
)

func newTokenCommand(deps func() (*config.Config, *slog.Logger)) *cobra.Command {
	var (
		email  string
		admin  bool
		expiry time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token USER_ID",
		Short: "Issue a bearer token for a user (development)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _ := deps()
			if cfg.IsProduction() {
				return fmt.Errorf("token issuing is disabled in production")
			}
			role := domain.RoleVolunteer
			if admin {
				role = domain.RoleAdmin
			}
			token, err := auth.NewJWTIssuer(cfg.JWTSecret).Issue(&domain.Requester{ID: args[0], Email: email, Role: role}, expiry)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email claim")
	cmd.Flags().BoolVar(&admin, "admin", false, "issue an ADMIN token")
	cmd.Flags().DurationVar(&expiry, "expiry", 24*time.Hour, "token lifetime")
	return cmd
}
