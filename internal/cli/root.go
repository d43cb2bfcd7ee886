package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"volunteermatch/config"
)

const appName = "volunteermatch"

// NewRootCommand builds the volunteermatch command tree.
func NewRootCommand() *cobra.Command {
	var (
		cfg    *config.Config
		logger *slog.Logger
	)

	root := &cobra.Command{
		Use:           appName,
		Short:         "Volunteer matching and invitation service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return err
			}
			logger = config.NewLogger()
			return nil
		},
	}

	deps := func() (*config.Config, *slog.Logger) { return cfg, logger }
	root.AddCommand(
		newServeCommand(deps),
		newMatchCommand(deps),
		newTokenCommand(deps),
	)
	return root
}
