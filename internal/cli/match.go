package cli

import (
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"volunteermatch/config"
	"volunteermatch/internal/domain"
)

// operator is the identity matching commands run as.
var operator = &domain.Requester{ID: "cli", Role: domain.RoleAdmin}

func newMatchCommand(deps func() (*config.Config, *slog.Logger)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Run match calculations",
	}
	cmd.AddCommand(newMatchCalculateCommand(deps), newMatchRecalculateCommand(deps))
	return cmd
}

func newMatchCalculateCommand(deps func() (*config.Config, *slog.Logger)) *cobra.Command {
	return &cobra.Command{
		Use:   "calculate EVENT_ID",
		Short: "Calculate and save matches for one event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := uuid.Parse(args[0]); err != nil {
				return domain.ValidationError("EVENT_ID must be a valid UUID")
			}
			cfg, logger := deps()
			a, err := newApp(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.matching.CalculateAndSaveMatches(cmd.Context(), operator, args[0])
			if err != nil {
				return err
			}
			logger.Info("matches calculated", "event_id", args[0], "matches_found", result.MatchesFound, "matches_created", result.MatchesCreated)
			return writeJSON(cmd, result)
		},
	}
}

func newMatchRecalculateCommand(deps func() (*config.Config, *slog.Logger)) *cobra.Command {
	return &cobra.Command{
		Use:   "recalculate",
		Short: "Calculate matches for every upcoming published event",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger := deps()
			a, err := newApp(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.matching.RecalculateUpcoming(cmd.Context(), operator)
			if err != nil {
				return err
			}
			logger.Info("matches recalculated", "events_processed", result.EventsProcessed, "matches_created", result.MatchesCreated)
			return writeJSON(cmd, result)
		},
	}
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
