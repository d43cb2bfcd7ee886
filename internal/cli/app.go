package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"

	"volunteermatch/config"
	"volunteermatch/internal/adapters/email"
	"volunteermatch/internal/domain"
	"volunteermatch/internal/repository/postgres"
	"volunteermatch/internal/services"
)

// app holds the wired services shared by the commands.
type app struct {
	cfg         *config.Config
	logger      *slog.Logger
	db          *sql.DB
	matching    domain.MatchingService
	invitations domain.InvitationService
	volunteers  domain.VolunteerService
}

func newApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*app, error) {
	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.AWSRegion,
			AccessKeyID:        cfg.Email.AWSAccessKeyID,
			SecretAccessKey:    cfg.Email.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create mailer: %w", err)
	}

	matchRepo := postgres.NewMatchRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	volunteerRepo := postgres.NewVolunteerRepository(db)

	notifier := services.NewEmailService(mailer, email.NewTemplateRenderer(), cfg.AppURL, logger)
	matching := services.NewMatchingService(matchRepo, eventRepo, volunteerRepo, cfg.ContextTimeout)

	return &app{
		cfg:         cfg,
		logger:      logger,
		db:          db,
		matching:    matching,
		invitations: services.NewInvitationService(matchRepo, eventRepo, volunteerRepo, notifier, matching, cfg.ContextTimeout),
		volunteers:  services.NewVolunteerService(volunteerRepo, cfg.ContextTimeout),
	}, nil
}

func (a *app) Close() error {
	return a.db.Close()
}
