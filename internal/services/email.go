package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"volunteermatch/internal/domain"
)

const eventDateLayout = "Monday, January 2, 2006 at 15:04 MST"

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	appURL   string
	logger   *slog.Logger
}

// NewEmailService returns an InvitationNotifier that renders the "event_invitation"
// template and sends it through mailer. appURL is the base for dashboard links.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, appURL string, logger *slog.Logger) domain.InvitationNotifier {
	return &emailService{
		mailer:   mailer,
		renderer: renderer,
		appURL:   strings.TrimSuffix(appURL, "/"),
		logger:   logger,
	}
}

// SendEventInvitation sends the invitation email for matchID to the volunteer.
func (s *emailService) SendEventInvitation(ctx context.Context, volunteer *domain.Volunteer, event *domain.Event, matchID string) error {
	if volunteer == nil || event == nil {
		return fmt.Errorf("event invitation requires volunteer and event")
	}
	if volunteer.Email == "" {
		return fmt.Errorf("volunteer %s has no email address", volunteer.ID)
	}

	name := strings.TrimSpace(volunteer.Name)
	if name == "" {
		name = "Volunteer"
	}
	location := event.Location
	if event.EventType == domain.EventTypeVirtual {
		location = "Virtual (Online)"
	}
	data := &domain.EventInvitationEmailData{
		Email:          volunteer.Email,
		VolunteerName:  name,
		EventTitle:     event.Title,
		EventDate:      event.StartTime.UTC().Format(eventDateLayout),
		Duration:       event.DurationMinutes,
		Location:       location,
		RequiredSkills: strings.Join(event.RequiredSkills, ", "),
		Description:    event.Description,
		DashboardURL:   s.appURL + "/dashboard",
		MatchID:        matchID,
	}

	subject, htmlBody, textBody, err := s.renderer.Render("event_invitation", data)
	if err != nil {
		return fmt.Errorf("failed to render event_invitation template: %w", err)
	}
	if err := s.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send event invitation email: %w", err)
	}
	s.logger.InfoContext(ctx, "event invitation sent", "email", data.Email, "event_id", event.ID, "match_id", matchID)
	return nil
}
