package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// EventInvitationEmailData holds data for the event invitation email.
type EventInvitationEmailData struct {
	Email          string
	VolunteerName  string
	EventTitle     string
	EventDate      string
	Duration       int
	Location       string
	RequiredSkills string
	Description    string
	DashboardURL   string
	MatchID        string
}

// InvitationNotifier delivers an invitation for a match to its volunteer.
// No retry is performed by callers.
type InvitationNotifier interface {
	SendEventInvitation(ctx context.Context, volunteer *Volunteer, event *Event, matchID string) error
}
