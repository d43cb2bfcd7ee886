package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"volunteermatch/internal/domain"
)

type invitationService struct {
	matchRepo      domain.MatchRepository
	eventRepo      domain.EventRepository
	volunteerRepo  domain.VolunteerRepository
	notifier       domain.InvitationNotifier
	matching       domain.MatchingService
	contextTimeout time.Duration
}

// NewInvitationService creates an InvitationService. Responses are delegated to matching.
func NewInvitationService(
	matchRepo domain.MatchRepository,
	eventRepo domain.EventRepository,
	volunteerRepo domain.VolunteerRepository,
	notifier domain.InvitationNotifier,
	matching domain.MatchingService,
	timeout time.Duration,
) domain.InvitationService {
	return &invitationService{
		matchRepo:      matchRepo,
		eventRepo:      eventRepo,
		volunteerRepo:  volunteerRepo,
		notifier:       notifier,
		matching:       matching,
		contextTimeout: timeout,
	}
}

// SendInvitation notifies the matched volunteer and marks the match as notified.
// A notifier failure is returned as is and leaves the match untouched.
func (s *invitationService) SendInvitation(ctx context.Context, requester *domain.Requester, eventID, matchID string) error {
	if !requester.IsAdmin() {
		return domain.ForbiddenError("Only administrators can send invitations")
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NotFoundError("Event not found")
		}
		return fmt.Errorf("get event: %w", err)
	}
	if event.Status != domain.EventStatusPublished {
		return domain.ValidationError("Can only send invitations for published events")
	}

	match, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NotFoundError("Match not found")
		}
		return fmt.Errorf("get match: %w", err)
	}
	if match.EventID != eventID {
		return domain.ValidationError("Match does not belong to this event")
	}
	if match.Status != domain.MatchStatusPending {
		return domain.ValidationError("Can only send invitations to pending matches")
	}

	volunteer, err := s.volunteerRepo.GetByID(ctx, match.VolunteerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NotFoundError("Volunteer not found")
		}
		return fmt.Errorf("get volunteer: %w", err)
	}

	if err := s.notifier.SendEventInvitation(ctx, volunteer, event, match.ID); err != nil {
		return fmt.Errorf("send event invitation: %w", err)
	}

	notified := true
	now := time.Now()
	if _, err := s.matchRepo.Update(ctx, match.ID, domain.MatchUpdate{Notified: &notified, NotifiedAt: &now}); err != nil {
		return fmt.Errorf("mark match notified: %w", err)
	}
	return nil
}

func (s *invitationService) GetPendingInvitations(ctx context.Context, requester *domain.Requester) ([]*domain.MatchWithEvent, error) {
	return s.listVisible(ctx, requester, domain.MatchStatusPending)
}

func (s *invitationService) GetAcceptedMatches(ctx context.Context, requester *domain.Requester) ([]*domain.MatchWithEvent, error) {
	return s.listVisible(ctx, requester, domain.MatchStatusAccepted)
}

func (s *invitationService) RespondToInvitation(ctx context.Context, requester *domain.Requester, matchID string, action domain.ResponseAction) (*domain.Match, error) {
	return s.matching.RespondToMatch(ctx, requester, matchID, action)
}

// listVisible returns the requester's matches in status whose event is still
// published and has not started. Stored records are not modified.
func (s *invitationService) listVisible(ctx context.Context, requester *domain.Requester, status domain.MatchStatus) ([]*domain.MatchWithEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if requester == nil {
		return nil, domain.ForbiddenError("Authentication required")
	}
	volunteer, err := s.volunteerRepo.GetByUserID(ctx, requester.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFoundError(volunteerProfileMissing)
		}
		return nil, fmt.Errorf("get volunteer profile: %w", err)
	}

	matches, err := s.matchRepo.ListByVolunteerIDAndStatus(ctx, volunteer.ID, status)
	if err != nil {
		return nil, fmt.Errorf("list matches by status: %w", err)
	}

	now := time.Now()
	visible := make([]*domain.MatchWithEvent, 0, len(matches))
	for _, m := range matches {
		if m.Event == nil || m.Event.Status != domain.EventStatusPublished {
			continue
		}
		if m.Event.StartTime.Before(now) {
			continue
		}
		visible = append(visible, m)
	}
	return visible, nil
}
