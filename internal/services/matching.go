package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"volunteermatch/internal/domain"
)

type matchingService struct {
	matchRepo      domain.MatchRepository
	eventRepo      domain.EventRepository
	volunteerRepo  domain.VolunteerRepository
	contextTimeout time.Duration
}

// NewMatchingService creates a MatchingService with the given repositories.
func NewMatchingService(
	matchRepo domain.MatchRepository,
	eventRepo domain.EventRepository,
	volunteerRepo domain.VolunteerRepository,
	timeout time.Duration,
) domain.MatchingService {
	return &matchingService{
		matchRepo:      matchRepo,
		eventRepo:      eventRepo,
		volunteerRepo:  volunteerRepo,
		contextTimeout: timeout,
	}
}

func (s *matchingService) GetAllMatches(ctx context.Context, requester *domain.Requester) ([]*domain.MatchWithEvent, error) {
	if !requester.IsAdmin() {
		return nil, domain.ForbiddenError("Only administrators can view all matches")
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	matches, err := s.matchRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return matches, nil
}

func (s *matchingService) GetVolunteerMatches(ctx context.Context, requester *domain.Requester, volunteerID string) ([]*domain.MatchWithEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	volunteer, err := s.getVolunteer(ctx, volunteerID)
	if err != nil {
		return nil, err
	}
	if !requester.IsAdmin() && !volunteer.OwnedBy(requester) {
		return nil, domain.ForbiddenError("You can only view your own matches")
	}

	matches, err := s.matchRepo.ListByVolunteerID(ctx, volunteerID)
	if err != nil {
		return nil, fmt.Errorf("list volunteer matches: %w", err)
	}
	return matches, nil
}

func (s *matchingService) GetRecommendedEvents(ctx context.Context, requester *domain.Requester, volunteerID string) ([]*domain.RecommendedEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	volunteer, err := s.getVolunteer(ctx, volunteerID)
	if err != nil {
		return nil, err
	}
	if !requester.IsAdmin() && !volunteer.OwnedBy(requester) {
		return nil, domain.ForbiddenError("You can only get recommendations for yourself")
	}
	if len(volunteer.Skills) == 0 {
		return []*domain.RecommendedEvent{}, nil
	}

	events, err := s.eventRepo.ListBySkills(ctx, volunteer.Skills)
	if err != nil {
		return nil, fmt.Errorf("list events by skills: %w", err)
	}

	recs := make([]*domain.RecommendedEvent, 0, len(events))
	for _, ev := range events {
		score := SkillScore(volunteer.Skills, ev.RequiredSkills)
		if score == 0 {
			continue
		}
		recs = append(recs, &domain.RecommendedEvent{Event: ev, MatchScore: score})
	}
	// Stable: ties keep the directory's order.
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].MatchScore > recs[j].MatchScore })
	return recs, nil
}

func (s *matchingService) GetRecommendedVolunteers(ctx context.Context, requester *domain.Requester, eventID string) ([]*domain.RecommendedVolunteer, error) {
	if !requester.IsAdmin() {
		return nil, domain.ForbiddenError("Only administrators can view recommended volunteers")
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.getEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if len(event.RequiredSkills) == 0 {
		return []*domain.RecommendedVolunteer{}, nil
	}

	volunteers, err := s.volunteerRepo.ListBySkills(ctx, event.RequiredSkills)
	if err != nil {
		return nil, fmt.Errorf("list volunteers by skills: %w", err)
	}

	recs := make([]*domain.RecommendedVolunteer, 0, len(volunteers))
	for _, v := range volunteers {
		score := SkillScore(v.Skills, event.RequiredSkills)
		if score == 0 {
			continue
		}
		recs = append(recs, &domain.RecommendedVolunteer{
			Volunteer:  v,
			MatchScore: score,
			Status:     domain.MatchStatusPending,
		})
	}
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].MatchScore > recs[j].MatchScore })
	return recs, nil
}

func (s *matchingService) CreateMatch(ctx context.Context, requester *domain.Requester, eventID, volunteerID string, score *int) (*domain.Match, error) {
	if !requester.IsAdmin() {
		return nil, domain.ForbiddenError("Only administrators can create matches")
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.getEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if _, err := s.getVolunteer(ctx, volunteerID); err != nil {
		return nil, err
	}

	if _, err := s.matchRepo.GetByEventAndVolunteer(ctx, eventID, volunteerID); err == nil {
		return nil, domain.ValidationError("Match already exists")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get match by event and volunteer: %w", err)
	}

	now := time.Now()
	if !event.StartsAfter(now) {
		return nil, domain.ValidationError("Cannot create match for past event")
	}

	value := 0
	if score != nil {
		value = *score
	}
	match := domain.NewMatch(eventID, volunteerID, value, now)
	if err := s.matchRepo.Create(ctx, match); err != nil {
		if errors.Is(err, domain.ErrDuplicateMatch) {
			// Lost a race with a concurrent create for the same pair.
			return nil, domain.ValidationError("Match already exists")
		}
		return nil, fmt.Errorf("create match: %w", err)
	}
	return match, nil
}

func (s *matchingService) CalculateAndSaveMatches(ctx context.Context, requester *domain.Requester, eventID string) (*domain.MatchCalculation, error) {
	if !requester.IsAdmin() {
		return nil, domain.ForbiddenError("Only administrators can calculate matches")
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.getEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return s.calculate(ctx, event)
}

func (s *matchingService) calculate(ctx context.Context, event *domain.Event) (*domain.MatchCalculation, error) {
	volunteers, err := s.volunteerRepo.ListBySkills(ctx, event.RequiredSkills)
	if err != nil {
		return nil, fmt.Errorf("list volunteers by skills: %w", err)
	}

	existing, err := s.matchRepo.ListByEventID(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("list event matches: %w", err)
	}
	matched := make(map[string]struct{}, len(existing))
	for _, m := range existing {
		matched[m.VolunteerID] = struct{}{}
	}

	now := time.Now()
	var pending []*domain.Match
	for _, v := range volunteers {
		score := SkillScore(v.Skills, event.RequiredSkills)
		if score == 0 {
			continue
		}
		if _, ok := matched[v.ID]; ok {
			continue
		}
		matched[v.ID] = struct{}{}
		pending = append(pending, domain.NewMatch(event.ID, v.ID, score, now))
	}

	result := &domain.MatchCalculation{MatchesFound: len(volunteers)}
	if len(pending) == 0 {
		return result, nil
	}
	if !event.StartsAfter(now) {
		return nil, domain.ValidationError("Cannot create match for past event")
	}

	created, err := s.matchRepo.CreateMany(ctx, pending)
	if err != nil {
		return nil, fmt.Errorf("create matches: %w", err)
	}
	result.MatchesCreated = created
	return result, nil
}

func (s *matchingService) RecalculateUpcoming(ctx context.Context, requester *domain.Requester) (*domain.RecalculationResult, error) {
	if !requester.IsAdmin() {
		return nil, domain.ForbiddenError("Only administrators can calculate matches")
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.ListUpcomingPublished(ctx, time.Now())
	if err != nil {
		return nil, fmt.Errorf("list upcoming events: %w", err)
	}

	result := &domain.RecalculationResult{}
	for _, ev := range events {
		calc, err := s.calculate(ctx, ev)
		if err != nil {
			if errors.Is(err, domain.ErrValidation) {
				// Started between listing and scanning.
				continue
			}
			return nil, fmt.Errorf("calculate matches for event %s: %w", ev.ID, err)
		}
		result.EventsProcessed++
		result.MatchesCreated += calc.MatchesCreated
	}
	return result, nil
}

func (s *matchingService) RespondToMatch(ctx context.Context, requester *domain.Requester, matchID string, action domain.ResponseAction) (*domain.Match, error) {
	if !action.Valid() {
		return nil, domain.ValidationError("Invalid action. Must be accept or decline.")
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	match, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFoundError("Match not found")
		}
		return nil, fmt.Errorf("get match: %w", err)
	}

	volunteer, err := s.getVolunteer(ctx, match.VolunteerID)
	if err != nil {
		return nil, err
	}
	if !volunteer.OwnedBy(requester) {
		return nil, domain.ForbiddenError("You can only respond to your own invitations")
	}

	status := action.Status()
	updated, err := s.matchRepo.Update(ctx, matchID, domain.MatchUpdate{Status: &status})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFoundError("Match not found")
		}
		return nil, fmt.Errorf("update match status: %w", err)
	}
	return updated, nil
}

func (s *matchingService) getEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFoundError("Event not found")
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *matchingService) getVolunteer(ctx context.Context, volunteerID string) (*domain.Volunteer, error) {
	volunteer, err := s.volunteerRepo.GetByID(ctx, volunteerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFoundError("Volunteer not found")
		}
		return nil, fmt.Errorf("get volunteer: %w", err)
	}
	return volunteer, nil
}
