package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"volunteermatch/internal/domain"
)

const volunteerProfileMissing = "Volunteer profile not found. Please create your profile first."

type volunteerService struct {
	volunteerRepo  domain.VolunteerRepository
	contextTimeout time.Duration
}

// NewVolunteerService creates a VolunteerService with the given repository.
func NewVolunteerService(volunteerRepo domain.VolunteerRepository, timeout time.Duration) domain.VolunteerService {
	return &volunteerService{
		volunteerRepo:  volunteerRepo,
		contextTimeout: timeout,
	}
}

func (s *volunteerService) GetCurrentProfile(ctx context.Context, requester *domain.Requester) (*domain.Volunteer, error) {
	if requester == nil {
		return nil, domain.ForbiddenError("Authentication required")
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	v, err := s.volunteerRepo.GetByUserID(ctx, requester.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFoundError(volunteerProfileMissing)
		}
		return nil, fmt.Errorf("get volunteer by user: %w", err)
	}
	return v, nil
}

func (s *volunteerService) GetByID(ctx context.Context, requester *domain.Requester, id string) (*domain.Volunteer, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	v, err := s.volunteerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFoundError("Volunteer not found")
		}
		return nil, fmt.Errorf("get volunteer: %w", err)
	}
	if !requester.IsAdmin() && !v.OwnedBy(requester) {
		return nil, domain.ForbiddenError("You can only view your own volunteer profile")
	}
	return v, nil
}
