package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"volunteermatch/internal/domain"
)

func TestVolunteerService_GetCurrentProfile(t *testing.T) {
	alice := &domain.Volunteer{ID: "v-alice", UserID: "alice-user"}

	tests := []struct {
		name      string
		repo      *mockVolunteerRepository
		requester *domain.Requester
		wantID    string
		wantErr   error
	}{
		{
			name:      "own profile",
			repo:      &mockVolunteerRepository{volunteers: map[string]*domain.Volunteer{alice.ID: alice}},
			requester: aliceRequester,
			wantID:    "v-alice",
		},
		{
			name:      "no profile yet",
			repo:      &mockVolunteerRepository{volunteers: map[string]*domain.Volunteer{}},
			requester: aliceRequester,
			wantErr:   domain.ErrNotFound,
		},
		{
			name:      "anonymous",
			repo:      &mockVolunteerRepository{},
			requester: nil,
			wantErr:   domain.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewVolunteerService(tt.repo, time.Second)
			got, err := svc.GetCurrentProfile(context.Background(), tt.requester)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

func TestVolunteerService_GetByID(t *testing.T) {
	alice := &domain.Volunteer{ID: "v-alice", UserID: "alice-user"}
	repo := &mockVolunteerRepository{volunteers: map[string]*domain.Volunteer{alice.ID: alice}}
	svc := NewVolunteerService(repo, time.Second)
	ctx := context.Background()

	got, err := svc.GetByID(ctx, aliceRequester, "v-alice")
	require.NoError(t, err)
	assert.Equal(t, alice, got)

	_, err = svc.GetByID(ctx, adminRequester, "v-alice")
	require.NoError(t, err)

	_, err = svc.GetByID(ctx, bobRequester, "v-alice")
	require.ErrorIs(t, err, domain.ErrForbidden)

	_, err = svc.GetByID(ctx, adminRequester, "v-none")
	require.ErrorIs(t, err, domain.ErrNotFound)

	failing := NewVolunteerService(&mockVolunteerRepository{err: errors.New("db down")}, time.Second)
	_, err = failing.GetByID(ctx, adminRequester, "v-alice")
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrNotFound))
}
