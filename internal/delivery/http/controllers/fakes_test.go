package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"volunteermatch/internal/delivery/http/helpers"
	"volunteermatch/internal/delivery/http/middleware"
	"volunteermatch/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

const (
	eventUUID     = "6f1c1f0e-3b8a-4a57-9b53-0c8f2f1e6a01"
	volunteerUUID = "0d3b9a52-8c41-4e0e-b1a4-3c5d6e7f8a90"
	matchUUID     = "a4e2c7d9-1f3b-4c5a-8e6d-9b0a1c2d3e4f"
)

var (
	adminRequester     = &domain.Requester{ID: "admin-1", Role: domain.RoleAdmin}
	volunteerRequester = &domain.Requester{ID: "user-1", Role: domain.RoleVolunteer}
)

// fakeMatchingService implements domain.MatchingService for handler tests.
type fakeMatchingService struct {
	err              error
	matches          []*domain.MatchWithEvent
	match            *domain.Match
	calc             *domain.MatchCalculation
	recEvents        []*domain.RecommendedEvent
	recVolunteers    []*domain.RecommendedVolunteer
	lastRequester    *domain.Requester
	lastEventID      string
	lastVolunteerID  string
	lastScore        *int
	recommendationsN int
}

func (f *fakeMatchingService) GetRecommendedEvents(ctx context.Context, requester *domain.Requester, volunteerID string) ([]*domain.RecommendedEvent, error) {
	f.lastRequester, f.lastVolunteerID = requester, volunteerID
	f.recommendationsN++
	return f.recEvents, f.err
}

func (f *fakeMatchingService) GetRecommendedVolunteers(ctx context.Context, requester *domain.Requester, eventID string) ([]*domain.RecommendedVolunteer, error) {
	f.lastRequester, f.lastEventID = requester, eventID
	return f.recVolunteers, f.err
}

func (f *fakeMatchingService) CreateMatch(ctx context.Context, requester *domain.Requester, eventID, volunteerID string, score *int) (*domain.Match, error) {
	f.lastRequester, f.lastEventID, f.lastVolunteerID, f.lastScore = requester, eventID, volunteerID, score
	return f.match, f.err
}

func (f *fakeMatchingService) CalculateAndSaveMatches(ctx context.Context, requester *domain.Requester, eventID string) (*domain.MatchCalculation, error) {
	f.lastRequester, f.lastEventID = requester, eventID
	return f.calc, f.err
}

func (f *fakeMatchingService) RecalculateUpcoming(ctx context.Context, requester *domain.Requester) (*domain.RecalculationResult, error) {
	return &domain.RecalculationResult{}, f.err
}

func (f *fakeMatchingService) RespondToMatch(ctx context.Context, requester *domain.Requester, matchID string, action domain.ResponseAction) (*domain.Match, error) {
	return f.match, f.err
}

func (f *fakeMatchingService) GetVolunteerMatches(ctx context.Context, requester *domain.Requester, volunteerID string) ([]*domain.MatchWithEvent, error) {
	f.lastRequester, f.lastVolunteerID = requester, volunteerID
	return f.matches, f.err
}

func (f *fakeMatchingService) GetAllMatches(ctx context.Context, requester *domain.Requester) ([]*domain.MatchWithEvent, error) {
	f.lastRequester = requester
	return f.matches, f.err
}

// fakeInvitationService implements domain.InvitationService for handler tests.
type fakeInvitationService struct {
	err         error
	matches     []*domain.MatchWithEvent
	match       *domain.Match
	lastEventID string
	lastMatchID string
	lastAction  domain.ResponseAction
}

func (f *fakeInvitationService) SendInvitation(ctx context.Context, requester *domain.Requester, eventID, matchID string) error {
	f.lastEventID, f.lastMatchID = eventID, matchID
	return f.err
}

func (f *fakeInvitationService) GetPendingInvitations(ctx context.Context, requester *domain.Requester) ([]*domain.MatchWithEvent, error) {
	return f.matches, f.err
}

func (f *fakeInvitationService) GetAcceptedMatches(ctx context.Context, requester *domain.Requester) ([]*domain.MatchWithEvent, error) {
	return f.matches, f.err
}

func (f *fakeInvitationService) RespondToInvitation(ctx context.Context, requester *domain.Requester, matchID string, action domain.ResponseAction) (*domain.Match, error) {
	f.lastMatchID, f.lastAction = matchID, action
	return f.match, f.err
}

// fakeVolunteerService implements domain.VolunteerService for handler tests.
type fakeVolunteerService struct {
	profile *domain.Volunteer
	err     error
	lastID  string
}

func (f *fakeVolunteerService) GetCurrentProfile(ctx context.Context, requester *domain.Requester) (*domain.Volunteer, error) {
	return f.profile, f.err
}

func (f *fakeVolunteerService) GetByID(ctx context.Context, requester *domain.Requester, id string) (*domain.Volunteer, error) {
	f.lastID = id
	return f.profile, f.err
}

// serve routes a single request through a mux so path values are populated.
func serve(t *testing.T, pattern string, handler http.HandlerFunc, method, target string, body any, requester *domain.Requester) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, target, reader)
	if requester != nil {
		req = req.WithContext(middleware.SetRequester(req.Context(), requester))
	}
	mux := http.NewServeMux()
	mux.HandleFunc(pattern, handler)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) helpers.APIResponse {
	t.Helper()
	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	return envelope
}
