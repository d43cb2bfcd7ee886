package controllers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"volunteermatch/internal/delivery/http/helpers"
	"volunteermatch/internal/domain"
)

func TestInvitationController_SendInvitation(t *testing.T) {
	tests := []struct {
		name       string
		eventID    string
		body       any
		svcErr     error
		wantStatus int
		wantCode   string
	}{
		{name: "sent", eventID: eventUUID, body: SendInvitationRequest{MatchID: matchUUID}, wantStatus: http.StatusOK},
		{name: "missing match id", eventID: eventUUID, body: SendInvitationRequest{}, wantStatus: http.StatusBadRequest, wantCode: helpers.ErrCodeBadRequest},
		{name: "bad event id", eventID: "123", body: SendInvitationRequest{MatchID: matchUUID}, wantStatus: http.StatusBadRequest, wantCode: helpers.ErrCodeBadRequest},
		{
			name: "event not published", eventID: eventUUID, body: SendInvitationRequest{MatchID: matchUUID},
			svcErr:     domain.ValidationError("Can only send invitations for published events"),
			wantStatus: http.StatusBadRequest, wantCode: helpers.ErrCodeBadRequest,
		},
		{
			name: "delivery failure", eventID: eventUUID, body: SendInvitationRequest{MatchID: matchUUID},
			svcErr:     errors.New("send invitation email: ses throttled"),
			wantStatus: http.StatusInternalServerError, wantCode: helpers.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeInvitationService{err: tt.svcErr}
			c := NewInvitationController(testLogger, svc)

			rr := serve(t, "POST /events/{eventID}/invitations", c.SendInvitation, http.MethodPost,
				"/events/"+tt.eventID+"/invitations", tt.body, adminRequester)

			require.Equal(t, tt.wantStatus, rr.Code)
			envelope := decodeEnvelope(t, rr)
			if tt.wantCode != "" {
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantCode, envelope.Error.Code)
				return
			}
			assert.Equal(t, eventUUID, svc.lastEventID)
			assert.Equal(t, matchUUID, svc.lastMatchID)
			data, ok := envelope.Data.(map[string]any)
			require.True(t, ok)
			assert.Equal(t, "Invitation sent successfully", data["message"])
		})
	}
}

func TestInvitationController_Lists(t *testing.T) {
	svc := &fakeInvitationService{matches: []*domain.MatchWithEvent{
		{Match: &domain.Match{ID: matchUUID, Status: domain.MatchStatusPending}, Event: &domain.Event{ID: eventUUID}},
	}}
	c := NewInvitationController(testLogger, svc)

	for _, route := range []struct {
		pattern string
		target  string
		handler http.HandlerFunc
	}{
		{"GET /volunteers/me/invitations", "/volunteers/me/invitations", c.GetPendingInvitations},
		{"GET /volunteers/me/matches", "/volunteers/me/matches", c.GetAcceptedMatches},
	} {
		t.Run(route.target, func(t *testing.T) {
			rr := serve(t, route.pattern, route.handler, http.MethodGet, route.target, nil, volunteerRequester)
			require.Equal(t, http.StatusOK, rr.Code)
			envelope := decodeEnvelope(t, rr)
			list, ok := envelope.Data.([]any)
			require.True(t, ok)
			assert.Len(t, list, 1)

			rr = serve(t, route.pattern, route.handler, http.MethodGet, route.target, nil, nil)
			require.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestInvitationController_RespondToInvitation(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		svcErr     error
		wantStatus int
		wantAction domain.ResponseAction
	}{
		{name: "accept", body: RespondToInvitationRequest{Action: domain.ResponseAccept}, wantStatus: http.StatusOK, wantAction: domain.ResponseAccept},
		{name: "decline", body: RespondToInvitationRequest{Action: domain.ResponseDecline}, wantStatus: http.StatusOK, wantAction: domain.ResponseDecline},
		{name: "invalid action", body: `{"action":"maybe"}`, wantStatus: http.StatusBadRequest},
		{
			name: "not the invited volunteer", body: RespondToInvitationRequest{Action: domain.ResponseAccept},
			svcErr: domain.ForbiddenError("You can only respond to your own invitations"), wantStatus: http.StatusForbidden, wantAction: domain.ResponseAccept,
		},
		{
			name: "unknown match", body: RespondToInvitationRequest{Action: domain.ResponseDecline},
			svcErr: domain.NotFoundError("Match not found"), wantStatus: http.StatusNotFound, wantAction: domain.ResponseDecline,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeInvitationService{err: tt.svcErr, match: &domain.Match{ID: matchUUID, Status: domain.MatchStatusAccepted}}
			c := NewInvitationController(testLogger, svc)

			rr := serve(t, "POST /volunteers/me/invitations/{matchID}/respond", c.RespondToInvitation, http.MethodPost,
				"/volunteers/me/invitations/"+matchUUID+"/respond", tt.body, volunteerRequester)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantAction, svc.lastAction)
			if tt.wantAction != "" {
				assert.Equal(t, matchUUID, svc.lastMatchID)
			}
		})
	}
}
