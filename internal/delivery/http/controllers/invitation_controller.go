package controllers

import (
	"log/slog"
	"net/http"

	"volunteermatch/internal/delivery/http/helpers"
	"volunteermatch/internal/domain"
)

// SendInvitationRequest is the request body for POST /events/{eventID}/invitations.
type SendInvitationRequest struct {
	MatchID string `json:"match_id"`
}

// Validate implements Validator.
func (s SendInvitationRequest) Validate() []string {
	if s.MatchID == "" {
		return []string{"match_id is required"}
	}
	if !validUUID(s.MatchID) {
		return []string{"match_id must be a valid UUID"}
	}
	return nil
}

// RespondToInvitationRequest is the request body for POST /volunteers/me/invitations/{matchID}/respond.
type RespondToInvitationRequest struct {
	Action domain.ResponseAction `json:"action"`
}

// Validate implements Validator.
func (rq RespondToInvitationRequest) Validate() []string {
	if !rq.Action.Valid() {
		return []string{"Invalid action. Must be accept or decline."}
	}
	return nil
}

// InvitationSentResponse is the data returned after an invitation was delivered.
type InvitationSentResponse struct {
	Message string `json:"message"`
}

// InvitationSentSuccessResponse is the success envelope for POST /events/{eventID}/invitations.
type InvitationSentSuccessResponse struct {
	Data  InvitationSentResponse `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

type InvitationController struct {
	Logger  *slog.Logger
	Service domain.InvitationService
}

func NewInvitationController(logger *slog.Logger, svc domain.InvitationService) *InvitationController {
	return &InvitationController{
		Logger:  logger,
		Service: svc,
	}
}

// SendInvitation godoc
// @Summary Send an event invitation
// @Description Emails the volunteer of a PENDING match for a PUBLISHED event and marks the match as notified. Administrators only.
// @Tags invitations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param invitation body SendInvitationRequest true "Match to invite"
// @Success 200 {object} controllers.InvitationSentSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/invitations [post]
func (c *InvitationController) SendInvitation(w http.ResponseWriter, r *http.Request) {
	req, ok := requester(w, r)
	if !ok {
		return
	}
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	var body SendInvitationRequest
	if !helpers.DecodeAndValidate(w, r, &body) {
		return
	}
	if err := c.Service.SendInvitation(r.Context(), req, eventID, body.MatchID); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, InvitationSentResponse{Message: "Invitation sent successfully"})
}

// GetPendingInvitations godoc
// @Summary Pending invitations of the current volunteer
// @Description PENDING matches whose event is published and has not started yet.
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.MatchListSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /volunteers/me/invitations [get]
func (c *InvitationController) GetPendingInvitations(w http.ResponseWriter, r *http.Request) {
	req, ok := requester(w, r)
	if !ok {
		return
	}
	matches, err := c.Service.GetPendingInvitations(r.Context(), req)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, matches)
}

// GetAcceptedMatches godoc
// @Summary Accepted upcoming matches of the current volunteer
// @Description ACCEPTED matches whose event is published and has not started yet.
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.MatchListSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /volunteers/me/matches [get]
func (c *InvitationController) GetAcceptedMatches(w http.ResponseWriter, r *http.Request) {
	req, ok := requester(w, r)
	if !ok {
		return
	}
	matches, err := c.Service.GetAcceptedMatches(r.Context(), req)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, matches)
}

// RespondToInvitation godoc
// @Summary Accept or decline an invitation
// @Description Sets the match status to ACCEPTED or DECLINED. Only the invited volunteer may respond.
// @Tags invitations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param matchID path string true "Match ID (UUID)"
// @Param response body RespondToInvitationRequest true "accept or decline"
// @Success 200 {object} controllers.MatchSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /volunteers/me/invitations/{matchID}/respond [post]
func (c *InvitationController) RespondToInvitation(w http.ResponseWriter, r *http.Request) {
	req, ok := requester(w, r)
	if !ok {
		return
	}
	matchID, ok := pathID(w, r, "matchID")
	if !ok {
		return
	}
	var body RespondToInvitationRequest
	if !helpers.DecodeAndValidate(w, r, &body) {
		return
	}
	match, err := c.Service.RespondToInvitation(r.Context(), req, matchID, body.Action)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, match)
}
