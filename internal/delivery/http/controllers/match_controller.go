package controllers

import (
	"log/slog"
	"net/http"

	"volunteermatch/internal/delivery/http/helpers"
	"volunteermatch/internal/domain"
)

// CreateMatchRequest is the request body for POST /matches.
type CreateMatchRequest struct {
	EventID     string `json:"event_id"`
	VolunteerID string `json:"volunteer_id"`
	Score       *int   `json:"score,omitempty"`
}

// Validate implements Validator.
func (c CreateMatchRequest) Validate() []string {
	var errs []string
	if c.EventID == "" {
		errs = append(errs, "event_id is required")
	} else if !validUUID(c.EventID) {
		errs = append(errs, "event_id must be a valid UUID")
	}
	if c.VolunteerID == "" {
		errs = append(errs, "volunteer_id is required")
	} else if !validUUID(c.VolunteerID) {
		errs = append(errs, "volunteer_id must be a valid UUID")
	}
	if c.Score != nil && (*c.Score < 0 || *c.Score > 100) {
		errs = append(errs, "score must be between 0 and 100")
	}
	return errs
}

// MatchSuccessResponse is the success envelope for endpoints returning a single match.
type MatchSuccessResponse struct {
	Data  *domain.Match     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// MatchListSuccessResponse is the success envelope for endpoints returning matches with their events.
type MatchListSuccessResponse struct {
	Data  []*domain.MatchWithEvent `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

// MatchCalculationSuccessResponse is the success envelope for POST /events/{eventID}/matches.
type MatchCalculationSuccessResponse struct {
	Data  *domain.MatchCalculation `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

// RecommendedVolunteersSuccessResponse is the success envelope for GET /events/{eventID}/recommended-volunteers.
type RecommendedVolunteersSuccessResponse struct {
	Data  []*domain.RecommendedVolunteer `json:"data"`
	Error *helpers.APIError              `json:"error"`
}

// RecommendedEventsSuccessResponse is the success envelope for volunteer recommendation endpoints.
type RecommendedEventsSuccessResponse struct {
	Data  []*domain.RecommendedEvent `json:"data"`
	Error *helpers.APIError          `json:"error"`
}

type MatchController struct {
	Logger     *slog.Logger
	Service    domain.MatchingService
	Volunteers domain.VolunteerService
}

func NewMatchController(logger *slog.Logger, svc domain.MatchingService, volunteers domain.VolunteerService) *MatchController {
	return &MatchController{
		Logger:     logger,
		Service:    svc,
		Volunteers: volunteers,
	}
}

// GetAllMatches godoc
// @Summary List all matches
// @Description Every stored match with its event. Administrators only.
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.MatchListSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /matches [get]
func (c *MatchController) GetAllMatches(w http.ResponseWriter, r *http.Request) {
	req, ok := requester(w, r)
	if !ok {
		return
	}
	matches, err := c.Service.GetAllMatches(r.Context(), req)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, matches)
}

// CreateMatch godoc
// @Summary Create a match manually
// @Description Pairs a volunteer with a future event as a PENDING match. A missing score is stored as 0. Administrators only.
// @Tags matches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param match body CreateMatchRequest true "Event, volunteer and optional score"
// @Success 201 {object} controllers.MatchSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /matches [post]
func (c *MatchController) CreateMatch(w http.ResponseWriter, r *http.Request) {
	req, ok := requester(w, r)
	if !ok {
		return
	}
	var body CreateMatchRequest
	if !helpers.DecodeAndValidate(w, r, &body) {
		return
	}
	match, err := c.Service.CreateMatch(r.Context(), req, body.EventID, body.VolunteerID, body.Score)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, match)
}

// CalculateMatches godoc
// @Summary Calculate and save matches for an event
// @Description Scores every volunteer sharing a skill with the event and stores a PENDING match for each new pair with a positive score. Administrators only.
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.MatchCalculationSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/matches [post]
func (c *MatchController) CalculateMatches(w http.ResponseWriter, r *http.Request) {
	req, ok := requester(w, r)
	if !ok {
		return
	}
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	result, err := c.Service.CalculateAndSaveMatches(r.Context(), req, eventID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, result)
}

// GetRecommendedVolunteers godoc
// @Summary Recommended volunteers for an event
// @Description Volunteers ranked by skill overlap with the event, highest score first. Nothing is stored. Administrators only.
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.RecommendedVolunteersSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/recommended-volunteers [get]
func (c *MatchController) GetRecommendedVolunteers(w http.ResponseWriter, r *http.Request) {
	req, ok := requester(w, r)
	if !ok {
		return
	}
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	recs, err := c.Service.GetRecommendedVolunteers(r.Context(), req, eventID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, recs)
}

// GetVolunteerMatches godoc
// @Summary Matches of a volunteer
// @Description All matches of the volunteer in any status, newest first. The volunteer themself or an administrator.
// @Tags volunteers
// @Produce json
// @Security BearerAuth
// @Param volunteerID path string true "Volunteer ID (UUID)"
// @Success 200 {object} controllers.MatchListSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /volunteers/{volunteerID}/matches [get]
func (c *MatchController) GetVolunteerMatches(w http.ResponseWriter, r *http.Request) {
	req, ok := requester(w, r)
	if !ok {
		return
	}
	volunteerID, ok := pathID(w, r, "volunteerID")
	if !ok {
		return
	}
	matches, err := c.Service.GetVolunteerMatches(r.Context(), req, volunteerID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, matches)
}

// GetVolunteerRecommendations godoc
// @Summary Recommended events for a volunteer
// @Description Events ranked by skill overlap with the volunteer, highest score first. The volunteer themself or an administrator.
// @Tags volunteers
// @Produce json
// @Security BearerAuth
// @Param volunteerID path string true "Volunteer ID (UUID)"
// @Success 200 {object} controllers.RecommendedEventsSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /volunteers/{volunteerID}/recommendations [get]
func (c *MatchController) GetVolunteerRecommendations(w http.ResponseWriter, r *http.Request) {
	req, ok := requester(w, r)
	if !ok {
		return
	}
	volunteerID, ok := pathID(w, r, "volunteerID")
	if !ok {
		return
	}
	c.writeRecommendations(w, r, req, volunteerID)
}

// GetMyRecommendations godoc
// @Summary Recommended events for the current volunteer
// @Description Same as the per-volunteer recommendations, resolved from the caller's own profile.
// @Tags volunteers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.RecommendedEventsSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /volunteers/me/recommendations [get]
func (c *MatchController) GetMyRecommendations(w http.ResponseWriter, r *http.Request) {
	req, ok := requester(w, r)
	if !ok {
		return
	}
	profile, err := c.Volunteers.GetCurrentProfile(r.Context(), req)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	c.writeRecommendations(w, r, req, profile.ID)
}

func (c *MatchController) writeRecommendations(w http.ResponseWriter, r *http.Request, req *domain.Requester, volunteerID string) {
	recs, err := c.Service.GetRecommendedEvents(r.Context(), req, volunteerID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, recs)
}
