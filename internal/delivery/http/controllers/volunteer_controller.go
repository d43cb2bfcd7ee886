package controllers

import (
	"log/slog"
	"net/http"

	"volunteermatch/internal/delivery/http/helpers"
	"volunteermatch/internal/domain"
)

// VolunteerSuccessResponse is the success envelope for GET /volunteers/me.
type VolunteerSuccessResponse struct {
	Data  *domain.Volunteer `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type VolunteerController struct {
	Logger  *slog.Logger
	Service domain.VolunteerService
}

func NewVolunteerController(logger *slog.Logger, svc domain.VolunteerService) *VolunteerController {
	return &VolunteerController{
		Logger:  logger,
		Service: svc,
	}
}

// GetMe godoc
// @Summary Current volunteer profile
// @Tags volunteers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.VolunteerSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /volunteers/me [get]
func (c *VolunteerController) GetMe(w http.ResponseWriter, r *http.Request) {
	req, ok := requester(w, r)
	if !ok {
		return
	}
	profile, err := c.Service.GetCurrentProfile(r.Context(), req)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, profile)
}

// GetByID godoc
// @Summary Volunteer profile by ID
// @Description The volunteer themself or an administrator.
// @Tags volunteers
// @Produce json
// @Security BearerAuth
// @Param volunteerID path string true "Volunteer ID (UUID)"
// @Success 200 {object} controllers.VolunteerSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /volunteers/{volunteerID} [get]
func (c *VolunteerController) GetByID(w http.ResponseWriter, r *http.Request) {
	req, ok := requester(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "volunteerID")
	if !ok {
		return
	}
	profile, err := c.Service.GetByID(r.Context(), req, id)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, profile)
}
