package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"volunteermatch/internal/delivery/http/helpers"
	"volunteermatch/internal/delivery/http/middleware"
	"volunteermatch/internal/domain"
)

// requester returns the authenticated requester or writes 401.
func requester(w http.ResponseWriter, r *http.Request) (*domain.Requester, bool) {
	req, ok := middleware.RequesterFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return nil, false
	}
	return req, true
}

// pathID reads a UUID path parameter or writes 400.
func pathID(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	raw := r.PathValue(name)
	if raw == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing "+name)
		return "", false
	}
	if _, err := uuid.Parse(raw); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, name+" must be a valid UUID")
		return "", false
	}
	return raw, true
}

func validUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
