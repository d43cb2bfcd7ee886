package helpers

import (
	"errors"
	"log/slog"
	"net/http"

	"volunteermatch/internal/domain"
)

// WriteServiceError maps a service error to its HTTP status and writes the error envelope.
// Classified errors carry a user-facing message; anything else is logged and reported as 500.
func WriteServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		WriteJSONError(w, http.StatusNotFound, ErrCodeNotFound, publicMessage(err, domain.ErrNotFound))
	case errors.Is(err, domain.ErrForbidden):
		WriteJSONError(w, http.StatusForbidden, ErrCodeForbidden, publicMessage(err, domain.ErrForbidden))
	case errors.Is(err, domain.ErrValidation):
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, publicMessage(err, domain.ErrValidation))
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
	}
}

// publicMessage returns the message of the first domain.Error in the chain,
// or the bare kind so internal wrapping context is not exposed.
func publicMessage(err, kind error) string {
	var de *domain.Error
	if errors.As(err, &de) {
		return de.Error()
	}
	return kind.Error()
}
