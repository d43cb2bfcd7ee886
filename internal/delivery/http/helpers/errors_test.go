package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"volunteermatch/internal/domain"
)

func TestWriteServiceError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{"not found", domain.NotFoundError("Match not found"), http.StatusNotFound, ErrCodeNotFound, "Match not found"},
		{"forbidden", domain.ForbiddenError("Only administrators can create matches"), http.StatusForbidden, ErrCodeForbidden, "Only administrators can create matches"},
		{"validation", domain.ValidationError("Match already exists"), http.StatusBadRequest, ErrCodeBadRequest, "Match already exists"},
		{"wrapped sentinel", fmt.Errorf("get event: %w", domain.ErrNotFound), http.StatusNotFound, ErrCodeNotFound, "not found"},
		{"unclassified hides detail", errors.New("pq: connection refused"), http.StatusInternalServerError, ErrCodeInternalError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/matches", nil)

			WriteServiceError(rr, req, logger, tt.err)

			require.Equal(t, tt.wantStatus, rr.Code)
			var envelope APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			require.NotNil(t, envelope.Error)
			assert.Equal(t, tt.wantCode, envelope.Error.Code)
			assert.Equal(t, tt.wantMessage, envelope.Error.Message)
			assert.Nil(t, envelope.Data)
		})
	}
}
