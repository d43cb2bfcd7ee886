package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Classification(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		kind    error
		message string
	}{
		{"not found", NotFoundError("Match not found"), ErrNotFound, "Match not found"},
		{"forbidden", ForbiddenError("nope"), ErrForbidden, "nope"},
		{"validation", ValidationError("Match already exists"), ErrValidation, "Match already exists"},
		{"empty message falls back to kind", &Error{Kind: ErrValidation}, ErrValidation, "validation failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.kind)
			assert.Equal(t, tt.message, tt.err.Error())

			wrapped := fmt.Errorf("outer: %w", tt.err)
			assert.True(t, errors.Is(wrapped, tt.kind))
		})
	}
}
