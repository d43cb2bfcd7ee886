package domain

import "errors"

// Sentinel error kinds. Callers classify with errors.Is.
var (
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrValidation = errors.New("validation failed")
)

// ErrDuplicateMatch is returned by a MatchRepository when the event/volunteer pair already has a match.
var ErrDuplicateMatch = errors.New("match already exists for event and volunteer")

// Error is a classified error carrying a human-readable message.
// It unwraps to its Kind so errors.Is(err, ErrNotFound) and friends work.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Kind }

// NotFoundError returns an ErrNotFound-kind error with the given message.
func NotFoundError(message string) error {
	return &Error{Kind: ErrNotFound, Message: message}
}

// ForbiddenError returns an ErrForbidden-kind error with the given message.
func ForbiddenError(message string) error {
	return &Error{Kind: ErrForbidden, Message: message}
}

// ValidationError returns an ErrValidation-kind error with the given message.
func ValidationError(message string) error {
	return &Error{Kind: ErrValidation, Message: message}
}
