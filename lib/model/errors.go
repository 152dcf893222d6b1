package model

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrContentTypeNotFound = errors.New("Provided content_type is not monitored")
	ErrRootPathMissing     = errors.New("Provided content_type does not exist")
	ErrIgnoreFileNotFound  = errors.New(".stignore doesn't exists for the provided content_type")
	ErrMissingActions      = errors.New("Missing 'actions' in payload")
	ErrMissingConfirmation = errors.New("Missing 'actions' confirmation")
	ErrActionCountMismatch = errors.New("Invalid actions payload validation (invalid length)")
)

type InvalidActionPayloadError struct {
	Field string
}

func (e *InvalidActionPayloadError) Error() string {
	return fmt.Sprintf("Payload %v is invalid", e.Field)
}

// ActionMismatchError reports the first confirmed action that differs from the
// current preview. Index is 1-based.
type ActionMismatchError struct {
	Index int
}

func (e *ActionMismatchError) Error() string {
	return fmt.Sprintf("Invalid actions payload validation (item %v)", e.Index)
}

// IsClientError tells if err was caused by the request rather than by the agent.
func IsClientError(err error) bool {
	var invalid *InvalidActionPayloadError
	var mismatch *ActionMismatchError

	switch {
	case errors.Is(err, ErrContentTypeNotFound),
		errors.Is(err, ErrRootPathMissing),
		errors.Is(err, ErrIgnoreFileNotFound),
		errors.Is(err, ErrMissingActions),
		errors.Is(err, ErrMissingConfirmation),
		errors.Is(err, ErrActionCountMismatch),
		errors.As(err, &invalid),
		errors.As(err, &mismatch):
		return true
	default:
		return false
	}
}
