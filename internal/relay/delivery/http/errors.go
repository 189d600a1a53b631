package http

import (
	"errors"

	"omi-relay/internal/relay"
	pkgErrors "omi-relay/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, relay.ErrMissingSessionID):
		return pkgErrors.NewValidation("session_id", "is required")
	case errors.Is(err, relay.ErrMissingSegments):
		return pkgErrors.NewValidation("segments", "is required")
	case errors.Is(err, relay.ErrEmptySegments):
		return pkgErrors.NewValidation("segments", "must not be empty")
	case errors.Is(err, relay.ErrMissingUserID):
		return pkgErrors.NewValidation("userId", "is required")
	default:
		return err
	}
}
