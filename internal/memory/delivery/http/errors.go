package http

import (
	"errors"

	"omi-relay/internal/memory"
	pkgErrors "omi-relay/pkg/errors"
)

// mapError turns domain validation errors into typed validation errors.
// Downstream errors are already typed and pass through unchanged.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, memory.ErrMissingUserID):
		return pkgErrors.NewValidation("user_id", "is required")
	case errors.Is(err, memory.ErrEmptyContent):
		return pkgErrors.NewValidation("content", "is required")
	case errors.Is(err, memory.ErrEmptyQuery):
		return pkgErrors.NewValidation("q", "is required")
	default:
		return err
	}
}
