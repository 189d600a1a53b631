package http

import (
	"omi-relay/internal/memory"
	"omi-relay/pkg/log"
)

type handler struct {
	l  log.Logger
	uc memory.UseCase
}

// New creates a new HTTP handler for the memory domain.
func New(l log.Logger, uc memory.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
