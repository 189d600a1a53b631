package http

import (
	"omi-relay/internal/relay"
	"omi-relay/pkg/log"
)

type handler struct {
	l  log.Logger
	uc relay.UseCase
}

// New creates a new HTTP handler for the relay domain.
func New(l log.Logger, uc relay.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
