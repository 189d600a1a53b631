package httpserver

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"omi-relay/internal/memory"
	"omi-relay/internal/middleware"
	"omi-relay/internal/observability"
	"omi-relay/internal/relay"
	"omi-relay/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	mw      middleware.Middleware
	metrics *observability.Metrics

	// Domains
	relayUC  relay.UseCase
	memoryUC memory.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	// TrustedProxies lists proxy IPs or CIDRs whose forwarding headers
	// are believed. Empty means the socket address is the client IP.
	TrustedProxies []string

	Middleware middleware.Middleware
	// Metrics is optional; nil disables /metrics.
	Metrics *observability.Metrics

	RelayUseCase relay.UseCase
	// MemoryUseCase is optional; nil leaves the memory routes unregistered.
	MemoryUseCase memory.UseCase
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		mw:          cfg.Middleware,
		metrics:     cfg.Metrics,
		relayUC:     cfg.RelayUseCase,
		memoryUC:    cfg.MemoryUseCase,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.gin.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.relayUC == nil {
		return errors.New("relay use case is required")
	}
	return nil
}
