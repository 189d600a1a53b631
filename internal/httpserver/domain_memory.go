package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	memoryHTTP "omi-relay/internal/memory/delivery/http"
)

func (srv HTTPServer) setupMemoryDomain(ctx context.Context, rg *gin.RouterGroup) error {
	h := memoryHTTP.New(srv.l, srv.memoryUC)
	memoryHTTP.RegisterRoutes(rg, h, srv.mw.WebhookAuth())

	srv.l.Infof(ctx, "Memory domain registered at /memories")
	return nil
}
