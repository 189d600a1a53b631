package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	relayHTTP "omi-relay/internal/relay/delivery/http"
)

// setupRelayDomain registers the webhook and its query endpoints. Only the
// webhook sits behind the secret and IP allow list.
func (srv HTTPServer) setupRelayDomain(ctx context.Context, rg *gin.RouterGroup) error {
	h := relayHTTP.New(srv.l, srv.relayUC)
	relayHTTP.RegisterRoutes(rg, h, srv.mw.WebhookAuth())

	srv.l.Infof(ctx, "Relay domain registered at POST /omi-webhook")
	return nil
}
