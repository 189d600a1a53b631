package middleware

import (
	"crypto/subtle"
	"net"
	"strings"

	"github.com/gin-gonic/gin"

	"omi-relay/pkg/response"
)

const (
	HeaderWebhookSecret = "X-Webhook-Secret"
	QueryWebhookSecret  = "secret"
)

// WebhookAuth rejects callers outside the IP allow list with 403 and
// callers without the shared secret with 401. The caller IP comes from
// gin's ClientIP, so forwarding headers only count behind trusted proxies.
func (m Middleware) WebhookAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		ip := c.ClientIP()

		if !m.ipAllowed(ip) {
			m.l.Warnf(ctx, "middleware.WebhookAuth: IP %s not whitelisted", ip)
			response.Forbidden(c)
			c.Abort()
			return
		}

		if m.secret != "" && !m.secretValid(c) {
			m.l.Warnf(ctx, "middleware.WebhookAuth: invalid webhook secret from %s", ip)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Next()
	}
}

// secretValid accepts the secret as X-Webhook-Secret, a bearer token or
// the secret query parameter. Omi can only be configured with a URL.
func (m Middleware) secretValid(c *gin.Context) bool {
	got := c.GetHeader(HeaderWebhookSecret)
	if got == "" {
		got = strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	}
	if got == "" {
		got = c.Query(QueryWebhookSecret)
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(m.secret)) == 1
}

func (m Middleware) ipAllowed(ip string) bool {
	if len(m.allowedIPs) == 0 && len(m.allowedNet) == 0 {
		return true
	}

	for _, allowed := range m.allowedIPs {
		if ip == allowed {
			return true
		}
	}
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return false
	}
	for _, n := range m.allowedNet {
		if n.Contains(parsed) {
			return true
		}
	}
	return false
}
