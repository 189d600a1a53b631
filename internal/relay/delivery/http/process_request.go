package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	pkgErrors "omi-relay/pkg/errors"
)

// processWebhookReq binds the transcript event and the optional uid query.
func (h *handler) processWebhookReq(c *gin.Context) (webhookReq, string, error) {
	var req webhookReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, "", pkgErrors.NewValidation("", "invalid request body: "+err.Error())
	}
	return req, strings.TrimSpace(c.Query("uid")), nil
}
