package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "omi-relay/pkg/errors"
	"omi-relay/pkg/response"
)

// Webhook godoc
// @Summary     Receive an Omi transcript
// @Description Detects the wake phrase, asks the model and sends the answer as an Omi notification.
// @Description Transcripts without a wake phrase or help request are ignored.
// @Tags        Relay
// @Accept      json
// @Produce     json
// @Param       uid  query string     false "Notification target (default: session_id)"
// @Param       body body  webhookReq true  "Transcript event"
// @Success     200  {object} outcomeResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Invalid webhook secret"
// @Failure     500  {object} response.Resp "Downstream or configuration error"
// @Router      /omi-webhook [POST]
func (h *handler) Webhook(c *gin.Context) {
	ctx := c.Request.Context()

	req, uid, err := h.processWebhookReq(c)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	out, err := h.uc.Process(ctx, req.toInput(uid))
	if err != nil {
		err = h.mapError(err)
		if _, ok := pkgErrors.AsValidation(err); ok {
			h.l.Warnf(ctx, "uc.Process: %v", err)
		} else {
			h.l.Errorf(ctx, "uc.Process: %v", err)
		}
		response.HandleError(c, err)
		return
	}

	response.OK(c, h.newOutcomeResp(out))
}

// Help godoc
// @Summary     Usage guide
// @Description Static guide on how to talk to the assistant.
// @Tags        Relay
// @Produce     json
// @Success     200 {object} helpResp
// @Router      /help [GET]
func (h *handler) Help(c *gin.Context) {
	response.OK(c, h.newHelpResp(h.uc.Help()))
}

// Conversation godoc
// @Summary     Cached conversation
// @Description Returns the turns kept as context for a session.
// @Tags        Relay
// @Produce     json
// @Param       sessionId path string true "Session ID"
// @Success     200 {object} conversationResp
// @Router      /conversation/{sessionId} [GET]
func (h *handler) Conversation(c *gin.Context) {
	response.OK(c, h.newConversationResp(h.uc.Conversation(c.Param("sessionId"))))
}

// RateLimit godoc
// @Summary     Rate limit counters
// @Description Returns the token bucket state and counters of a user.
// @Tags        Relay
// @Produce     json
// @Param       userId path string true "User ID"
// @Success     200 {object} rateLimitResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /rate-limit/{userId} [GET]
func (h *handler) RateLimit(c *gin.Context) {
	ctx := c.Request.Context()

	view, err := h.uc.RateLimit(c.Param("userId"))
	if err != nil {
		h.l.Warnf(ctx, "uc.RateLimit: %v", err)
		response.HandleError(c, h.mapError(err))
		return
	}

	response.OK(c, h.newRateLimitResp(view))
}
