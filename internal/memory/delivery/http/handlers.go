package http

import (
	"github.com/gin-gonic/gin"

	"omi-relay/pkg/response"
)

// Save godoc
// @Summary     Save a memory
// @Description Embeds the content and stores it in the vector index for the user.
// @Tags        Memory
// @Accept      json
// @Produce     json
// @Param       body body saveReq true "Memory to save"
// @Success     200  {object} saveResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Downstream or configuration error"
// @Router      /memories [POST]
func (h *handler) Save(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSaveReq(c)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	output, err := h.uc.Save(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Save: %v", err)
		response.HandleError(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSaveResp(output))
}

// Search godoc
// @Summary     Search memories
// @Description Returns the user's memories most similar to the query.
// @Tags        Memory
// @Accept      json
// @Produce     json
// @Param       user_id query string true  "User ID"
// @Param       q       query string true  "Search query"
// @Param       limit   query int    false "Max results (default: memory.top_k)"
// @Success     200 {object} searchResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Downstream or configuration error"
// @Router      /memories/search [GET]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchReq(c)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	output, err := h.uc.Search(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Search: %v", err)
		response.HandleError(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSearchResp(output))
}
