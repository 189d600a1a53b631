package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "omi-relay/pkg/errors"
)

// processSaveReq binds the save memory request body.
func (h *handler) processSaveReq(c *gin.Context) (saveReq, error) {
	var req saveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewValidation("", "invalid request body: "+err.Error())
	}
	return req, nil
}

// processSearchReq binds the search query parameters.
func (h *handler) processSearchReq(c *gin.Context) (searchReq, error) {
	var req searchReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewValidation("", "invalid query: "+err.Error())
	}
	return req, nil
}
