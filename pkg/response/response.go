package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "omi-relay/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends a 400 validation error with the error message.
func Error(c *gin.Context, err error, data map[string]interface{}) {
	if data == nil {
		data = make(map[string]interface{})
	}

	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: ValidationErrorCode,
		Message:   err.Error(),
		Data:      data,
	})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// HandleError maps typed errors from pkg/errors onto the response envelope.
// Anything it does not recognise becomes a generic 500.
func HandleError(c *gin.Context, err error) {
	if ve, ok := pkgErrors.AsValidation(err); ok {
		Error(c, ve, nil)
		return
	}
	if up, ok := pkgErrors.AsUpstream(err); ok {
		c.JSON(http.StatusInternalServerError, Resp{
			ErrorCode: UpstreamErrorCode,
			Message:   err.Error(),
			Data: UpstreamData{
				Service:        up.Service,
				UpstreamStatus: up.StatusCode,
				UpstreamBody:   up.Body,
			},
		})
		return
	}
	if ce, ok := pkgErrors.AsConfig(err); ok {
		c.JSON(http.StatusInternalServerError, Resp{
			ErrorCode: ConfigErrorCode,
			Message:   ce.Error(),
		})
		return
	}
	if ne, ok := pkgErrors.AsNetwork(err); ok {
		c.JSON(http.StatusInternalServerError, Resp{
			ErrorCode: NetworkErrorCode,
			Message:   "network error contacting " + ne.Service,
			Data:      UpstreamData{Service: ne.Service},
		})
		return
	}
	InternalError(c, err)
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   "Unauthorized",
	})
}

// Forbidden sends 403 response.
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Resp{
		ErrorCode: http.StatusForbidden,
		Message:   "Forbidden",
	})
}

// NotFound sends 404 response.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Resp{
		ErrorCode: http.StatusNotFound,
		Message:   NotFoundMessage,
	})
}

// MethodNotAllowed sends 405 response.
func MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, Resp{
		ErrorCode: http.StatusMethodNotAllowed,
		Message:   "Method not allowed",
	})
}
