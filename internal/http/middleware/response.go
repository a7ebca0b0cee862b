package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/saradorri/pokerbankroll/internal/domain"
)

// RespondError aborts the request with the JSON rendering of err.
// Errors that are not an AppError are reported as INTERNAL_ERROR.
func RespondError(c *gin.Context, err error) {
	appErr, ok := domain.IsAppError(err)
	if !ok {
		appErr = domain.NewInternalError("", err)
	}

	resp := *appErr
	resp.RequestID = GetRequestID(c)
	resp.Path = c.Request.URL.Path
	resp.Method = c.Request.Method

	c.AbortWithStatusJSON(resp.HTTPStatus, domain.NewErrorResponse(&resp))
}
