package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/saradorri/pokerbankroll/internal/domain"
	"github.com/saradorri/pokerbankroll/internal/infrastructure/logger"
)

// Keys stored on the gin context
const (
	RequestIDKey = "request_id"
	UserIDKey    = "user_id"
	UsernameKey  = "username"
)

// SetActor records the authenticated identity on the gin context and the request context
func SetActor(c *gin.Context, actor domain.Actor) {
	c.Set(UserIDKey, actor.UserID)
	c.Set(UsernameKey, actor.Username)

	c.Request = c.Request.WithContext(logger.ContextWithUserID(c.Request.Context(), actor.UserID))
}

// GetActor returns the identity set by an auth middleware
func GetActor(c *gin.Context) (domain.Actor, bool) {
	userID, ok := c.Get(UserIDKey)
	if !ok {
		return domain.Actor{}, false
	}
	id, ok := userID.(int64)
	if !ok || id <= 0 {
		return domain.Actor{}, false
	}
	return domain.Actor{UserID: id, Username: c.GetString(UsernameKey)}, true
}

// GetRequestID returns the id assigned by RequestIDMiddleware
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
