package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/pokerbankroll/internal/domain"
	"github.com/saradorri/pokerbankroll/internal/infrastructure/auth"
)

// JWTMiddleware creates bearer token authentication middleware
func JWTMiddleware(jwtService auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			RespondError(c, tokenError(domain.ErrCodeTokenMissing, "Authorization header required", nil))
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			RespondError(c, tokenError(domain.ErrCodeTokenInvalid, "Invalid authorization header format", nil))
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := jwtService.ValidateToken(tokenString)
		if errors.Is(err, auth.ErrExpired) {
			RespondError(c, tokenError(domain.ErrCodeTokenInvalid, "Token has expired", err))
			return
		}
		if err != nil {
			RespondError(c, tokenError(domain.ErrCodeTokenInvalid, "Invalid token", err))
			return
		}

		SetActor(c, claims.Actor())
		c.Next()
	}
}

func tokenError(code, message string, err error) *domain.AppError {
	appErr := domain.NewUnauthorizedError(message)
	appErr.Code = code
	appErr.Err = err
	return appErr
}
