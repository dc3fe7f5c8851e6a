package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"blog-api/helper"
	"blog-api/models"
	"blog-api/repositories"
	"blog-api/services"

	"github.com/gin-gonic/gin"
)

// UserKey is the gin context key holding the authenticated *models.User.
const UserKey = "user"

const bearerPrefix = "bearer "

// UserResolver looks a user up by id. services.AuthService satisfies it.
type UserResolver interface {
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
}

func AuthMiddleware(tokens services.TokenService, users UserResolver, h *helper.HTTPHelper) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if len(authHeader) < len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			h.SendError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			return
		}

		tokenString := strings.TrimSpace(authHeader[len(bearerPrefix):])
		if tokenString == "" {
			h.SendError(c, http.StatusUnauthorized, "Token not provided")
			return
		}

		userID, err := tokens.Verify(tokenString)
		if err != nil {
			h.SendError(c, http.StatusUnauthorized, tokenErrorMessage(err))
			return
		}

		user, err := users.GetUserByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				h.SendError(c, http.StatusUnauthorized, "User not found")
				return
			}
			h.Log.WithError(err).WithField("user_id", userID).Error("authMiddleware error")
			h.SendError(c, http.StatusInternalServerError, "Internal server error")
			return
		}

		c.Set(UserKey, user)
		c.Next()
	}
}

func tokenErrorMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrTokenExpired):
		return "Token has expired"
	case errors.Is(err, services.ErrTokenInvalid):
		return "Invalid token"
	case errors.Is(err, services.ErrTokenPayload):
		return "Invalid token payload"
	default:
		return "Token verification failed"
	}
}

// CurrentUser returns the user attached by AuthMiddleware.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(UserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
