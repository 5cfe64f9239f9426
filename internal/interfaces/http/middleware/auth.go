package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"brand-connector.backend/internal/domain/entities"
	domainerrors "brand-connector.backend/internal/domain/errors"
	"brand-connector.backend/internal/interfaces/http/response"
	"brand-connector.backend/pkg/logger"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// UserKey is the gin context key holding the resolved *entities.User
	UserKey = "user"
	// UserIDKey is the gin context key for the caller's id as a string
	UserIDKey = "user_id"
)

// TokenAuthenticator resolves a bearer token to the user it was issued to
type TokenAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*entities.User, error)
}

// AuthMiddleware rejects requests without a valid "<scheme> <token>"
// Authorization header. The scheme itself is not checked.
func AuthMiddleware(auth TokenAuthenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			logger.Warn(c.Request.Context(), "Authorization header is missing", zap.String("path", c.Request.URL.Path))
			response.Abort(c, domainerrors.Unauthorized("missing authorization header"))
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 {
			logger.Warn(c.Request.Context(), "Malformed authorization header", zap.String("path", c.Request.URL.Path))
			response.Abort(c, domainerrors.Unauthorized("invalid authorization header"))
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), parts[1])
		if err != nil {
			logger.Warn(c.Request.Context(), "Token rejected", zap.String("path", c.Request.URL.Path), zap.Error(err))
			response.Abort(c, err)
			return
		}

		c.Set(UserKey, user)
		c.Set(UserIDKey, user.ID.String())
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), user.ID.String()))

		c.Next()
	}
}

// GetCurrentUser gets the authenticated user from context
func GetCurrentUser(c *gin.Context) (*entities.User, bool) {
	v, exists := c.Get(UserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*entities.User)
	return user, ok && user != nil
}

// RequireRole creates a middleware that requires one of the given roles
func RequireRole(roles ...entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetCurrentUser(c)
		if !ok {
			response.Abort(c, domainerrors.Unauthorized("authentication required"))
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		logger.Warn(c.Request.Context(), "Insufficient role",
			zap.String("role", string(user.Role)),
			zap.String("path", c.Request.URL.Path),
		)
		response.Abort(c, domainerrors.Forbidden("insufficient permissions"))
	}
}
