package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"sanad/internal/infrastructure/auth"
	"sanad/internal/shared/authorization"
	"sanad/internal/shared/constants"
	"sanad/internal/shared/logger"
	"sanad/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RequireAuth verifies the bearer token and stores the caller's identity
// on the request context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, constants.MsgNotAuthenticated)
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(token)
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyExternalUserID, claims.ExternalUserID())
		c.Set(constants.ContextKeyUserEmail, claims.Email)
		c.Set(constants.ContextKeyGivenName, claims.GivenName)
		c.Set(constants.ContextKeyFamilyName, claims.FamilyName)
		c.Set(constants.ContextKeyIsAdmin, authorization.IsAdmin(claims.Permissions))

		c.Next()
	}
}

// OptionalAuth parses the token when present but lets anonymous requests
// through. Used on read endpoints where admins see extra content.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := m.jwtService.Verify(token)
		if err != nil {
			c.Next()
			return
		}

		c.Set(constants.ContextKeyExternalUserID, claims.ExternalUserID())
		c.Set(constants.ContextKeyUserEmail, claims.Email)
		c.Set(constants.ContextKeyGivenName, claims.GivenName)
		c.Set(constants.ContextKeyFamilyName, claims.FamilyName)
		c.Set(constants.ContextKeyIsAdmin, authorization.IsAdmin(claims.Permissions))

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
