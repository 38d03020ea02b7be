package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/mhmdhisham/eventgate/internal/helpers"
	"github.com/mhmdhisham/eventgate/internal/models"
	"github.com/mhmdhisham/eventgate/internal/repository"
)

const userContextKey = "current_user"

// extractToken pulls the session token from the Authorization header
// (with or without the Bearer prefix) or the x-auth-token fallback.
// Browsers that forgot to log out send the literal strings "undefined"
// and "null"; treat those as no token.
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		token := authHeader
		if strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimPrefix(authHeader, "Bearer ")
		}
		if token != "" && token != "undefined" && token != "null" {
			return token
		}
	}

	if token := c.GetHeader("x-auth-token"); token != "" && token != "undefined" && token != "null" {
		return token
	}
	return ""
}

// Authenticate verifies the session token and re-resolves it to a live
// account; a cryptographically valid token for a deleted account is still
// rejected.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			helpers.RespondWithError(c, http.StatusUnauthorized, "No token provided, authorization denied")
			c.Abort()
			return
		}

		claims, err := helpers.ParseToken(token)
		if err != nil {
			msg := "Token verification failed"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			}
			helpers.RespondWithError(c, http.StatusUnauthorized, msg)
			c.Abort()
			return
		}

		users := repository.NewUserRepository(GetDB(c))
		user, err := users.FindByID(c.Request.Context(), claims.UserID.String())
		if err != nil {
			helpers.RespondWithError(c, http.StatusUnauthorized, "User not found")
			c.Abort()
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// RequireRole allows the request through only when the authenticated
// account's role is in the given set. No hierarchy: every permission list
// is explicit.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			helpers.RespondWithError(c, http.StatusUnauthorized, "No token provided, authorization denied")
			c.Abort()
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		helpers.RespondWithError(c, http.StatusForbidden, "Access denied. Insufficient permissions.")
		c.Abort()
	}
}

func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
