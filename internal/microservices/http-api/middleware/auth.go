package middleware

import (
	"net/http"
	"strings"

	"cineverse/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

// Context keys set for authenticated requests
const (
	ContextKeyClaims = "claims"
	ContextKeyUserID = "userID"
	ContextKeyEmail  = "email"
	ContextKeyName   = "name"

	// TokenCookieName is the cookie login sets alongside the JSON token.
	TokenCookieName = "token"
)

// TokenValidator is the part of the auth service the guard needs.
type TokenValidator interface {
	ValidateToken(tokenString string) (*service.Claims, error)
}

// AuthMiddleware is a Gin middleware for JWT authentication of API requests.
// It accepts "Authorization: Bearer <token>" and falls back to the token cookie.
func AuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ExtractToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "No token provided",
				"code":  service.KindUnauthenticated,
			})
			return
		}

		claims, err := validator.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": service.ErrInvalidToken.Message,
				"code":  service.KindUnauthenticated,
			})
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// OptionalAuth attaches the caller's identity when a valid token is present
// and otherwise lets the request through anonymously.
func OptionalAuth(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := ExtractToken(c); tokenString != "" {
			if claims, err := validator.ValidateToken(tokenString); err == nil {
				setClaims(c, claims)
			}
		}
		c.Next()
	}
}

// ExtractToken returns the bearer token, or the token cookie, or "".
func ExtractToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		// format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}

	if cookie, err := c.Cookie(TokenCookieName); err == nil {
		return cookie
	}
	return ""
}

// UserID returns the authenticated user's id, or "" for anonymous requests.
func UserID(c *gin.Context) string {
	return c.GetString(ContextKeyUserID)
}

func setClaims(c *gin.Context, claims *service.Claims) {
	c.Set(ContextKeyClaims, claims)
	c.Set(ContextKeyUserID, claims.UserID)
	c.Set(ContextKeyEmail, claims.Email)
	c.Set(ContextKeyName, claims.Name)
}
