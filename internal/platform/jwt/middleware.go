package jwtmw

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ContextUserID is the gin context key under which the authenticated user's ID is stored.
const ContextUserID = "userID"

// SessionCookie is the name of the cookie carrying the session token for browser requests.
const SessionCookie = "session_token"

// errNoToken is returned when the request carries no session token at all.
var errNoToken = errors.New("no session token")

// AuthRequired returns a middleware that restricts access to authenticated
// users. Invalid, missing or expired tokens are rejected with 401 JSON,
// which suits API routes.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := authenticate(c, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// PageAuthRequired is the browser-facing variant of AuthRequired: instead of
// a JSON error, unauthenticated requests are redirected to the login page.
func PageAuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := authenticate(c, secret)
		if err != nil {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// authenticate extracts the session token from the request and verifies it.
// The Authorization header takes precedence over the session cookie.
func authenticate(c *gin.Context, secret string) (uint, error) {
	tokenStr := tokenFromRequest(c)
	if tokenStr == "" {
		return 0, errNoToken
	}

	// Parse and verify the signature. Only HMAC is accepted: a token
	// signed with "none" or an asymmetric algorithm is tampered by definition.
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return 0, jwt.ErrTokenUnverifiable
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, jwt.ErrTokenInvalidClaims
	}
	sub, ok := claims["sub"].(float64) // JWT numbers decode as float64
	if !ok {
		return 0, jwt.ErrTokenInvalidClaims
	}
	return uint(sub), nil
}

// tokenFromRequest returns the bearer token from the Authorization header,
// falling back to the session cookie set at login.
func tokenFromRequest(c *gin.Context) string {
	if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}
	return ""
}
