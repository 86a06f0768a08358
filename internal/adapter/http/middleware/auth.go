package middleware

import (
	"net/http"
	"strings"

	"loki/internal/domain/entities"
	"loki/internal/infrastructure/auth"
	"loki/pkg"

	"github.com/gin-gonic/gin"
)

const sessionKey = "loki.session"

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authorization header required", http.StatusUnauthorized)
	errBadToken     = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Insufficient role", http.StatusForbidden)
)

type TokenVerifier interface {
	Verify(token string) (auth.Session, error)
}

// RequireAuth rejects requests without a valid bearer token and stores the
// caller's session in the gin context.
func RequireAuth(v TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}
		s, err := v.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(errBadToken.HTTPStatus, errBadToken.ToHTTPError())
			return
		}
		c.Set(sessionKey, s)
		c.Next()
	}
}

// OptionalAuth attaches a session when a token is present. A present but
// invalid token is still rejected.
func OptionalAuth(v TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}
		s, err := v.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(errBadToken.HTTPStatus, errBadToken.ToHTTPError())
			return
		}
		c.Set(sessionKey, s)
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func RequireRole(role entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := SessionFrom(c)
		if !ok {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}
		if s.Role != role {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

func SessionFrom(c *gin.Context) (auth.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return auth.Session{}, false
	}
	s, ok := v.(auth.Session)
	return s, ok
}

// WithSession stores s on the context. Handler tests use it in place of a
// signed token.
func WithSession(s auth.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(sessionKey, s)
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	h := strings.TrimSpace(c.GetHeader("Authorization"))
	if h == "" {
		return "", false
	}
	scheme, token, found := strings.Cut(h, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
