// Package auth verifies the bearer tokens issued by the identity provider and
// issues equivalent tokens for local development.
package auth

import (
	"errors"
	"strings"
	"time"

	"loki/internal/domain/entities"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken  = errors.New("invalid or expired token")
	ErrMissingSecret = errors.New("jwt secret is empty")
)

// Session identifies the caller of one request.
type Session struct {
	UserID string
	Role   entities.Role
}

func (s Session) IsAdmin() bool {
	return s.Role == entities.RoleAdmin
}

// Claims carries the user id in "sub" and the platform role in "user_role".
type Claims struct {
	Role string `json:"user_role,omitempty"`
	jwt.RegisteredClaims
}

type Verifier struct {
	secret []byte
	now    func() time.Time
}

func NewVerifier(secret string) (*Verifier, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	return &Verifier{secret: []byte(secret), now: time.Now}, nil
}

// Verify checks signature, algorithm and expiry. An unknown or missing role
// is read as tenant.
func (v *Verifier) Verify(tokenString string) (Session, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	)
	if err != nil || !token.Valid {
		return Session{}, ErrInvalidToken
	}

	sub := strings.TrimSpace(claims.Subject)
	if sub == "" {
		return Session{}, ErrInvalidToken
	}
	role := entities.Role(claims.Role)
	if !role.Valid() {
		role = entities.RoleTenant
	}
	return Session{UserID: sub, Role: role}, nil
}

// Issue signs a token for subject. Used by cmd/devtoken and tests.
func (v *Verifier) Issue(subject string, role entities.Role, ttl time.Duration) (string, error) {
	now := v.now()
	claims := &Claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}
