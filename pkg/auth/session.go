package auth

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	// CookieName is the session cookie holding the signed token.
	CookieName = "auth-token"

	// TokenTTL is how long an issued session stays valid.
	TokenTTL = 7 * 24 * time.Hour
)

var (
	// ErrMissingPassword is returned when login is attempted with no password.
	ErrMissingPassword = errors.New("password is required")
	// ErrBadCredentials is returned when the password does not match.
	ErrBadCredentials = errors.New("incorrect password")
	// ErrInvalidToken covers a bad signature, expiry, or malformed token.
	ErrInvalidToken = errors.New("invalid session token")
)

// Sessions issues and verifies the stateless session tokens that gate every
// protected request. There is no server-side session store.
type Sessions struct {
	secret       []byte
	passwordHash []byte
	secure       bool

	now func() time.Time
}

// NewSessions builds the session gate from the signing secret and the bcrypt
// hash of the shared dashboard password. secure controls the cookie's Secure
// flag and should be true outside local development.
func NewSessions(secret, passwordHash string, secure bool) *Sessions {
	return &Sessions{
		secret:       []byte(secret),
		passwordHash: []byte(passwordHash),
		secure:       secure,
		now:          time.Now,
	}
}

// VerifyPassword checks the plaintext password against the stored hash.
func (s *Sessions) VerifyPassword(password string) error {
	if password == "" {
		return ErrMissingPassword
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return ErrBadCredentials
	}
	return nil
}

// IssueToken signs a fresh session token carrying the authentication flag,
// issue time, and a 7-day expiry.
func (s *Sessions) IssueToken() (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"authenticated": true,
		"iat":           now.Unix(),
		"exp":           now.Add(TokenTTL).Unix(),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// VerifyToken checks the token's signature and expiry.
func (s *Sessions) VerifyToken(token string) error {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return ErrInvalidToken
	}
	return nil
}

// SessionCookie wraps an issued token in the site-wide session cookie.
func (s *Sessions) SessionCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(TokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearedCookie overwrites the session cookie with an immediately expiring
// empty value.
func (s *Sessions) ClearedCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
