package auth

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const testPassword = "correct horse battery staple"

func newTestSessions(t *testing.T) *Sessions {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash test password: %v", err)
	}
	return NewSessions("test-signing-secret", string(hash), false)
}

func TestVerifyPassword(t *testing.T) {
	s := newTestSessions(t)

	if err := s.VerifyPassword(testPassword); err != nil {
		t.Errorf("correct password rejected: %v", err)
	}
	if err := s.VerifyPassword("wrong"); !errors.Is(err, ErrBadCredentials) {
		t.Errorf("expected ErrBadCredentials, got %v", err)
	}
	if err := s.VerifyPassword(""); !errors.Is(err, ErrMissingPassword) {
		t.Errorf("expected ErrMissingPassword, got %v", err)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	s := newTestSessions(t)

	token, err := s.IssueToken()
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}
	if err := s.VerifyToken(token); err != nil {
		t.Errorf("freshly issued token rejected: %v", err)
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	s := newTestSessions(t)
	s.now = func() time.Time { return time.Now().Add(-TokenTTL - time.Hour) }

	token, err := s.IssueToken()
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}
	if err := s.VerifyToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected expired token to be rejected, got %v", err)
	}
}

func TestVerifyToken_JustInsideTTL(t *testing.T) {
	s := newTestSessions(t)
	s.now = func() time.Time { return time.Now().Add(-TokenTTL + time.Hour) }

	token, err := s.IssueToken()
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}
	if err := s.VerifyToken(token); err != nil {
		t.Errorf("token inside its TTL rejected: %v", err)
	}
}

func TestVerifyToken_Tampered(t *testing.T) {
	s := newTestSessions(t)

	token, err := s.IssueToken()
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	tampered := token + "x"
	if err := s.VerifyToken(tampered); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected tampered token to be rejected, got %v", err)
	}

	other := NewSessions("a-different-secret", "", false)
	if err := other.VerifyToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected foreign-secret token to be rejected, got %v", err)
	}

	if err := s.VerifyToken("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected malformed token to be rejected, got %v", err)
	}
}

func TestCookies(t *testing.T) {
	s := newTestSessions(t)

	set := s.SessionCookie("tok")
	if set.Name != CookieName || set.Value != "tok" {
		t.Errorf("unexpected session cookie: %+v", set)
	}
	if !set.HttpOnly || set.Path != "/" {
		t.Errorf("session cookie must be HttpOnly and site-wide: %+v", set)
	}
	if set.MaxAge != int(TokenTTL.Seconds()) {
		t.Errorf("unexpected Max-Age %d", set.MaxAge)
	}
	if set.Secure {
		t.Error("development cookies must not be Secure")
	}

	cleared := s.ClearedCookie()
	if cleared.Value != "" || cleared.MaxAge >= 0 {
		t.Errorf("cleared cookie must expire immediately: %+v", cleared)
	}
	if cleared.SameSite != set.SameSite {
		t.Error("set and cleared cookies must share a SameSite policy")
	}

	prod := NewSessions("secret", "", true)
	if !prod.SessionCookie("tok").Secure {
		t.Error("production cookies must be Secure")
	}
}
