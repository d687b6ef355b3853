package auth

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func gateFixture(t *testing.T) (*Sessions, http.Handler) {
	t.Helper()

	s := newTestSessions(t)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("protected"))
	})
	return s, s.Gate(log.New(io.Discard), next)
}

func TestGate_NoCookieRedirects(t *testing.T) {
	_, gate := gateFixture(t)

	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tasks-and-routines", nil))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != LoginPath {
		t.Errorf("expected redirect to %s, got %s", LoginPath, loc)
	}
}

func TestGate_ValidTokenPasses(t *testing.T) {
	s, gate := gateFixture(t)

	token, err := s.IssueToken()
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/tasks-and-routines", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestGate_InvalidTokenClearsCookieAndRedirects(t *testing.T) {
	_, gate := gateFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "garbage"})
	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect, got %d", rec.Code)
	}

	var cleared bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == CookieName && c.Value == "" && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("expected the stale cookie to be cleared")
	}
}

func TestGate_PublicPathsBypass(t *testing.T) {
	_, gate := gateFixture(t)

	for _, path := range []string{"/login", "/auth/login", "/auth/logout", "/weather", "/favicon.ico"} {
		rec := httptest.NewRecorder()
		gate.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected the gate to pass public paths through, got %d", path, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "protected") {
			t.Errorf("%s: expected the wrapped handler to run", path)
		}
	}
}
