package auth

import (
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
)

// LoginPath is where the gate sends requests without a valid session.
const LoginPath = "/login"

// publicPrefixes bypass the gate entirely: the login page, the auth
// endpoints, the config-gated weather passthrough, and browser furniture.
var publicPrefixes = []string{
	LoginPath,
	"/auth/",
	"/weather",
	"/favicon.ico",
}

func public(path string) bool {
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// Gate intercepts every request outside the public allow-list. A missing
// token redirects to the login page; an invalid one additionally clears the
// stale cookie. This is a page-level gate, so failures navigate rather than
// returning a JSON error.
func (s *Sessions) Gate(logger *log.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if public(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		cookie, err := r.Cookie(CookieName)
		if err != nil {
			http.Redirect(w, r, LoginPath, http.StatusSeeOther)
			return
		}

		if err := s.VerifyToken(cookie.Value); err != nil {
			logger.Debug("rejected session token", "path", r.URL.Path, "err", err)
			http.SetCookie(w, s.ClearedCookie())
			http.Redirect(w, r, LoginPath, http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}
