package server

import (
	"embed"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

func (s *Server) loginPage(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, "login.html", nil)
}

func (s *Server) dashboardPage(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, "dashboard.html", map[string]int{
		"RefreshSeconds": s.refreshSeconds,
		"UpcomingDays":   s.upcomingDays,
	})
}

func (s *Server) renderPage(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		s.logger.Error("rendering page", "page", name, "err", err)
	}
}
