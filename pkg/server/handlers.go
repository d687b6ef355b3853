package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/harrisonrobin/homeboard/pkg/agenda"
	"github.com/harrisonrobin/homeboard/pkg/auth"
	"github.com/harrisonrobin/homeboard/pkg/model"
	"github.com/harrisonrobin/homeboard/pkg/notion"
	"github.com/harrisonrobin/homeboard/pkg/weather"
)

func (s *Server) tasksAndRoutines(w http.ResponseWriter, r *http.Request) {
	kind := r.URL.Query().Get("type")
	if kind == "" {
		kind = agenda.KindAll
	}
	snap := s.agenda.TasksAndRoutines(r.Context(), kind)
	ok(w, envelope{"data": snap})
}

func (s *Server) calendarEvents(w http.ResponseWriter, r *http.Request) {
	kind := r.URL.Query().Get("type")
	days := s.upcomingDays
	if v := r.URL.Query().Get("days"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			days = n
		}
	}

	events := []model.CalendarEvent{}
	switch kind {
	case "upcoming":
		events = s.agenda.UpcomingEvents(r.Context(), days)
	default:
		events = s.agenda.TodayEvents(r.Context())
	}
	ok(w, envelope{"events": events})
}

func (s *Server) dashboard(w http.ResponseWriter, r *http.Request) {
	days := s.upcomingDays
	if v := r.URL.Query().Get("days"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			days = n
		}
	}
	ok(w, envelope{"data": s.agenda.Merge(r.Context(), days)})
}

func (s *Server) currentWeather(w http.ResponseWriter, r *http.Request) {
	data, err := s.weather.Current()
	if err != nil {
		if errors.Is(err, weather.ErrNotConfigured) {
			// Optional integration: report unconfigured without an error status.
			writeJSON(w, http.StatusOK, envelope{"success": false, "error": err.Error()})
			return
		}
		s.logger.Error("weather request", "err", err)
		fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	ok(w, envelope{"data": data})
}

func (s *Server) createTask(w http.ResponseWriter, r *http.Request) {
	var draft notion.TaskDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		fail(w, http.StatusBadRequest, "invalid json")
		return
	}

	task, err := s.tasks.CreateTask(r.Context(), draft)
	if err != nil {
		s.writeTaskErr(w, "create task", err)
		return
	}
	ok(w, envelope{"data": task})
}

type patchIn struct {
	ID string `json:"id"`
	notion.TaskPatch
}

func (s *Server) patchTask(w http.ResponseWriter, r *http.Request) {
	var in patchIn
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		fail(w, http.StatusBadRequest, "invalid json")
		return
	}

	task, err := s.tasks.UpdateTask(r.Context(), in.ID, in.TaskPatch)
	if err != nil {
		s.writeTaskErr(w, "update task", err)
		return
	}
	ok(w, envelope{"data": task})
}

func (s *Server) deleteTask(w http.ResponseWriter, r *http.Request) {
	var in struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		fail(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := s.tasks.DeleteTask(r.Context(), in.ID); err != nil {
		s.writeTaskErr(w, "delete task", err)
		return
	}
	ok(w, envelope{})
}

// writeTaskErr maps mutation failures onto the envelope: validation errors
// are client errors, everything else is an upstream failure.
func (s *Server) writeTaskErr(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, notion.ErrMissingTitle),
		errors.Is(err, notion.ErrMissingID),
		errors.Is(err, notion.ErrBadDate):
		fail(w, http.StatusBadRequest, err.Error())
	default:
		s.logger.Error(op, "err", err)
		fail(w, http.StatusInternalServerError, err.Error())
	}
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		fail(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := s.sessions.VerifyPassword(in.Password); err != nil {
		if errors.Is(err, auth.ErrMissingPassword) {
			fail(w, http.StatusBadRequest, err.Error())
			return
		}
		fail(w, http.StatusUnauthorized, err.Error())
		return
	}

	token, err := s.sessions.IssueToken()
	if err != nil {
		s.logger.Error("issuing session token", "err", err)
		fail(w, http.StatusInternalServerError, "login failed")
		return
	}

	http.SetCookie(w, s.sessions.SessionCookie(token))
	ok(w, envelope{"message": "logged in"})
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, s.sessions.ClearedCookie())
	ok(w, envelope{"message": "logged out"})
}
