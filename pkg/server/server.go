package server

import (
	"context"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/harrisonrobin/homeboard/pkg/agenda"
	"github.com/harrisonrobin/homeboard/pkg/auth"
	"github.com/harrisonrobin/homeboard/pkg/model"
	"github.com/harrisonrobin/homeboard/pkg/notion"
)

// Aggregator is the read side the handlers consume.
type Aggregator interface {
	TasksAndRoutines(ctx context.Context, kind string) agenda.Snapshot
	TodayEvents(ctx context.Context) []model.CalendarEvent
	UpcomingEvents(ctx context.Context, days int) []model.CalendarEvent
	Merge(ctx context.Context, days int) agenda.Dashboard
}

// TaskWriter is the mutation side against the tasks database.
type TaskWriter interface {
	CreateTask(ctx context.Context, draft notion.TaskDraft) (model.Task, error)
	UpdateTask(ctx context.Context, id string, patch notion.TaskPatch) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

// WeatherSource supplies the optional current-conditions payload.
type WeatherSource interface {
	Current() (model.Weather, error)
}

// Server holds the handler dependencies and the page templates.
type Server struct {
	logger   *log.Logger
	sessions *auth.Sessions
	agenda   Aggregator
	tasks    TaskWriter
	weather  WeatherSource

	upcomingDays   int
	refreshSeconds int
}

// New wires the handler set.
func New(logger *log.Logger, sessions *auth.Sessions, agg Aggregator, tasks TaskWriter, weather WeatherSource, upcomingDays, refreshSeconds int) *Server {
	return &Server{
		logger:         logger,
		sessions:       sessions,
		agenda:         agg,
		tasks:          tasks,
		weather:        weather,
		upcomingDays:   upcomingDays,
		refreshSeconds: refreshSeconds,
	}
}

// Handler registers every route and wraps the mux in the session gate.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.dashboardPage)
	mux.HandleFunc("GET /login", s.loginPage)

	mux.HandleFunc("POST /auth/login", s.login)
	mux.HandleFunc("POST /auth/logout", s.logout)

	mux.HandleFunc("GET /tasks-and-routines", s.tasksAndRoutines)
	mux.HandleFunc("GET /calendar", s.calendarEvents)
	mux.HandleFunc("GET /dashboard", s.dashboard)
	mux.HandleFunc("GET /weather", s.currentWeather)

	mux.HandleFunc("POST /tasks", s.createTask)
	mux.HandleFunc("PATCH /tasks", s.patchTask)
	mux.HandleFunc("DELETE /tasks", s.deleteTask)

	return s.sessions.Gate(s.logger, mux)
}
