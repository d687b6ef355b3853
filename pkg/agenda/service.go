package agenda

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/harrisonrobin/homeboard/pkg/model"
)

// TaskSource is the slice of the document-database provider the aggregation
// layer reads from.
type TaskSource interface {
	ActiveTasks(ctx context.Context) ([]model.Task, error)
	CompletedTasks(ctx context.Context) ([]model.Task, error)
	Routines(ctx context.Context) ([]model.Routine, error)
}

// EventSource is the calendar provider's read surface.
type EventSource interface {
	Events(ctx context.Context, min, max time.Time) ([]model.CalendarEvent, error)
}

// Service fetches heterogeneous records from both providers, buckets tasks by
// status, and merges calendar events with task due dates into the dashboard's
// unified views. Each provider query degrades independently: a failure logs
// and yields an empty result set, never a failed response.
type Service struct {
	tasks  TaskSource
	events EventSource
	logger *log.Logger

	now func() time.Time
}

// NewService wires the aggregation layer to its two providers.
func NewService(tasks TaskSource, events EventSource, logger *log.Logger) *Service {
	return &Service{
		tasks:  tasks,
		events: events,
		logger: logger,
		now:    time.Now,
	}
}

// TaskBuckets groups tasks by status for the dashboard.
type TaskBuckets struct {
	Waiting    []model.Task `json:"waiting"`
	InProgress []model.Task `json:"inProgress"`
	OnHold     []model.Task `json:"onHold"`
	Completed  []model.Task `json:"completed"`
}

// Snapshot is one tasks-and-routines aggregation result.
type Snapshot struct {
	Tasks    *TaskBuckets    `json:"tasks,omitempty"`
	Routines []model.Routine `json:"routines,omitempty"`
}

// Aggregation kinds for TasksAndRoutines.
const (
	KindAll      = "all"
	KindTasks    = "tasks"
	KindRoutines = "routines"
)

// TasksAndRoutines aggregates the requested record kinds. Bucketing by status
// happens here, after normalization, not in the provider query.
func (s *Service) TasksAndRoutines(ctx context.Context, kind string) Snapshot {
	var snap Snapshot

	if kind == KindAll || kind == KindTasks {
		snap.Tasks = &TaskBuckets{
			Waiting:    []model.Task{},
			InProgress: []model.Task{},
			OnHold:     []model.Task{},
			Completed:  []model.Task{},
		}

		active, err := s.tasks.ActiveTasks(ctx)
		if err != nil {
			s.logger.Error("fetching active tasks", "err", err)
		}
		for _, task := range active {
			switch task.Status {
			case model.StatusWaiting:
				snap.Tasks.Waiting = append(snap.Tasks.Waiting, task)
			case model.StatusInProgress:
				snap.Tasks.InProgress = append(snap.Tasks.InProgress, task)
			case model.StatusOnHold:
				snap.Tasks.OnHold = append(snap.Tasks.OnHold, task)
			}
		}

		completed, err := s.tasks.CompletedTasks(ctx)
		if err != nil {
			s.logger.Error("fetching completed tasks", "err", err)
		} else {
			snap.Tasks.Completed = completed
		}
	}

	if kind == KindAll || kind == KindRoutines {
		routines, err := s.tasks.Routines(ctx)
		if err != nil {
			s.logger.Error("fetching routines", "err", err)
			routines = []model.Routine{}
		}
		snap.Routines = routines
	}

	return snap
}

// TodayEvents returns the calendar events of the current local day.
func (s *Service) TodayEvents(ctx context.Context) []model.CalendarEvent {
	now := s.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.Add(24*time.Hour - time.Millisecond)
	return s.eventsBetween(ctx, start, end)
}

// UpcomingEvents returns the calendar events of the next days days.
func (s *Service) UpcomingEvents(ctx context.Context, days int) []model.CalendarEvent {
	now := s.now()
	return s.eventsBetween(ctx, now, now.AddDate(0, 0, days))
}

func (s *Service) eventsBetween(ctx context.Context, min, max time.Time) []model.CalendarEvent {
	events, err := s.events.Events(ctx, min, max)
	if err != nil {
		s.logger.Error("fetching calendar events", "err", err)
		return []model.CalendarEvent{}
	}
	return events
}
