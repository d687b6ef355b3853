package notion

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jomei/notionapi"

	"github.com/harrisonrobin/homeboard/pkg/model"
)

// Property names in the tasks and routines databases. The databases
// themselves are addressed by configured IDs; only the schema is fixed here.
const (
	propTitle     = "Name"
	propStatus    = "Status"
	propArea      = "Area"
	propPriority  = "Priority"
	propDue       = "Due"
	propCompleted = "Completed"
	propMemo      = "Memo"
	propFrequency = "Frequency"
	propDone      = "Done"
)

var (
	// ErrMissingTitle is returned when a task is created without a title.
	ErrMissingTitle = errors.New("task title is required")
	// ErrMissingID is returned when an update or delete names no record.
	ErrMissingID = errors.New("task id is required")
	// ErrBadDate is returned when a due date is not an ISO 8601 date.
	ErrBadDate = errors.New("due date must be an ISO 8601 date")
)

// Client is the document-database provider client. One authenticated client
// is shared read-only across requests.
type Client struct {
	api        *notionapi.Client
	tasksDB    notionapi.DatabaseID
	routinesDB notionapi.DatabaseID

	completedLimit int
	now            func() time.Time
}

// NewClient builds a provider client for the given integration token and
// database IDs. completedLimit caps the recently-completed query.
func NewClient(token, tasksDB, routinesDB string, completedLimit int) *Client {
	return &Client{
		api:            notionapi.NewClient(notionapi.Token(token)),
		tasksDB:        notionapi.DatabaseID(tasksDB),
		routinesDB:     notionapi.DatabaseID(routinesDB),
		completedLimit: completedLimit,
		now:            time.Now,
	}
}

// ActiveTasks returns every waiting, in-progress, and on-hold task, sorted by
// priority then due date ascending. Bucketing by status happens downstream.
func (c *Client) ActiveTasks(ctx context.Context) ([]model.Task, error) {
	resp, err := c.api.Database.Query(ctx, c.tasksDB, &notionapi.DatabaseQueryRequest{
		Filter: notionapi.OrCompoundFilter{
			statusEquals(model.StatusWaiting),
			statusEquals(model.StatusInProgress),
			statusEquals(model.StatusOnHold),
		},
		Sorts: []notionapi.SortObject{
			{Property: propPriority, Direction: notionapi.SortOrderASC},
			{Property: propDue, Direction: notionapi.SortOrderASC},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("query active tasks: %w", err)
	}
	return tasksFromPages(resp.Results), nil
}

// CompletedTasks returns the most recently completed tasks, newest first.
func (c *Client) CompletedTasks(ctx context.Context) ([]model.Task, error) {
	resp, err := c.api.Database.Query(ctx, c.tasksDB, &notionapi.DatabaseQueryRequest{
		Filter: statusEquals(model.StatusDone),
		Sorts: []notionapi.SortObject{
			{Property: propCompleted, Direction: notionapi.SortOrderDESC},
		},
		PageSize: c.completedLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("query completed tasks: %w", err)
	}
	tasks := tasksFromPages(resp.Results)
	if len(tasks) > c.completedLimit {
		tasks = tasks[:c.completedLimit]
	}
	return tasks, nil
}

// Routines returns all routines sorted by frequency ascending.
func (c *Client) Routines(ctx context.Context) ([]model.Routine, error) {
	resp, err := c.api.Database.Query(ctx, c.routinesDB, &notionapi.DatabaseQueryRequest{
		Sorts: []notionapi.SortObject{
			{Property: propFrequency, Direction: notionapi.SortOrderASC},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("query routines: %w", err)
	}
	routines := make([]model.Routine, 0, len(resp.Results))
	for _, page := range resp.Results {
		routines = append(routines, RoutineFromPage(page))
	}
	return routines, nil
}

func statusEquals(status string) notionapi.PropertyFilter {
	return notionapi.PropertyFilter{
		Property: propStatus,
		Select:   &notionapi.SelectFilterCondition{Equals: status},
	}
}

func tasksFromPages(pages []notionapi.Page) []model.Task {
	tasks := make([]model.Task, 0, len(pages))
	for _, page := range pages {
		tasks = append(tasks, TaskFromPage(page))
	}
	return tasks
}
