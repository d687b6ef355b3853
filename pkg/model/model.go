package model

import "time"

// Task statuses as they appear in the tasks database's status select.
const (
	StatusWaiting    = "waiting"
	StatusInProgress = "in-progress"
	StatusOnHold     = "on-hold"
	StatusDone       = "done"
)

// Priorities, ordered by the select option labels so that the provider's
// ascending sort yields urgent work first.
const (
	PriorityLow       = "low"
	PriorityNormal    = "normal"
	PriorityImportant = "important"
	PriorityUrgent    = "urgent"
)

// Task is one unit of work from the tasks database. All fields beyond ID and
// Title are optional; normalization substitutes zero values for anything the
// provider record is missing.
type Task struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Status        string     `json:"status"`
	Area          string     `json:"area"`
	Priority      string     `json:"priority"`
	DueDate       *time.Time `json:"dueDate"`
	CompletedDate *time.Time `json:"completedDate"`
	Memo          string     `json:"memo"`
	URL           string     `json:"url"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// Routine is a recurring habit record, read-only here.
type Routine struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Frequency string `json:"frequency"`
	Area      string `json:"area"`
	Completed bool   `json:"completed"`
	Memo      string `json:"memo"`
	URL       string `json:"url"`
}

// CalendarEvent is a provider-supplied scheduled event, read-only here.
// Start and End keep the provider's own representation: a date-only string
// for all-day events, RFC 3339 otherwise.
type CalendarEvent struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Start       string `json:"start"`
	End         string `json:"end"`
	IsAllDay    bool   `json:"isAllDay"`
	Location    string `json:"location,omitempty"`
	HTMLLink    string `json:"htmlLink,omitempty"`
	Status      string `json:"status,omitempty"`
}

// Event kinds for the merged dashboard view.
const (
	EventKindCalendar = "calendar"
	EventKindTask     = "task"
)

// Event is the transient union consumed by the dashboard: either a calendar
// event or a task with a due date. Built fresh on every aggregation request,
// never persisted.
type Event struct {
	Kind     string         `json:"type"`
	Start    string         `json:"start"`
	Title    string         `json:"title"`
	Calendar *CalendarEvent `json:"event,omitempty"`
	Task     *Task          `json:"task,omitempty"`
}

// Weather is the normalized current-conditions payload.
type Weather struct {
	Temp        int     `json:"temp"`
	FeelsLike   int     `json:"feelsLike"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
	City        string  `json:"city"`
}
