package model

import "time"

// DateOnly is the layout the tasks database uses for due and completed dates.
const DateOnly = "2006-01-02"

// truncateToDay zeroes the time-of-day component in t's own location.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Overdue reports whether due falls on a calendar day strictly before now's.
// The comparison is date-only; time of day never makes a task overdue.
func Overdue(due, now time.Time) bool {
	return truncateToDay(due).Before(truncateToDay(now))
}

// SameDay reports whether a and b fall on the same calendar day, each in its
// own location. No timezone normalization beyond what the values carry.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// ParseEventStart parses a unified event's start, which is either a date-only
// string (all-day events, task due dates) or RFC 3339.
func ParseEventStart(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation(DateOnly, s, time.Local)
}

// TaskOverdue reports whether the task carries a due date in the past and is
// not done. Used for display emphasis only.
func (t Task) TaskOverdue(now time.Time) bool {
	if t.DueDate == nil || t.Status == StatusDone {
		return false
	}
	return Overdue(*t.DueDate, now)
}
