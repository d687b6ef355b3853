package model

import (
	"testing"
	"time"
)

func TestOverdue(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.Local)

	cases := []struct {
		name string
		due  time.Time
		want bool
	}{
		{"yesterday", time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local), true},
		{"earlier today", time.Date(2026, 3, 10, 8, 0, 0, 0, time.Local), false},
		{"today midnight", time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local), false},
		{"tomorrow", time.Date(2026, 3, 11, 0, 0, 0, 0, time.Local), false},
		{"last month late evening", time.Date(2026, 2, 28, 23, 59, 0, 0, time.Local), true},
	}
	for _, tc := range cases {
		if got := Overdue(tc.due, now); got != tc.want {
			t.Errorf("%s: Overdue(%v) = %v, want %v", tc.name, tc.due, got, tc.want)
		}
	}
}

func TestTaskOverdue(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	yesterday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local)

	task := Task{Title: "Draft report", Status: StatusInProgress, DueDate: &yesterday}
	if !task.TaskOverdue(now) {
		t.Error("expected a past-due in-progress task to be overdue")
	}

	done := Task{Title: "Draft report", Status: StatusDone, DueDate: &yesterday}
	if done.TaskOverdue(now) {
		t.Error("done tasks are never overdue")
	}

	undated := Task{Title: "Draft report", Status: StatusWaiting}
	if undated.TaskOverdue(now) {
		t.Error("tasks without a due date are never overdue")
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 3, 10, 0, 1, 0, 0, time.Local)
	b := time.Date(2026, 3, 10, 23, 59, 0, 0, time.Local)
	if !SameDay(a, b) {
		t.Errorf("expected %v and %v to share a day", a, b)
	}
	c := time.Date(2026, 3, 11, 0, 0, 0, 0, time.Local)
	if SameDay(b, c) {
		t.Errorf("expected %v and %v to differ", b, c)
	}
}

func TestParseEventStart(t *testing.T) {
	if got, err := ParseEventStart("2026-03-10"); err != nil {
		t.Fatalf("date-only parse failed: %v", err)
	} else if got.Day() != 10 || got.Hour() != 0 {
		t.Errorf("unexpected parse result: %v", got)
	}

	if got, err := ParseEventStart("2026-03-10T14:00:00+09:00"); err != nil {
		t.Fatalf("RFC 3339 parse failed: %v", err)
	} else if got.Hour() != 14 {
		t.Errorf("unexpected parse result: %v", got)
	}

	if _, err := ParseEventStart("not a date"); err == nil {
		t.Error("expected an error for garbage input")
	}
}
