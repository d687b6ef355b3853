package google

import (
	"testing"

	"google.golang.org/api/calendar/v3"
)

func TestEventFromItem(t *testing.T) {
	item := &calendar.Event{
		Id:          "e1",
		Summary:     "Team standup",
		Description: "daily sync",
		Location:    "meet",
		HtmlLink:    "https://calendar.google.com/event?eid=e1",
		Status:      "confirmed",
		Start:       &calendar.EventDateTime{DateTime: "2026-03-10T09:30:00+09:00"},
		End:         &calendar.EventDateTime{DateTime: "2026-03-10T09:45:00+09:00"},
	}

	event := eventFromItem(item)
	if event.ID != "e1" || event.Title != "Team standup" {
		t.Errorf("unexpected event %+v", event)
	}
	if event.IsAllDay {
		t.Error("timed events are not all-day")
	}
	if event.Start != "2026-03-10T09:30:00+09:00" || event.End != "2026-03-10T09:45:00+09:00" {
		t.Errorf("unexpected times %q / %q", event.Start, event.End)
	}
}

// All-day events carry a date with no time component.
func TestEventFromItem_AllDay(t *testing.T) {
	item := &calendar.Event{
		Id:    "e2",
		Start: &calendar.EventDateTime{Date: "2026-03-11"},
		End:   &calendar.EventDateTime{Date: "2026-03-12"},
	}

	event := eventFromItem(item)
	if !event.IsAllDay {
		t.Error("date-only start must mark the event all-day")
	}
	if event.Start != "2026-03-11" || event.End != "2026-03-12" {
		t.Errorf("unexpected times %q / %q", event.Start, event.End)
	}
	if event.Title != "(untitled)" {
		t.Errorf("missing summary should fall back to a placeholder, got %q", event.Title)
	}
}

func TestEventFromItem_MissingTimes(t *testing.T) {
	event := eventFromItem(&calendar.Event{Id: "e3"})
	if event.Start != "" || event.End != "" || event.IsAllDay {
		t.Errorf("nil start/end must normalize to empty strings: %+v", event)
	}
}
