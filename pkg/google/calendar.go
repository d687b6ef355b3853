package google

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"

	"github.com/harrisonrobin/homeboard/pkg/model"
)

// maxEvents caps how many events a single range query returns.
const maxEvents = 20

// CalendarClient is a read-only Google Calendar API client.
type CalendarClient struct {
	srv        *calendar.Service
	calendarID string
}

// NewCalendarClient wraps an authenticated calendar service for one calendar.
func NewCalendarClient(srv *calendar.Service, calendarID string) *CalendarClient {
	return &CalendarClient{srv: srv, calendarID: calendarID}
}

// Events fetches events in [min, max], recurring instances materialized,
// ordered by start time ascending.
func (c *CalendarClient) Events(ctx context.Context, min, max time.Time) ([]model.CalendarEvent, error) {
	resp, err := c.srv.Events.List(c.calendarID).
		TimeMin(min.Format(time.RFC3339)).
		TimeMax(max.Format(time.RFC3339)).
		MaxResults(maxEvents).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve events from calendar: %w", err)
	}

	events := make([]model.CalendarEvent, 0, len(resp.Items))
	for _, item := range resp.Items {
		events = append(events, eventFromItem(item))
	}
	return events, nil
}

// eventFromItem normalizes a raw calendar item. All-day events carry a
// date-only start and no time component.
func eventFromItem(item *calendar.Event) model.CalendarEvent {
	event := model.CalendarEvent{
		ID:          item.Id,
		Title:       item.Summary,
		Description: item.Description,
		Location:    item.Location,
		HTMLLink:    item.HtmlLink,
		Status:      item.Status,
	}
	if event.Title == "" {
		event.Title = "(untitled)"
	}
	if item.Start != nil {
		event.Start = item.Start.DateTime
		if event.Start == "" {
			event.Start = item.Start.Date
			event.IsAllDay = true
		}
	}
	if item.End != nil {
		event.End = item.End.DateTime
		if event.End == "" {
			event.End = item.End.Date
		}
	}
	return event
}
