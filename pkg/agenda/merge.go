package agenda

import (
	"context"
	"sort"
	"sync"

	"github.com/harrisonrobin/homeboard/pkg/model"
)

// Dashboard is the merged view the polling client renders: calendar events
// and dated tasks, split into today and everything after it.
type Dashboard struct {
	Today    []model.Event `json:"today"`
	Upcoming []model.Event `json:"upcoming"`
}

// Merge fans out the two provider aggregates concurrently, wraps calendar
// events and every dated in-progress, waiting, and on-hold task as unified
// events, and partitions them by calendar day. Today keeps merge order;
// upcoming is sorted by date ascending. The result is rebuilt from scratch on
// every call, so repeated calls with unchanged providers are identical.
func (s *Service) Merge(ctx context.Context, days int) Dashboard {
	var (
		wg     sync.WaitGroup
		snap   Snapshot
		events []model.CalendarEvent
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		snap = s.TasksAndRoutines(ctx, KindTasks)
	}()
	go func() {
		defer wg.Done()
		events = s.UpcomingEvents(ctx, days)
	}()
	wg.Wait()

	all := make([]model.Event, 0, len(events))
	for i := range events {
		all = append(all, model.Event{
			Kind:     model.EventKindCalendar,
			Start:    events[i].Start,
			Title:    events[i].Title,
			Calendar: &events[i],
		})
	}
	if snap.Tasks != nil {
		for _, bucket := range [][]model.Task{snap.Tasks.InProgress, snap.Tasks.Waiting, snap.Tasks.OnHold} {
			all = append(all, taskEvents(bucket)...)
		}
	}

	now := s.now()
	dash := Dashboard{Today: []model.Event{}, Upcoming: []model.Event{}}
	for _, event := range all {
		start, err := model.ParseEventStart(event.Start)
		if err != nil {
			s.logger.Warn("skipping event with unparseable start", "title", event.Title, "start", event.Start)
			continue
		}
		if model.SameDay(start, now) {
			dash.Today = append(dash.Today, event)
		} else {
			dash.Upcoming = append(dash.Upcoming, event)
		}
	}

	sort.SliceStable(dash.Upcoming, func(i, j int) bool {
		a, _ := model.ParseEventStart(dash.Upcoming[i].Start)
		b, _ := model.ParseEventStart(dash.Upcoming[j].Start)
		return a.Before(b)
	})

	return dash
}

func taskEvents(tasks []model.Task) []model.Event {
	events := make([]model.Event, 0, len(tasks))
	for i := range tasks {
		if tasks[i].DueDate == nil {
			continue
		}
		events = append(events, model.Event{
			Kind:  model.EventKindTask,
			Start: tasks[i].DueDate.Format(model.DateOnly),
			Title: tasks[i].Title,
			Task:  &tasks[i],
		})
	}
	return events
}
