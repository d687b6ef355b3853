package notion

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jomei/notionapi"

	"github.com/harrisonrobin/homeboard/pkg/model"
)

// TaskDraft is the input for creating a task. Only Title is required; the
// write payload carries exactly the fields that were supplied.
type TaskDraft struct {
	Title    string `json:"title"`
	Status   string `json:"status"`
	Area     string `json:"area"`
	Priority string `json:"priority"`
	DueDate  string `json:"dueDate"`
	Memo     string `json:"memo"`
}

// TaskPatch is a partial update. A nil field means leave unchanged; a present
// empty value clears the field where the schema allows it (area, due, memo).
type TaskPatch struct {
	Title    *string `json:"title"`
	Status   *string `json:"status"`
	Area     *string `json:"area"`
	Priority *string `json:"priority"`
	DueDate  *string `json:"dueDate"`
	Memo     *string `json:"memo"`
}

// Empty reports whether the patch names no fields at all.
func (p TaskPatch) Empty() bool {
	return p.Title == nil && p.Status == nil && p.Area == nil &&
		p.Priority == nil && p.DueDate == nil && p.Memo == nil
}

// CreateTask writes a new task record and returns it normalized. Status
// defaults to waiting; creating a task already done stamps its completion
// date to today.
func (c *Client) CreateTask(ctx context.Context, draft TaskDraft) (model.Task, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return model.Task{}, ErrMissingTitle
	}

	status := draft.Status
	if status == "" {
		status = model.StatusWaiting
	}

	props := notionapi.Properties{
		propTitle:  titleValue(draft.Title),
		propStatus: selectValue(status),
	}
	if draft.Area != "" {
		props[propArea] = selectValue(draft.Area)
	}
	if draft.Priority != "" {
		props[propPriority] = selectValue(draft.Priority)
	}
	if draft.DueDate != "" {
		due, err := dateValue(draft.DueDate)
		if err != nil {
			return model.Task{}, err
		}
		props[propDue] = due
	}
	if draft.Memo != "" {
		props[propMemo] = richTextValue(draft.Memo)
	}
	if status == model.StatusDone {
		props[propCompleted] = todayValue(c.now())
	}

	page, err := c.api.Page.Create(ctx, &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: c.tasksDB,
		},
		Properties: props,
	})
	if err != nil {
		return model.Task{}, fmt.Errorf("create task: %w", err)
	}
	return TaskFromPage(*page), nil
}

// UpdateTask applies a partial update and returns the normalized result.
// Setting status to done stamps the completion date to today, overwriting
// any prior value. A later move away from done leaves the stamp in place.
func (c *Client) UpdateTask(ctx context.Context, id string, patch TaskPatch) (model.Task, error) {
	if id == "" {
		return model.Task{}, ErrMissingID
	}

	props := notionapi.Properties{}
	if patch.Title != nil {
		props[propTitle] = titleValue(*patch.Title)
	}
	if patch.Status != nil {
		props[propStatus] = selectValue(*patch.Status)
		if *patch.Status == model.StatusDone {
			props[propCompleted] = todayValue(c.now())
		}
	}
	if patch.Area != nil {
		props[propArea] = selectValue(*patch.Area)
	}
	if patch.Priority != nil {
		props[propPriority] = selectValue(*patch.Priority)
	}
	if patch.DueDate != nil {
		if *patch.DueDate == "" {
			props[propDue] = &notionapi.DateProperty{Type: notionapi.PropertyTypeDate}
		} else {
			due, err := dateValue(*patch.DueDate)
			if err != nil {
				return model.Task{}, err
			}
			props[propDue] = due
		}
	}
	if patch.Memo != nil {
		props[propMemo] = richTextValue(*patch.Memo)
	}

	page, err := c.api.Page.Update(ctx, notionapi.PageID(id), &notionapi.PageUpdateRequest{
		Properties: props,
	})
	if err != nil {
		return model.Task{}, fmt.Errorf("update task %s: %w", id, err)
	}
	return TaskFromPage(*page), nil
}

// DeleteTask archives a task record. The provider has no hard delete;
// archiving removes the page from every database view.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingID
	}
	_, err := c.api.Page.Update(ctx, notionapi.PageID(id), &notionapi.PageUpdateRequest{
		Properties: notionapi.Properties{},
		Archived:   true,
	})
	if err != nil {
		return fmt.Errorf("delete task %s: %w", id, err)
	}
	return nil
}

func titleValue(title string) *notionapi.TitleProperty {
	return &notionapi.TitleProperty{
		Title: []notionapi.RichText{
			{Text: &notionapi.Text{Content: title}},
		},
	}
}

func selectValue(name string) *notionapi.SelectProperty {
	return &notionapi.SelectProperty{
		Select: notionapi.Option{Name: name},
	}
}

func richTextValue(text string) *notionapi.RichTextProperty {
	if text == "" {
		return &notionapi.RichTextProperty{RichText: []notionapi.RichText{}}
	}
	return &notionapi.RichTextProperty{
		RichText: []notionapi.RichText{
			{Text: &notionapi.Text{Content: text}},
		},
	}
}

// dateValue accepts an ISO 8601 date, or a full timestamp for events with a
// time component.
func dateValue(s string) (*notionapi.DateProperty, error) {
	t, err := time.ParseInLocation(model.DateOnly, s, time.Local)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, ErrBadDate
		}
	}
	d := notionapi.Date(t)
	return &notionapi.DateProperty{
		Date: &notionapi.DateObject{Start: &d},
	}, nil
}

func todayValue(now time.Time) *notionapi.DateProperty {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	d := notionapi.Date(day)
	return &notionapi.DateProperty{
		Date: &notionapi.DateObject{Start: &d},
	}
}
