package notion

import (
	"time"

	"github.com/jomei/notionapi"

	"github.com/harrisonrobin/homeboard/pkg/model"
)

// TaskFromPage maps a raw provider page onto a Task. The mapping is total:
// every missing or differently-typed property collapses to its zero default,
// never to an error.
func TaskFromPage(page notionapi.Page) model.Task {
	props := page.Properties
	return model.Task{
		ID:            string(page.ID),
		Title:         titleOf(props[propTitle]),
		Status:        selectOf(props[propStatus]),
		Area:          selectOf(props[propArea]),
		Priority:      selectOf(props[propPriority]),
		DueDate:       dateOf(props[propDue]),
		CompletedDate: dateOf(props[propCompleted]),
		Memo:          richTextOf(props[propMemo]),
		URL:           page.URL,
		CreatedAt:     page.CreatedTime,
	}
}

// RoutineFromPage maps a raw provider page onto a Routine.
func RoutineFromPage(page notionapi.Page) model.Routine {
	props := page.Properties
	return model.Routine{
		ID:        string(page.ID),
		Title:     titleOf(props[propTitle]),
		Frequency: selectOf(props[propFrequency]),
		Area:      selectOf(props[propArea]),
		Completed: checkboxOf(props[propDone]),
		Memo:      richTextOf(props[propMemo]),
		URL:       page.URL,
	}
}

// titleOf returns the first plain-text segment of a title property.
func titleOf(prop notionapi.Property) string {
	p, ok := prop.(*notionapi.TitleProperty)
	if !ok || len(p.Title) == 0 {
		return ""
	}
	return p.Title[0].PlainText
}

// selectOf returns the selected option's label.
func selectOf(prop notionapi.Property) string {
	p, ok := prop.(*notionapi.SelectProperty)
	if !ok {
		return ""
	}
	return p.Select.Name
}

// dateOf returns the start of a date property.
func dateOf(prop notionapi.Property) *time.Time {
	p, ok := prop.(*notionapi.DateProperty)
	if !ok || p.Date == nil || p.Date.Start == nil {
		return nil
	}
	t := time.Time(*p.Date.Start)
	return &t
}

// richTextOf returns the first plain-text segment of a rich-text property.
func richTextOf(prop notionapi.Property) string {
	p, ok := prop.(*notionapi.RichTextProperty)
	if !ok || len(p.RichText) == 0 {
		return ""
	}
	return p.RichText[0].PlainText
}

func checkboxOf(prop notionapi.Property) bool {
	p, ok := prop.(*notionapi.CheckboxProperty)
	if !ok {
		return false
	}
	return p.Checkbox
}
