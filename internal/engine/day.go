package engine

import (
	"strings"
	"time"

	"github.com/julianstephens/tracker/internal/models"
)

// TrackerDay is a due tracker as seen on one calendar day
type TrackerDay struct {
	Tracker   models.Tracker
	Completed bool
	Count     int
}

// CategoryDay groups the due trackers of one category
type CategoryDay struct {
	Title    string
	Trackers []TrackerDay
}

// Day returns the trackers due on date, grouped by category in insertion
// order. A non-empty query keeps only trackers whose name contains it,
// ignoring case. Categories with nothing left are omitted.
func (e *Engine) Day(date time.Time, query string) []CategoryDay {
	query = strings.ToLower(strings.TrimSpace(query))

	var out []CategoryDay
	for _, c := range e.categories {
		var due []TrackerDay
		for _, t := range c.Trackers {
			if !e.IsDue(t, date) {
				continue
			}
			if query != "" && !strings.Contains(strings.ToLower(t.Name), query) {
				continue
			}
			due = append(due, TrackerDay{
				Tracker:   t,
				Completed: e.IsCompleted(t.ID, date),
				Count:     e.CompletionCount(t.ID),
			})
		}
		if len(due) > 0 {
			out = append(out, CategoryDay{Title: c.Title, Trackers: due})
		}
	}
	return out
}
