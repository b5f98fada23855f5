package engine

import (
	"time"

	"github.com/julianstephens/tracker/internal/models"
	"github.com/julianstephens/tracker/internal/utils"
)

// IsDue reports whether tracker t should be shown as actionable on date.
//
// A scheduled tracker is due when date's weekday is in its schedule. An
// irregular event (empty schedule) is due only when date is the same calendar
// day as now, whichever date is being browsed. Both dates are compared in
// date's location.
func IsDue(t models.Tracker, date, now time.Time) bool {
	if t.Schedule.IsEmpty() {
		return utils.SameDay(date, now, date.Location())
	}
	return t.Schedule.Contains(models.WeekdayOf(date))
}

// IsDue evaluates the due predicate against the engine clock
func (e *Engine) IsDue(t models.Tracker, date time.Time) bool {
	return IsDue(t, date.In(e.loc), e.now())
}
