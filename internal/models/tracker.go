package models

import (
	"strings"
	"time"
)

// Tracker is a habit (weekly schedule) or an irregular event (empty schedule)
type Tracker struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Emoji     string    `json:"emoji"`
	Schedule  Schedule  `json:"schedule"`
	CreatedAt time.Time `json:"created_at"`
}

// IsIrregular reports whether the tracker is a one-off event without a weekly schedule
func (t Tracker) IsIrregular() bool {
	return t.Schedule.IsEmpty()
}

// TrackerCategory groups trackers under a unique title
type TrackerCategory struct {
	Title    string    `json:"title"`
	Trackers []Tracker `json:"trackers"`
}

// TrackerRecord marks a tracker as completed on one calendar day
type TrackerRecord struct {
	TrackerID string    `json:"tracker_id"`
	Day       string    `json:"day"` // YYYY-MM-DD format
	CreatedAt time.Time `json:"created_at"`
}

// CanonicalTitle is the lookup key for category titles: surrounding
// whitespace is dropped, case is preserved.
func CanonicalTitle(title string) string {
	return strings.TrimSpace(title)
}
