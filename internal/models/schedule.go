package models

import (
	"encoding/json"
	"sort"
	"strings"
)

// Schedule is the set of weekdays a tracker repeats on. An empty schedule
// marks an irregular event.
type Schedule []Weekday

// NewSchedule builds a schedule from days, dropping duplicates and unknown
// values and ordering the result Monday first.
func NewSchedule(days ...Weekday) Schedule {
	seen := make(map[Weekday]bool, len(days))
	s := Schedule{}
	for _, d := range days {
		if !d.Valid() || seen[d] {
			continue
		}
		seen[d] = true
		s = append(s, d)
	}
	sort.Slice(s, func(i, j int) bool { return s[i].order() < s[j].order() })
	return s
}

// Contains reports whether the schedule includes day
func (s Schedule) Contains(day Weekday) bool {
	for _, d := range s {
		if d == day {
			return true
		}
	}
	return false
}

func (s Schedule) IsEmpty() bool {
	return len(s) == 0
}

// IsDaily reports whether every weekday is scheduled
func (s Schedule) IsDaily() bool {
	for _, d := range AllWeekdays {
		if !s.Contains(d) {
			return false
		}
	}
	return true
}

func (s Schedule) String() string {
	if s.IsEmpty() {
		return "irregular"
	}
	if s.IsDaily() {
		return "every day"
	}
	labels := make([]string, 0, len(s))
	for _, d := range NewSchedule(s...) {
		labels = append(labels, d.Short())
	}
	return strings.Join(labels, ", ")
}

// UnmarshalJSON normalizes decoded schedules so stored duplicates collapse
func (s *Schedule) UnmarshalJSON(data []byte) error {
	var days []Weekday
	if err := json.Unmarshal(data, &days); err != nil {
		return err
	}
	*s = NewSchedule(days...)
	return nil
}
