package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Weekday is a symbolic day of the week used in tracker schedules
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// AllWeekdays lists the weekdays in display order
var AllWeekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Short returns the three-letter label, e.g. "Mon"
func (w Weekday) Short() string {
	switch w {
	case Monday:
		return "Mon"
	case Tuesday:
		return "Tue"
	case Wednesday:
		return "Wed"
	case Thursday:
		return "Thu"
	case Friday:
		return "Fri"
	case Saturday:
		return "Sat"
	case Sunday:
		return "Sun"
	}
	return string(w)
}

// Valid reports whether w is one of the seven weekdays
func (w Weekday) Valid() bool {
	return w.order() >= 0
}

func (w Weekday) order() int {
	for i, d := range AllWeekdays {
		if d == w {
			return i
		}
	}
	return -1
}

// WeekdayFromIndex maps a calendar weekday index (1=Sunday .. 7=Saturday) to a Weekday.
// Any other index is a programming error and panics.
func WeekdayFromIndex(index int) Weekday {
	switch index {
	case 1:
		return Sunday
	case 2:
		return Monday
	case 3:
		return Tuesday
	case 4:
		return Wednesday
	case 5:
		return Thursday
	case 6:
		return Friday
	case 7:
		return Saturday
	}
	panic(fmt.Sprintf("models: weekday index %d out of range 1..7", index))
}

// WeekdayOf returns the weekday of t in t's location
func WeekdayOf(t time.Time) Weekday {
	return WeekdayFromIndex(int(t.Weekday()) + 1)
}

// ParseWeekday parses a full or three-letter weekday name (case-insensitive),
// or a number where 0=Sunday and 6=Saturday.
func ParseWeekday(s string) (Weekday, error) {
	part := strings.TrimSpace(strings.ToLower(s))
	for _, wd := range AllWeekdays {
		if part == string(wd) || part == strings.ToLower(wd.Short()) {
			return wd, nil
		}
	}
	if num, err := strconv.Atoi(part); err == nil && num >= 0 && num <= 6 {
		return WeekdayFromIndex(num + 1), nil
	}
	return "", fmt.Errorf("invalid weekday: %s", s)
}
