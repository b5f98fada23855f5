package engine

import "github.com/julianstephens/tracker/internal/models"

// Ledger is the set of completed days per tracker id. Days are YYYY-MM-DD keys,
// so a tracker can be completed at most once per calendar day.
type Ledger struct {
	days map[string]map[string]struct{}
}

// NewLedger builds a ledger from stored records; duplicate records collapse
func NewLedger(records []models.TrackerRecord) *Ledger {
	l := &Ledger{days: make(map[string]map[string]struct{})}
	for _, r := range records {
		l.add(r.TrackerID, r.Day)
	}
	return l
}

func (l *Ledger) add(trackerID, day string) {
	set, ok := l.days[trackerID]
	if !ok {
		set = make(map[string]struct{})
		l.days[trackerID] = set
	}
	set[day] = struct{}{}
}

func (l *Ledger) remove(trackerID, day string) {
	set, ok := l.days[trackerID]
	if !ok {
		return
	}
	delete(set, day)
	if len(set) == 0 {
		delete(l.days, trackerID)
	}
}

func (l *Ledger) forget(trackerID string) {
	delete(l.days, trackerID)
}

// Has reports whether trackerID has a record on day
func (l *Ledger) Has(trackerID, day string) bool {
	_, ok := l.days[trackerID][day]
	return ok
}

// Count returns the number of distinct days trackerID was completed
func (l *Ledger) Count(trackerID string) int {
	return len(l.days[trackerID])
}
