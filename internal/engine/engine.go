// Package engine owns the in-memory model of categories, trackers and
// completion records and applies the scheduling, completion and category
// composition rules on top of a storage.Provider.
//
// The engine is the single owner of its snapshot: every mutation is written
// through the provider first and committed to the snapshot only when the
// provider succeeds. An Engine is not safe for concurrent use.
package engine

import (
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/julianstephens/tracker/internal/errors"
	"github.com/julianstephens/tracker/internal/logger"
	"github.com/julianstephens/tracker/internal/models"
	"github.com/julianstephens/tracker/internal/storage"
	"github.com/julianstephens/tracker/internal/utils"
)

// Effect is the outcome of a completion toggle
type Effect int

const (
	NoOp Effect = iota
	Inserted
	Removed
)

func (e Effect) String() string {
	switch e {
	case Inserted:
		return "inserted"
	case Removed:
		return "removed"
	default:
		return "no-op"
	}
}

type Engine struct {
	store storage.Provider
	now   func() time.Time
	loc   *time.Location

	categories []models.TrackerCategory
	trackers   []models.Tracker
	ledger     *Ledger

	subscribers []subscriber
	nextSubID   int
}

type Option func(*Engine)

// WithClock replaces time.Now as the source of "now"
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithLocation sets the timezone calendar days are computed in
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		if loc != nil {
			e.loc = loc
		}
	}
}

func New(store storage.Provider, opts ...Option) *Engine {
	e := &Engine{
		store:      store,
		now:        time.Now,
		loc:        time.Local,
		categories: []models.TrackerCategory{},
		trackers:   []models.Tracker{},
		ledger:     NewLedger(nil),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Location returns the timezone the engine computes calendar days in
func (e *Engine) Location() *time.Location {
	return e.loc
}

// Today returns the start of the current day in the engine location
func (e *Engine) Today() time.Time {
	return utils.StartOfDay(e.now(), e.loc)
}

// Reload replaces the snapshot with the provider's categories, trackers and records
func (e *Engine) Reload() error {
	categories, err := e.store.GetAllCategories()
	if err != nil {
		logger.Error("Failed to load categories", "error", err)
		return apperrors.Storage("load categories", err)
	}
	trackers, err := e.store.GetAllTrackers()
	if err != nil {
		logger.Error("Failed to load trackers", "error", err)
		return apperrors.Storage("load trackers", err)
	}
	records, err := e.store.GetAllRecords()
	if err != nil {
		logger.Error("Failed to load records", "error", err)
		return apperrors.Storage("load records", err)
	}

	e.categories = categories
	e.trackers = trackers
	e.ledger = NewLedger(records)
	logger.Debug("Engine reloaded", "categories", len(categories), "trackers", len(trackers), "records", len(records))
	return nil
}

// Categories returns a copy of the category snapshot in insertion order
func (e *Engine) Categories() []models.TrackerCategory {
	out := make([]models.TrackerCategory, 0, len(e.categories))
	for _, c := range e.categories {
		out = append(out, models.TrackerCategory{
			Title:    c.Title,
			Trackers: append([]models.Tracker{}, c.Trackers...),
		})
	}
	return out
}

// Category looks up a category by canonical title
func (e *Engine) Category(title string) (models.TrackerCategory, bool) {
	i := e.categoryIndex(models.CanonicalTitle(title))
	if i < 0 {
		return models.TrackerCategory{}, false
	}
	c := e.categories[i]
	return models.TrackerCategory{Title: c.Title, Trackers: append([]models.Tracker{}, c.Trackers...)}, true
}

// Trackers returns every known tracker, including ones left without a category
func (e *Engine) Trackers() []models.Tracker {
	return append([]models.Tracker{}, e.trackers...)
}

func (e *Engine) categoryIndex(title string) int {
	for i, c := range e.categories {
		if c.Title == title {
			return i
		}
	}
	return -1
}

// AddCategory inserts c, or merges its trackers into the existing category
// with the same title. Merged trackers are appended after the existing ones
// without deduplication. The resulting category is returned.
func (e *Engine) AddCategory(c models.TrackerCategory) (models.TrackerCategory, error) {
	title := models.CanonicalTitle(c.Title)
	if title == "" {
		return models.TrackerCategory{}, apperrors.InvalidInput("category title is required")
	}

	trackers := make([]models.Tracker, 0, len(c.Trackers))
	for _, t := range c.Trackers {
		prepared, err := e.prepareTracker(t)
		if err != nil {
			return models.TrackerCategory{}, err
		}
		trackers = append(trackers, prepared)
	}

	if i := e.categoryIndex(title); i >= 0 {
		if err := e.store.AppendTrackers(title, trackers); err != nil {
			logger.Error("Failed to merge category", "title", title, "error", err)
			return models.TrackerCategory{}, apperrors.Storage("merge category", err)
		}
		e.categories[i].Trackers = append(e.categories[i].Trackers, trackers...)
		e.trackers = append(e.trackers, trackers...)
		logger.Debug("Merged trackers into category", "title", title, "added", len(trackers))
		e.publish(Event{Kind: CategoryMerged, CategoryTitle: title})
		merged, _ := e.Category(title)
		return merged, nil
	}

	created := models.TrackerCategory{Title: title, Trackers: trackers}
	if err := e.store.AddCategory(created); err != nil {
		logger.Error("Failed to add category", "title", title, "error", err)
		return models.TrackerCategory{}, apperrors.Storage("add category", err)
	}
	e.categories = append(e.categories, created)
	e.trackers = append(e.trackers, trackers...)
	logger.Debug("Added category", "title", title, "trackers", len(trackers))
	e.publish(Event{Kind: CategoryAdded, CategoryTitle: title})
	added, _ := e.Category(title)
	return added, nil
}

// AddTracker files t under categoryTitle through the same merge-or-create path as AddCategory
func (e *Engine) AddTracker(t models.Tracker, categoryTitle string) (models.Tracker, error) {
	prepared, err := e.prepareTracker(t)
	if err != nil {
		return models.Tracker{}, err
	}
	if _, err := e.AddCategory(models.TrackerCategory{Title: categoryTitle, Trackers: []models.Tracker{prepared}}); err != nil {
		return models.Tracker{}, err
	}
	return prepared, nil
}

// prepareTracker validates t and fills in id, creation time and a canonical schedule
func (e *Engine) prepareTracker(t models.Tracker) (models.Tracker, error) {
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return models.Tracker{}, apperrors.InvalidInput("tracker name is required")
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = e.now()
	}
	t.Schedule = models.NewSchedule(t.Schedule...)
	return t, nil
}

// DeleteCategory removes the titled category. A missing category is not an
// error. Its trackers stay stored without a category; their records are kept.
func (e *Engine) DeleteCategory(title string) error {
	title = models.CanonicalTitle(title)
	i := e.categoryIndex(title)
	if i < 0 {
		logger.Debug("Category to delete not found", "title", title)
		return nil
	}

	if err := e.store.DeleteCategory(title); err != nil {
		if apperrors.IsNotFound(err) {
			e.categories = append(e.categories[:i], e.categories[i+1:]...)
			return nil
		}
		logger.Error("Failed to delete category", "title", title, "error", err)
		return apperrors.Storage("delete category", err)
	}

	e.categories = append(e.categories[:i], e.categories[i+1:]...)
	logger.Debug("Deleted category", "title", title)
	e.publish(Event{Kind: CategoryDeleted, CategoryTitle: title})
	return nil
}

// DeleteTracker removes the tracker and all of its completion records. The
// records are deleted first so a failure never leaves records orphaned.
func (e *Engine) DeleteTracker(id string) error {
	if _, err := e.store.GetTracker(id); err != nil {
		if apperrors.IsNotFound(err) {
			return err
		}
		return apperrors.Storage("get tracker", err)
	}

	if err := e.store.DeleteRecordsForTracker(id); err != nil {
		logger.Error("Failed to delete tracker records", "tracker", id, "error", err)
		return apperrors.Storage("delete tracker records", err)
	}
	e.ledger.forget(id)

	if err := e.store.DeleteTracker(id); err != nil {
		logger.Error("Failed to delete tracker", "tracker", id, "error", err)
		if apperrors.IsNotFound(err) {
			return err
		}
		return apperrors.Storage("delete tracker", err)
	}

	for i := range e.categories {
		e.categories[i].Trackers = withoutTracker(e.categories[i].Trackers, id)
	}
	e.trackers = withoutTracker(e.trackers, id)
	logger.Debug("Deleted tracker", "tracker", id)
	e.publish(Event{Kind: TrackerDeleted, TrackerID: id})
	return nil
}

func withoutTracker(trackers []models.Tracker, id string) []models.Tracker {
	out := make([]models.Tracker, 0, len(trackers))
	for _, t := range trackers {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

// ToggleCompletion flips the completion mark of trackerID on date's calendar
// day. Days after today are never completable and yield NoOp without error.
func (e *Engine) ToggleCompletion(trackerID string, date time.Time) (Effect, error) {
	if utils.After(date, e.now(), e.loc) {
		logger.Debug("Ignoring completion toggle for a future day", "tracker", trackerID, "date", date)
		return NoOp, nil
	}

	day := utils.DayKey(date, e.loc)
	if e.ledger.Has(trackerID, day) {
		if err := e.store.DeleteRecord(trackerID, day); err != nil && !apperrors.IsNotFound(err) {
			logger.Error("Failed to remove record", "tracker", trackerID, "day", day, "error", err)
			return NoOp, apperrors.Storage("remove record", err)
		}
		e.ledger.remove(trackerID, day)
		e.publish(Event{Kind: CompletionRemoved, TrackerID: trackerID, Day: day})
		return Removed, nil
	}

	record := models.TrackerRecord{TrackerID: trackerID, Day: day, CreatedAt: e.now()}
	if err := e.store.AddRecord(record); err != nil {
		logger.Error("Failed to add record", "tracker", trackerID, "day", day, "error", err)
		return NoOp, apperrors.Storage("add record", err)
	}
	e.ledger.add(trackerID, day)
	e.publish(Event{Kind: CompletionInserted, TrackerID: trackerID, Day: day})
	return Inserted, nil
}

// IsCompleted reports whether trackerID has a record on date's calendar day
func (e *Engine) IsCompleted(trackerID string, date time.Time) bool {
	return e.ledger.Has(trackerID, utils.DayKey(date, e.loc))
}

// CompletionCount returns the number of distinct days trackerID was completed
func (e *Engine) CompletionCount(trackerID string) int {
	return e.ledger.Count(trackerID)
}
