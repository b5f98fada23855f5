package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	apperrors "github.com/julianstephens/tracker/internal/errors"
	"github.com/julianstephens/tracker/internal/models"
)

// Document is the on-disk layout of a JSON store
type Document struct {
	Version    int                      `json:"version"`
	Categories []models.TrackerCategory `json:"categories"`
	// Uncategorized keeps trackers whose category was deleted
	Uncategorized []models.Tracker       `json:"uncategorized"`
	Records       []models.TrackerRecord `json:"records"`
}

// JSONStore keeps the whole document in memory and rewrites the file after each mutation
type JSONStore struct {
	path  string
	store *Document
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Document{
		Version:       1,
		Categories:    []models.TrackerCategory{},
		Uncategorized: []models.Tracker{},
		Records:       []models.TrackerRecord{},
	}
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'tracker init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Document{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return apperrors.Storage("serialize storage", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return apperrors.Storage("write storage", err)
	}
	return nil
}

func (s *JSONStore) loaded() error {
	if s.store == nil {
		return apperrors.Storage("access storage", fmt.Errorf("storage not loaded"))
	}
	return nil
}

func (s *JSONStore) categoryIndex(title string) int {
	for i, c := range s.store.Categories {
		if c.Title == title {
			return i
		}
	}
	return -1
}

func (s *JSONStore) GetAllCategories() ([]models.TrackerCategory, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	categories := make([]models.TrackerCategory, 0, len(s.store.Categories))
	for _, c := range s.store.Categories {
		categories = append(categories, copyCategory(c))
	}
	return categories, nil
}

func (s *JSONStore) GetCategory(title string) (models.TrackerCategory, error) {
	if err := s.loaded(); err != nil {
		return models.TrackerCategory{}, err
	}
	i := s.categoryIndex(title)
	if i < 0 {
		return models.TrackerCategory{}, apperrors.NotFound("category", title)
	}
	return copyCategory(s.store.Categories[i]), nil
}

func (s *JSONStore) AddCategory(category models.TrackerCategory) error {
	if err := s.loaded(); err != nil {
		return err
	}
	if s.categoryIndex(category.Title) >= 0 {
		return apperrors.InvalidInput("category %q already exists", category.Title)
	}
	s.store.Categories = append(s.store.Categories, copyCategory(category))
	return s.save()
}

func (s *JSONStore) AppendTrackers(title string, trackers []models.Tracker) error {
	if err := s.loaded(); err != nil {
		return err
	}
	i := s.categoryIndex(title)
	if i < 0 {
		return apperrors.NotFound("category", title)
	}
	s.store.Categories[i].Trackers = append(s.store.Categories[i].Trackers, trackers...)
	return s.save()
}

func (s *JSONStore) DeleteCategory(title string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	i := s.categoryIndex(title)
	if i < 0 {
		return apperrors.NotFound("category", title)
	}
	s.store.Uncategorized = append(s.store.Uncategorized, s.store.Categories[i].Trackers...)
	s.store.Categories = append(s.store.Categories[:i], s.store.Categories[i+1:]...)
	return s.save()
}

func (s *JSONStore) GetAllTrackers() ([]models.Tracker, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	trackers := []models.Tracker{}
	for _, c := range s.store.Categories {
		trackers = append(trackers, c.Trackers...)
	}
	trackers = append(trackers, s.store.Uncategorized...)
	return trackers, nil
}

func (s *JSONStore) GetTracker(id string) (models.Tracker, error) {
	trackers, err := s.GetAllTrackers()
	if err != nil {
		return models.Tracker{}, err
	}
	for _, t := range trackers {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Tracker{}, apperrors.NotFound("tracker", id)
}

func (s *JSONStore) DeleteTracker(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}

	removed := 0
	keep := func(trackers []models.Tracker) []models.Tracker {
		out := trackers[:0]
		for _, t := range trackers {
			if t.ID == id {
				removed++
				continue
			}
			out = append(out, t)
		}
		return out
	}
	for i := range s.store.Categories {
		s.store.Categories[i].Trackers = keep(s.store.Categories[i].Trackers)
	}
	s.store.Uncategorized = keep(s.store.Uncategorized)

	if removed == 0 {
		return apperrors.NotFound("tracker", id)
	}
	return s.save()
}

func (s *JSONStore) AddRecord(record models.TrackerRecord) error {
	if err := s.loaded(); err != nil {
		return err
	}
	for _, r := range s.store.Records {
		if r.TrackerID == record.TrackerID && r.Day == record.Day {
			return nil
		}
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}
	s.store.Records = append(s.store.Records, record)
	return s.save()
}

func (s *JSONStore) DeleteRecord(trackerID, day string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	out := s.store.Records[:0]
	removed := false
	for _, r := range s.store.Records {
		if r.TrackerID == trackerID && r.Day == day {
			removed = true
			continue
		}
		out = append(out, r)
	}
	s.store.Records = out
	if !removed {
		return apperrors.NotFound("record", trackerID+"@"+day)
	}
	return s.save()
}

func (s *JSONStore) GetAllRecords() ([]models.TrackerRecord, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	return append([]models.TrackerRecord{}, s.store.Records...), nil
}

func (s *JSONStore) DeleteRecordsForTracker(trackerID string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	out := s.store.Records[:0]
	for _, r := range s.store.Records {
		if r.TrackerID != trackerID {
			out = append(out, r)
		}
	}
	s.store.Records = out
	return s.save()
}

func copyCategory(c models.TrackerCategory) models.TrackerCategory {
	return models.TrackerCategory{
		Title:    c.Title,
		Trackers: append([]models.Tracker{}, c.Trackers...),
	}
}
