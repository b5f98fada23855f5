package storage

import "github.com/julianstephens/tracker/internal/models"

// Provider is the persistence collaborator behind the engine. Missing keys
// are reported as errors.ErrNotFound; every other failure as errors.ErrStorage.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Categories, keyed by title
	GetAllCategories() ([]models.TrackerCategory, error)
	GetCategory(title string) (models.TrackerCategory, error)
	AddCategory(models.TrackerCategory) error
	// AppendTrackers adds trackers after the existing ones of the titled category
	AppendTrackers(title string, trackers []models.Tracker) error
	DeleteCategory(title string) error

	// Trackers, keyed by id
	GetAllTrackers() ([]models.Tracker, error)
	GetTracker(id string) (models.Tracker, error)
	// DeleteTracker removes every stored tracker with the id
	DeleteTracker(id string) error

	// Records, keyed by (tracker id, day)
	AddRecord(models.TrackerRecord) error
	DeleteRecord(trackerID, day string) error
	GetAllRecords() ([]models.TrackerRecord, error)
	DeleteRecordsForTracker(trackerID string) error

	// Utils
	GetConfigPath() string
}
