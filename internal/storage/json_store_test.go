package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/julianstephens/tracker/internal/errors"
	"github.com/julianstephens/tracker/internal/models"
	"github.com/julianstephens/tracker/internal/storage/postgres"
	"github.com/julianstephens/tracker/internal/storage/sqlite"
)

func setupTestJSONStore(t *testing.T) (*JSONStore, func()) {
	t.Helper()
	store := NewJSONStore(filepath.Join(t.TempDir(), "tracker.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	return store, func() { store.Close() }
}

func TestJSONStoreLifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tracker.json")

	if err := NewJSONStore(path).Load(); err == nil || !strings.Contains(err.Error(), "tracker init") {
		t.Fatalf("expected not initialized error, got %v", err)
	}

	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Init(); err == nil {
		t.Error("expected second Init to fail")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected store file: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("expected 0600 permissions, got %v", info.Mode().Perm())
	}

	if err := store.AddCategory(models.TrackerCategory{
		Title:    "Health",
		Trackers: []models.Tracker{{ID: "run", Name: "Run", Schedule: models.NewSchedule(models.Monday)}},
	}); err != nil {
		t.Fatalf("AddCategory failed: %v", err)
	}
	if err := store.AddRecord(models.TrackerRecord{TrackerID: "run", Day: "2025-01-13"}); err != nil {
		t.Fatalf("AddRecord failed: %v", err)
	}

	reloaded := NewJSONStore(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	c, err := reloaded.GetCategory("Health")
	if err != nil {
		t.Fatalf("GetCategory failed: %v", err)
	}
	if len(c.Trackers) != 1 || !c.Trackers[0].Schedule.Contains(models.Monday) {
		t.Errorf("unexpected category after reload: %+v", c)
	}
	records, _ := reloaded.GetAllRecords()
	if len(records) != 1 || records[0].CreatedAt.IsZero() {
		t.Errorf("unexpected records after reload: %+v", records)
	}
}

func TestJSONStoreNotLoaded(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "tracker.json"))
	if _, err := store.GetAllTrackers(); !apperrors.IsStorage(err) {
		t.Errorf("expected storage error, got %v", err)
	}
}

func TestJSONStoreCategories(t *testing.T) {
	store, cleanup := setupTestJSONStore(t)
	defer cleanup()

	if err := store.AddCategory(models.TrackerCategory{Title: "Health", Trackers: []models.Tracker{{ID: "a", Name: "A"}}}); err != nil {
		t.Fatalf("AddCategory failed: %v", err)
	}
	if err := store.AddCategory(models.TrackerCategory{Title: "Health"}); !apperrors.IsInvalidInput(err) {
		t.Errorf("expected duplicate title to be rejected, got %v", err)
	}
	if err := store.AppendTrackers("Health", []models.Tracker{{ID: "b", Name: "B"}}); err != nil {
		t.Fatalf("AppendTrackers failed: %v", err)
	}
	if err := store.AppendTrackers("Missing", nil); !apperrors.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}

	// Returned categories are copies
	categories, _ := store.GetAllCategories()
	categories[0].Trackers[0].Name = "changed"
	c, _ := store.GetCategory("Health")
	if c.Trackers[0].Name != "A" {
		t.Error("GetAllCategories leaked internal state")
	}

	if err := store.DeleteCategory("Health"); err != nil {
		t.Fatalf("DeleteCategory failed: %v", err)
	}
	if err := store.DeleteCategory("Health"); !apperrors.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
	trackers, _ := store.GetAllTrackers()
	if len(trackers) != 2 {
		t.Errorf("expected trackers to be kept as uncategorized, got %d", len(trackers))
	}
	if _, err := store.GetTracker("b"); err != nil {
		t.Errorf("expected uncategorized tracker to be found: %v", err)
	}
}

func TestJSONStoreTrackersAndRecords(t *testing.T) {
	store, cleanup := setupTestJSONStore(t)
	defer cleanup()

	if err := store.AddCategory(models.TrackerCategory{Title: "A", Trackers: []models.Tracker{{ID: "dup", Name: "1"}, {ID: "x", Name: "X"}}}); err != nil {
		t.Fatalf("AddCategory failed: %v", err)
	}
	if err := store.AddCategory(models.TrackerCategory{Title: "B", Trackers: []models.Tracker{{ID: "dup", Name: "2"}}}); err != nil {
		t.Fatalf("AddCategory failed: %v", err)
	}

	if err := store.DeleteTracker("dup"); err != nil {
		t.Fatalf("DeleteTracker failed: %v", err)
	}
	if _, err := store.GetTracker("dup"); !apperrors.IsNotFound(err) {
		t.Errorf("expected every copy removed, got %v", err)
	}
	if err := store.DeleteTracker("dup"); !apperrors.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := store.AddRecord(models.TrackerRecord{TrackerID: "x", Day: "2025-01-15"}); err != nil {
			t.Fatalf("AddRecord failed: %v", err)
		}
	}
	records, _ := store.GetAllRecords()
	if len(records) != 1 {
		t.Errorf("expected one record per day, got %d", len(records))
	}
	if err := store.DeleteRecord("x", "2025-01-14"); !apperrors.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
	if err := store.DeleteRecordsForTracker("x"); err != nil {
		t.Fatalf("DeleteRecordsForTracker failed: %v", err)
	}
	records, _ = store.GetAllRecords()
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}

func TestOpen(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	tests := []struct {
		name   string
		config string
		check  func(t *testing.T, p Provider)
	}{
		{"sqlite path", "/tmp/tracker.db", func(t *testing.T, p Provider) {
			if _, ok := p.(*sqlite.Store); !ok {
				t.Errorf("expected *sqlite.Store, got %T", p)
			}
		}},
		{"json path", "/tmp/tracker.JSON", func(t *testing.T, p Provider) {
			if _, ok := p.(*JSONStore); !ok {
				t.Errorf("expected *JSONStore, got %T", p)
			}
		}},
		{"postgres url", "postgres://tracker@localhost/tracker", func(t *testing.T, p Provider) {
			if _, ok := p.(*postgres.Store); !ok {
				t.Errorf("expected *postgres.Store, got %T", p)
			}
		}},
		{"postgres dsn", "host=localhost dbname=tracker", func(t *testing.T, p Provider) {
			if _, ok := p.(*postgres.Store); !ok {
				t.Errorf("expected *postgres.Store, got %T", p)
			}
		}},
		{"home expansion", "~/.config/tracker/tracker.db", func(t *testing.T, p Provider) {
			want := filepath.Join(home, ".config", "tracker", "tracker.db")
			if p.GetConfigPath() != want {
				t.Errorf("expected %s, got %s", want, p.GetConfigPath())
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Open(tt.config)
			if err != nil {
				t.Fatalf("Open(%q) failed: %v", tt.config, err)
			}
			tt.check(t, p)
		})
	}
}
