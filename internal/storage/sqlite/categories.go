package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/julianstephens/tracker/internal/errors"
	"github.com/julianstephens/tracker/internal/models"
)

func (s *Store) conn() (*sql.DB, error) {
	if s.db == nil {
		return nil, apperrors.Storage("access database", fmt.Errorf("storage not loaded"))
	}
	return s.db, nil
}

func (s *Store) GetAllCategories() ([]models.TrackerCategory, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT title FROM categories ORDER BY position, title`)
	if err != nil {
		return nil, apperrors.Storage("query categories", err)
	}
	defer rows.Close()

	categories := []models.TrackerCategory{}
	index := make(map[string]int)
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, apperrors.Storage("scan category", err)
		}
		index[title] = len(categories)
		categories = append(categories, models.TrackerCategory{Title: title, Trackers: []models.Tracker{}})
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Storage("query categories", err)
	}

	trackerRows, err := db.Query(`
		SELECT category_title, ` + trackerColumns + `
		FROM trackers WHERE category_title IS NOT NULL
		ORDER BY position, row_id`)
	if err != nil {
		return nil, apperrors.Storage("query trackers", err)
	}
	defer trackerRows.Close()

	for trackerRows.Next() {
		var title sql.NullString
		t, err := scanTracker(trackerRows, &title)
		if err != nil {
			return nil, err
		}
		if i, ok := index[title.String]; ok {
			categories[i].Trackers = append(categories[i].Trackers, t)
		}
	}
	if err := trackerRows.Err(); err != nil {
		return nil, apperrors.Storage("query trackers", err)
	}

	return categories, nil
}

func (s *Store) GetCategory(title string) (models.TrackerCategory, error) {
	db, err := s.conn()
	if err != nil {
		return models.TrackerCategory{}, err
	}

	var found string
	err = db.QueryRow(`SELECT title FROM categories WHERE title = ?`, title).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return models.TrackerCategory{}, apperrors.NotFound("category", title)
	}
	if err != nil {
		return models.TrackerCategory{}, apperrors.Storage("get category", err)
	}

	rows, err := db.Query(`
		SELECT category_title, `+trackerColumns+`
		FROM trackers WHERE category_title = ?
		ORDER BY position, row_id`, title)
	if err != nil {
		return models.TrackerCategory{}, apperrors.Storage("query trackers", err)
	}
	defer rows.Close()

	category := models.TrackerCategory{Title: found, Trackers: []models.Tracker{}}
	for rows.Next() {
		var ignored sql.NullString
		t, err := scanTracker(rows, &ignored)
		if err != nil {
			return models.TrackerCategory{}, err
		}
		category.Trackers = append(category.Trackers, t)
	}
	if err := rows.Err(); err != nil {
		return models.TrackerCategory{}, apperrors.Storage("query trackers", err)
	}
	return category, nil
}

func (s *Store) AddCategory(category models.TrackerCategory) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return apperrors.Storage("begin transaction", err)
	}

	_, err = tx.Exec(`
		INSERT INTO categories (title, position, created_at)
		VALUES (?, (SELECT COALESCE(MAX(position), 0) + 1 FROM categories), ?)`,
		category.Title, time.Now().Format(time.RFC3339))
	if err != nil {
		_ = tx.Rollback()
		return apperrors.Storage("insert category", err)
	}

	if err := insertTrackers(tx, category.Title, 0, category.Trackers); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return apperrors.Storage("commit category", err)
	}
	return nil
}

func (s *Store) AppendTrackers(title string, trackers []models.Tracker) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return apperrors.Storage("begin transaction", err)
	}

	var count int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM categories WHERE title = ?`, title).Scan(&count); err != nil {
		_ = tx.Rollback()
		return apperrors.Storage("get category", err)
	}
	if count == 0 {
		_ = tx.Rollback()
		return apperrors.NotFound("category", title)
	}

	var last int
	if err := tx.QueryRow(`SELECT COALESCE(MAX(position), 0) FROM trackers WHERE category_title = ?`, title).Scan(&last); err != nil {
		_ = tx.Rollback()
		return apperrors.Storage("read tracker positions", err)
	}

	if err := insertTrackers(tx, title, last, trackers); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return apperrors.Storage("commit trackers", err)
	}
	return nil
}

func (s *Store) DeleteCategory(title string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	result, err := db.Exec(`DELETE FROM categories WHERE title = ?`, title)
	if err != nil {
		return apperrors.Storage("delete category", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Storage("delete category", err)
	}
	if rows == 0 {
		return apperrors.NotFound("category", title)
	}
	return nil
}

func insertTrackers(tx *sql.Tx, title string, after int, trackers []models.Tracker) error {
	for i, t := range trackers {
		schedule, err := encodeSchedule(t.Schedule)
		if err != nil {
			return apperrors.Storage("encode schedule", err)
		}
		_, err = tx.Exec(`
			INSERT INTO trackers (id, category_title, position, name, color, emoji, schedule, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID, title, after+i+1, t.Name, t.Color, t.Emoji, schedule, t.CreatedAt.Format(time.RFC3339))
		if err != nil {
			return apperrors.Storage("insert tracker", err)
		}
	}
	return nil
}
