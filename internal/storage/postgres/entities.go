package postgres

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/julianstephens/tracker/internal/errors"
	"github.com/julianstephens/tracker/internal/models"
)

const trackerColumns = "category_title, id, name, color, emoji, schedule::text, created_at"

type scanner interface {
	Scan(dest ...any) error
}

func scanTracker(row scanner) (models.Tracker, sql.NullString, error) {
	var t models.Tracker
	var title sql.NullString
	var schedule string

	if err := row.Scan(&title, &t.ID, &t.Name, &t.Color, &t.Emoji, &schedule, &t.CreatedAt); err != nil {
		return models.Tracker{}, title, apperrors.Storage("scan tracker", err)
	}
	if err := json.Unmarshal([]byte(schedule), &t.Schedule); err != nil {
		return models.Tracker{}, title, apperrors.Storage(fmt.Sprintf("parse schedule for tracker %s", t.ID), err)
	}
	return t, title, nil
}

func (s *Store) queryTrackers(query string, args ...any) ([]models.Tracker, []sql.NullString, error) {
	db, err := s.conn()
	if err != nil {
		return nil, nil, err
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, nil, apperrors.Storage("query trackers", err)
	}
	defer rows.Close()

	trackers := []models.Tracker{}
	var titles []sql.NullString
	for rows.Next() {
		t, title, err := scanTracker(rows)
		if err != nil {
			return nil, nil, err
		}
		trackers = append(trackers, t)
		titles = append(titles, title)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.Storage("query trackers", err)
	}
	return trackers, titles, nil
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

	trackers, titles, err := s.queryTrackers(`SELECT ` + trackerColumns + ` FROM trackers WHERE category_title IS NOT NULL ORDER BY position, row_id`)
	if err != nil {
		return nil, err
	}
	for i, t := range trackers {
		if j, ok := index[titles[i].String]; ok {
			categories[j].Trackers = append(categories[j].Trackers, t)
		}
	}
	return categories, nil
}

func (s *Store) GetCategory(title string) (models.TrackerCategory, error) {
	db, err := s.conn()
	if err != nil {
		return models.TrackerCategory{}, err
	}

	var found string
	err = db.QueryRow(`SELECT title FROM categories WHERE title = $1`, title).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return models.TrackerCategory{}, apperrors.NotFound("category", title)
	}
	if err != nil {
		return models.TrackerCategory{}, apperrors.Storage("get category", err)
	}

	trackers, _, err := s.queryTrackers(`SELECT `+trackerColumns+` FROM trackers WHERE category_title = $1 ORDER BY position, row_id`, title)
	if err != nil {
		return models.TrackerCategory{}, err
	}
	return models.TrackerCategory{Title: found, Trackers: trackers}, nil
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
		VALUES ($1, (SELECT COALESCE(MAX(position), 0) + 1 FROM categories), $2)`,
		category.Title, time.Now())
	if err != nil {
		_ = tx.Rollback()
		if isUniqueViolation(err) {
			return apperrors.InvalidInput("category %q already exists", category.Title)
		}
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

	// Lock the category row so concurrent appends get distinct positions
	var found string
	err = tx.QueryRow(`SELECT title FROM categories WHERE title = $1 FOR UPDATE`, title).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		_ = tx.Rollback()
		return apperrors.NotFound("category", title)
	}
	if err != nil {
		_ = tx.Rollback()
		return apperrors.Storage("get category", err)
	}

	var last int
	if err := tx.QueryRow(`SELECT COALESCE(MAX(position), 0) FROM trackers WHERE category_title = $1`, title).Scan(&last); err != nil {
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
	return s.execDelete("category", title, `DELETE FROM categories WHERE title = $1`, title)
}

func insertTrackers(tx *sql.Tx, title string, after int, trackers []models.Tracker) error {
	for i, t := range trackers {
		schedule, err := json.Marshal(models.NewSchedule(t.Schedule...))
		if err != nil {
			return apperrors.Storage("encode schedule", err)
		}
		_, err = tx.Exec(`
			INSERT INTO trackers (id, category_title, position, name, color, emoji, schedule, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb, $8)`,
			t.ID, title, after+i+1, t.Name, t.Color, t.Emoji, string(schedule), t.CreatedAt)
		if err != nil {
			return apperrors.Storage("insert tracker", err)
		}
	}
	return nil
}

func (s *Store) GetAllTrackers() ([]models.Tracker, error) {
	trackers, _, err := s.queryTrackers(`SELECT ` + trackerColumns + ` FROM trackers ORDER BY row_id`)
	return trackers, err
}

func (s *Store) GetTracker(id string) (models.Tracker, error) {
	trackers, _, err := s.queryTrackers(`SELECT `+trackerColumns+` FROM trackers WHERE id = $1 ORDER BY row_id LIMIT 1`, id)
	if err != nil {
		return models.Tracker{}, err
	}
	if len(trackers) == 0 {
		return models.Tracker{}, apperrors.NotFound("tracker", id)
	}
	return trackers[0], nil
}

func (s *Store) DeleteTracker(id string) error {
	return s.execDelete("tracker", id, `DELETE FROM trackers WHERE id = $1`, id)
}

func (s *Store) AddRecord(record models.TrackerRecord) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err = db.Exec(`
		INSERT INTO tracker_records (tracker_id, day, created_at)
		VALUES ($1, $2::date, $3)
		ON CONFLICT (tracker_id, day) DO NOTHING`,
		record.TrackerID, record.Day, createdAt)
	if err != nil {
		return apperrors.Storage("insert record", err)
	}
	return nil
}

func (s *Store) DeleteRecord(trackerID, day string) error {
	return s.execDelete("record", trackerID+"@"+day,
		`DELETE FROM tracker_records WHERE tracker_id = $1 AND day = $2::date`, trackerID, day)
}

func (s *Store) GetAllRecords() ([]models.TrackerRecord, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT tracker_id, to_char(day, 'YYYY-MM-DD'), created_at
		FROM tracker_records ORDER BY day, tracker_id`)
	if err != nil {
		return nil, apperrors.Storage("query records", err)
	}
	defer rows.Close()

	records := []models.TrackerRecord{}
	for rows.Next() {
		var r models.TrackerRecord
		if err := rows.Scan(&r.TrackerID, &r.Day, &r.CreatedAt); err != nil {
			return nil, apperrors.Storage("scan record", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Storage("query records", err)
	}
	return records, nil
}

func (s *Store) DeleteRecordsForTracker(trackerID string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	if _, err := db.Exec(`DELETE FROM tracker_records WHERE tracker_id = $1`, trackerID); err != nil {
		return apperrors.Storage("delete records", err)
	}
	return nil
}

// execDelete runs a keyed DELETE and maps zero affected rows to NotFound
func (s *Store) execDelete(kind, key, query string, args ...any) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	result, err := db.Exec(query, args...)
	if err != nil {
		return apperrors.Storage("delete "+kind, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Storage("delete "+kind, err)
	}
	if rows == 0 {
		return apperrors.NotFound(kind, key)
	}
	return nil
}
