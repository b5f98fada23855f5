package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/julianstephens/tracker/internal/errors"
	"github.com/julianstephens/tracker/internal/models"
)

const trackerColumns = "id, name, color, emoji, schedule, created_at"

type scanner interface {
	Scan(dest ...any) error
}

// scanTracker reads category_title followed by trackerColumns
func scanTracker(row scanner, title *sql.NullString) (models.Tracker, error) {
	var t models.Tracker
	var schedule, createdAt string

	if err := row.Scan(title, &t.ID, &t.Name, &t.Color, &t.Emoji, &schedule, &createdAt); err != nil {
		return models.Tracker{}, apperrors.Storage("scan tracker", err)
	}

	if err := json.Unmarshal([]byte(schedule), &t.Schedule); err != nil {
		return models.Tracker{}, apperrors.Storage(fmt.Sprintf("parse schedule for tracker %s", t.ID), err)
	}

	var err error
	t.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Tracker{}, apperrors.Storage(fmt.Sprintf("parse created_at for tracker %s", t.ID), err)
	}
	return t, nil
}

func encodeSchedule(s models.Schedule) (string, error) {
	data, err := json.Marshal(models.NewSchedule(s...))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (s *Store) GetAllTrackers() ([]models.Tracker, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT category_title, ` + trackerColumns + ` FROM trackers ORDER BY row_id`)
	if err != nil {
		return nil, apperrors.Storage("query trackers", err)
	}
	defer rows.Close()

	trackers := []models.Tracker{}
	for rows.Next() {
		var title sql.NullString
		t, err := scanTracker(rows, &title)
		if err != nil {
			return nil, err
		}
		trackers = append(trackers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Storage("query trackers", err)
	}
	return trackers, nil
}

func (s *Store) GetTracker(id string) (models.Tracker, error) {
	db, err := s.conn()
	if err != nil {
		return models.Tracker{}, err
	}

	row := db.QueryRow(`
		SELECT category_title, `+trackerColumns+`
		FROM trackers WHERE id = ? ORDER BY row_id LIMIT 1`, id)

	var title sql.NullString
	t, err := scanTracker(row, &title)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Tracker{}, apperrors.NotFound("tracker", id)
	}
	if err != nil {
		return models.Tracker{}, err
	}
	return t, nil
}

func (s *Store) DeleteTracker(id string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	result, err := db.Exec(`DELETE FROM trackers WHERE id = ?`, id)
	if err != nil {
		return apperrors.Storage("delete tracker", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Storage("delete tracker", err)
	}
	if rows == 0 {
		return apperrors.NotFound("tracker", id)
	}
	return nil
}
