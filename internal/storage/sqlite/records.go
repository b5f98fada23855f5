package sqlite

import (
	"fmt"
	"time"

	apperrors "github.com/julianstephens/tracker/internal/errors"
	"github.com/julianstephens/tracker/internal/models"
)

// AddRecord inserts a completion mark. A second mark for the same day is ignored.
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
		VALUES (?, ?, ?)
		ON CONFLICT(tracker_id, day) DO NOTHING`,
		record.TrackerID, record.Day, createdAt.Format(time.RFC3339))
	if err != nil {
		return apperrors.Storage("insert record", err)
	}
	return nil
}

func (s *Store) DeleteRecord(trackerID, day string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	result, err := db.Exec(`DELETE FROM tracker_records WHERE tracker_id = ? AND day = ?`, trackerID, day)
	if err != nil {
		return apperrors.Storage("delete record", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Storage("delete record", err)
	}
	if rows == 0 {
		return apperrors.NotFound("record", trackerID+"@"+day)
	}
	return nil
}

func (s *Store) GetAllRecords() ([]models.TrackerRecord, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT tracker_id, day, created_at FROM tracker_records ORDER BY day, tracker_id`)
	if err != nil {
		return nil, apperrors.Storage("query records", err)
	}
	defer rows.Close()

	records := []models.TrackerRecord{}
	for rows.Next() {
		var r models.TrackerRecord
		var createdAt string
		if err := rows.Scan(&r.TrackerID, &r.Day, &createdAt); err != nil {
			return nil, apperrors.Storage("scan record", err)
		}
		r.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, apperrors.Storage(fmt.Sprintf("parse created_at for record %s@%s", r.TrackerID, r.Day), err)
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

	if _, err := db.Exec(`DELETE FROM tracker_records WHERE tracker_id = ?`, trackerID); err != nil {
		return apperrors.Storage("delete records", err)
	}
	return nil
}
