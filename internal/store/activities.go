package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// UpsertActivity inserts or updates an activity by its source identifier.
func (db *DB) UpsertActivity(a *Activity) error {
	_, err := db.Exec(`
		INSERT INTO activities (id, date, type, start_time, duration, distance, low_intensity)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			date = excluded.date,
			type = excluded.type,
			start_time = excluded.start_time,
			duration = excluded.duration,
			distance = excluded.distance,
			low_intensity = excluded.low_intensity,
			updated_at = CURRENT_TIMESTAMP`,
		a.ID, dateKey(a.Date), a.Type, a.StartTime.Format(time.RFC3339),
		a.Duration, a.Distance, boolToInt64(a.LowIntensity))
	return err
}

// GetActivity retrieves an activity by ID.
func (db *DB) GetActivity(id string) (*Activity, error) {
	row := db.QueryRow(`
		SELECT id, date, type, start_time, duration, distance, low_intensity
		FROM activities WHERE id = ?`, id)

	a, err := scanActivity(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrActivityNotFound
	}
	return a, err
}

// GetActivitiesRange returns activities with dates in [start, end],
// ordered by date then start time.
func (db *DB) GetActivitiesRange(start, end time.Time) ([]Activity, error) {
	rows, err := db.Query(`
		SELECT id, date, type, start_time, duration, distance, low_intensity
		FROM activities
		WHERE date >= ? AND date <= ?
		ORDER BY date, start_time`,
		dateKey(start), dateKey(end))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, *a)
	}
	return activities, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanActivity(row rowScanner) (*Activity, error) {
	var a Activity
	var date, startTime string
	var lowIntensity int64

	err := row.Scan(&a.ID, &date, &a.Type, &startTime, &a.Duration, &a.Distance, &lowIntensity)
	if err != nil {
		return nil, err
	}

	if a.Date, err = parseDateKey(date); err != nil {
		return nil, err
	}
	a.StartTime, err = time.Parse(time.RFC3339, startTime)
	if err != nil {
		return nil, fmt.Errorf("parsing start_time %q: %w", startTime, err)
	}
	a.LowIntensity = lowIntensity == 1

	return &a, nil
}

func boolToInt64(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
