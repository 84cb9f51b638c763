package store

import (
	"fmt"
	"time"
)

// DataRange returns the earliest and latest calendar dates that have
// any stored data (RHR, HRV, or activities). ok is false when the
// database is empty.
func (db *DB) DataRange() (start, end time.Time, ok bool, err error) {
	row := db.QueryRow(`
		SELECT MIN(d), MAX(d) FROM (
			SELECT MIN(date) AS d FROM rhr_records
			UNION ALL SELECT MAX(date) FROM rhr_records
			UNION ALL SELECT MIN(date) FROM hrv_records
			UNION ALL SELECT MAX(date) FROM hrv_records
			UNION ALL SELECT MIN(date) FROM activities
			UNION ALL SELECT MAX(date) FROM activities
		) WHERE d IS NOT NULL
	`)

	var minKey, maxKey *string
	if err := row.Scan(&minKey, &maxKey); err != nil {
		return time.Time{}, time.Time{}, false, fmt.Errorf("querying data range: %w", err)
	}
	if minKey == nil || maxKey == nil {
		return time.Time{}, time.Time{}, false, nil
	}

	start, err = parseDateKey(*minKey)
	if err != nil {
		return time.Time{}, time.Time{}, false, err
	}
	end, err = parseDateKey(*maxKey)
	if err != nil {
		return time.Time{}, time.Time{}, false, err
	}

	return start, end, true, nil
}
