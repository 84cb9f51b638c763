package store

import "time"

// UpsertRHR inserts or updates the resting heart rate for a day.
func (db *DB) UpsertRHR(sample RHRSample) error {
	_, err := db.Exec(`
		INSERT INTO rhr_records (date, rhr)
		VALUES (?, ?)
		ON CONFLICT(date) DO UPDATE SET
			rhr = excluded.rhr,
			updated_at = CURRENT_TIMESTAMP`,
		dateKey(sample.Date), sample.RHR)
	return err
}

// UpsertHRV inserts or updates the heart rate variability for a day.
func (db *DB) UpsertHRV(sample HRVSample) error {
	_, err := db.Exec(`
		INSERT INTO hrv_records (date, hrv)
		VALUES (?, ?)
		ON CONFLICT(date) DO UPDATE SET
			hrv = excluded.hrv,
			updated_at = CURRENT_TIMESTAMP`,
		dateKey(sample.Date), sample.HRV)
	return err
}

// GetRHRRange returns RHR samples in [start, end], sorted by date.
func (db *DB) GetRHRRange(start, end time.Time) ([]RHRSample, error) {
	rows, err := db.Query(`
		SELECT date, rhr FROM rhr_records
		WHERE date >= ? AND date <= ?
		ORDER BY date`,
		dateKey(start), dateKey(end))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var samples []RHRSample
	for rows.Next() {
		var s RHRSample
		var date string
		if err := rows.Scan(&date, &s.RHR); err != nil {
			return nil, err
		}
		if s.Date, err = parseDateKey(date); err != nil {
			return nil, err
		}
		samples = append(samples, s)
	}
	return samples, rows.Err()
}

// GetHRVRange returns HRV samples in [start, end], sorted by date.
func (db *DB) GetHRVRange(start, end time.Time) ([]HRVSample, error) {
	rows, err := db.Query(`
		SELECT date, hrv FROM hrv_records
		WHERE date >= ? AND date <= ?
		ORDER BY date`,
		dateKey(start), dateKey(end))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var samples []HRVSample
	for rows.Next() {
		var s HRVSample
		var date string
		if err := rows.Scan(&date, &s.HRV); err != nil {
			return nil, err
		}
		if s.Date, err = parseDateKey(date); err != nil {
			return nil, err
		}
		samples = append(samples, s)
	}
	return samples, rows.Err()
}
