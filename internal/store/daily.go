package store

import (
	"fmt"
	"time"
)

// GetDailyRecords reconstructs one DailyRecord per calendar day in
// [start, end]. Days without stored measurements or activities still get
// a record with nil fields, so the returned slice is always gap-free,
// sorted ascending, with exactly (end-start)+1 entries.
func (db *DB) GetDailyRecords(start, end time.Time) ([]DailyRecord, error) {
	start = truncateToDay(start)
	end = truncateToDay(end)
	if end.Before(start) {
		return nil, fmt.Errorf("invalid range: end %s before start %s", dateKey(end), dateKey(start))
	}

	rhrSamples, err := db.GetRHRRange(start, end)
	if err != nil {
		return nil, fmt.Errorf("loading RHR records: %w", err)
	}
	hrvSamples, err := db.GetHRVRange(start, end)
	if err != nil {
		return nil, fmt.Errorf("loading HRV records: %w", err)
	}
	activities, err := db.GetActivitiesRange(start, end)
	if err != nil {
		return nil, fmt.Errorf("loading activities: %w", err)
	}

	rhrByDate := make(map[string]int, len(rhrSamples))
	for _, s := range rhrSamples {
		rhrByDate[dateKey(s.Date)] = s.RHR
	}
	hrvByDate := make(map[string]float64, len(hrvSamples))
	for _, s := range hrvSamples {
		hrvByDate[dateKey(s.Date)] = s.HRV
	}
	activitiesByDate := make(map[string][]Activity)
	for _, a := range activities {
		key := dateKey(a.Date)
		activitiesByDate[key] = append(activitiesByDate[key], a)
	}

	var records []DailyRecord
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := dateKey(d)
		rec := DailyRecord{
			Date:       d,
			Activities: activitiesByDate[key],
		}
		if rhr, ok := rhrByDate[key]; ok {
			rec.RHR = &rhr
		}
		if hrv, ok := hrvByDate[key]; ok {
			rec.HRV = &hrv
		}
		records = append(records, rec)
	}

	return records, nil
}

// truncateToDay strips the time-of-day component, keeping midnight UTC
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
