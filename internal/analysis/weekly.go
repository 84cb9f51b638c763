package analysis

import (
	"errors"
	"time"

	"zone2/internal/store"
)

// ErrEmptySeries is returned when weekly grouping is asked to chunk an
// empty daily series. This is a caller bug, not a data-sparsity
// condition, so it surfaces as an error rather than an empty result.
var ErrEmptySeries = errors.New("daily series is empty")

// WeeklyRecord is a Monday-aligned calendar week of daily records.
// The first and last week of a range may hold fewer than 7 days.
type WeeklyRecord struct {
	StartDate time.Time // always a Monday
	EndDate   time.Time // StartDate + 6 days
	Days      []store.DailyRecord
}

// AvgRHR returns the mean RHR over days with a measurement, nil when the
// week has none
func (w WeeklyRecord) AvgRHR() *float64 {
	var sum float64
	var n int
	for _, d := range w.Days {
		if d.RHR != nil {
			sum += float64(*d.RHR)
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := sum / float64(n)
	return &avg
}

// AvgHRV returns the mean HRV over days with a measurement, nil when the
// week has none
func (w WeeklyRecord) AvgHRV() *float64 {
	var sum float64
	var n int
	for _, d := range w.Days {
		if d.HRV != nil {
			sum += *d.HRV
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := sum / float64(n)
	return &avg
}

// TotalL2Hours returns the week's low-intensity training time in hours
func (w WeeklyRecord) TotalL2Hours() float64 {
	var total float64
	for _, d := range w.Days {
		total += d.L2Duration()
	}
	return total / 3600
}

// TotalTrainingHours returns the week's total training time in hours
func (w WeeklyRecord) TotalTrainingHours() float64 {
	var total float64
	for _, d := range w.Days {
		total += d.TotalDuration()
	}
	return total / 3600
}

// L2Percentage returns the share of weekly training time at low
// intensity, 0 when the week has no training
func (w WeeklyRecord) L2Percentage() float64 {
	total := w.TotalTrainingHours()
	if total == 0 {
		return 0
	}
	return w.TotalL2Hours() / total * 100
}

// GroupIntoWeeks chunks a gap-free ascending daily series into calendar
// weeks. The week grid is anchored to the Monday on or before the FIRST
// record's date and advances in fixed 7-day strides; each week collects
// whatever days fall in its window. Weeks with no days are skipped, so
// the result is contiguous and non-overlapping with a possibly partial
// final week.
func GroupIntoWeeks(daily []store.DailyRecord) ([]WeeklyRecord, error) {
	if len(daily) == 0 {
		return nil, ErrEmptySeries
	}

	first := daily[0].Date
	last := daily[len(daily)-1].Date

	// time.Weekday puts Sunday at 0; shift so Monday is 0
	offset := (int(first.Weekday()) + 6) % 7
	alignedStart := first.AddDate(0, 0, -offset)

	var weeks []WeeklyRecord
	for start := alignedStart; !start.After(last); start = start.AddDate(0, 0, 7) {
		end := start.AddDate(0, 0, 6)

		var days []store.DailyRecord
		for _, d := range daily {
			if !d.Date.Before(start) && !d.Date.After(end) {
				days = append(days, d)
			}
		}

		if len(days) > 0 {
			weeks = append(weeks, WeeklyRecord{
				StartDate: start,
				EndDate:   end,
				Days:      days,
			})
		}
	}

	return weeks, nil
}
