package analysis

import (
	"time"

	"zone2/internal/store"
)

// DailyRow is one row of the daily analysis table, durations in hours
type DailyRow struct {
	Date          time.Time
	RHR           *float64
	HRV           *float64
	TotalDuration float64 // hours
	L2Duration    float64 // hours
	L2Percentage  float64
}

// WeeklyRow is one row of the weekly analysis table
type WeeklyRow struct {
	WeekStart          time.Time
	WeekEnd            time.Time
	AvgRHR             *float64
	AvgHRV             *float64
	TotalTrainingHours float64
	L2Hours            float64
	L2Percentage       float64
}

// BuildDailyRows converts daily records into the flat table the
// presentation layer charts from, one row per input record.
func BuildDailyRows(daily []store.DailyRecord) []DailyRow {
	rows := make([]DailyRow, 0, len(daily))
	for _, d := range daily {
		row := DailyRow{
			Date:          d.Date,
			TotalDuration: d.TotalDuration() / 3600,
			L2Duration:    d.L2Duration() / 3600,
			L2Percentage:  d.L2Percentage(),
		}
		if d.RHR != nil {
			rhr := float64(*d.RHR)
			row.RHR = &rhr
		}
		if d.HRV != nil {
			hrv := *d.HRV
			row.HRV = &hrv
		}
		rows = append(rows, row)
	}
	return rows
}

// BuildWeeklyRows converts weekly records into the flat table the
// correlation and trend engines consume.
func BuildWeeklyRows(weeks []WeeklyRecord) []WeeklyRow {
	rows := make([]WeeklyRow, 0, len(weeks))
	for _, w := range weeks {
		rows = append(rows, WeeklyRow{
			WeekStart:          w.StartDate,
			WeekEnd:            w.EndDate,
			AvgRHR:             w.AvgRHR(),
			AvgHRV:             w.AvgHRV(),
			TotalTrainingHours: w.TotalTrainingHours(),
			L2Hours:            w.TotalL2Hours(),
			L2Percentage:       w.L2Percentage(),
		})
	}
	return rows
}
