package analysis

import (
	"errors"
	"testing"
	"time"

	"zone2/internal/store"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(v int) *int          { return &v }
func floatPtr(v float64) *float64 { return &v }

// makeDailySeries builds a gap-free daily series of n days from start
func makeDailySeries(start time.Time, n int, build func(i int, rec *store.DailyRecord)) []store.DailyRecord {
	records := make([]store.DailyRecord, n)
	for i := range records {
		records[i] = store.DailyRecord{Date: start.AddDate(0, 0, i)}
		if build != nil {
			build(i, &records[i])
		}
	}
	return records
}

func TestGroupIntoWeeks_EmptyInput(t *testing.T) {
	if _, err := GroupIntoWeeks(nil); !errors.Is(err, ErrEmptySeries) {
		t.Errorf("err = %v, want ErrEmptySeries", err)
	}
}

func TestGroupIntoWeeks_MondayAnchoring(t *testing.T) {
	// Jan 3, 2024 is a Wednesday; the grid must anchor to Monday Jan 1
	// and stride in fixed 7-day windows from there.
	daily := makeDailySeries(day(2024, 1, 3), 14, nil)

	weeks, err := GroupIntoWeeks(daily)
	if err != nil {
		t.Fatalf("GroupIntoWeeks failed: %v", err)
	}

	if len(weeks) != 3 {
		t.Fatalf("got %d weeks, want 3", len(weeks))
	}

	wantStarts := []time.Time{day(2024, 1, 1), day(2024, 1, 8), day(2024, 1, 15)}
	wantDays := []int{5, 7, 2}
	for i, w := range weeks {
		if !w.StartDate.Equal(wantStarts[i]) {
			t.Errorf("week %d start = %s, want %s", i, w.StartDate, wantStarts[i])
		}
		if !w.EndDate.Equal(wantStarts[i].AddDate(0, 0, 6)) {
			t.Errorf("week %d end = %s, want start+6", i, w.EndDate)
		}
		if w.StartDate.Weekday() != time.Monday {
			t.Errorf("week %d start is a %s, want Monday", i, w.StartDate.Weekday())
		}
		if len(w.Days) != wantDays[i] {
			t.Errorf("week %d has %d days, want %d", i, len(w.Days), wantDays[i])
		}
	}
}

func TestGroupIntoWeeks_Partition(t *testing.T) {
	// Every daily record must land in exactly one week, in order.
	daily := makeDailySeries(day(2024, 2, 2), 25, nil) // Friday start
	weeks, err := GroupIntoWeeks(daily)
	if err != nil {
		t.Fatal(err)
	}

	var collected []store.DailyRecord
	for i, w := range weeks {
		if i > 0 {
			prev := weeks[i-1]
			if !w.StartDate.Equal(prev.StartDate.AddDate(0, 0, 7)) {
				t.Errorf("week %d start %s does not follow %s by 7 days", i, w.StartDate, prev.StartDate)
			}
		}
		collected = append(collected, w.Days...)
	}

	if len(collected) != len(daily) {
		t.Fatalf("weeks hold %d days, want %d", len(collected), len(daily))
	}
	for i := range daily {
		if !collected[i].Date.Equal(daily[i].Date) {
			t.Errorf("day %d = %s, want %s", i, collected[i].Date, daily[i].Date)
		}
	}
}

func TestGroupIntoWeeks_MondayStart(t *testing.T) {
	// A series already starting on Monday needs no backward alignment
	daily := makeDailySeries(day(2024, 1, 1), 7, nil)
	weeks, err := GroupIntoWeeks(daily)
	if err != nil {
		t.Fatal(err)
	}
	if len(weeks) != 1 {
		t.Fatalf("got %d weeks, want 1", len(weeks))
	}
	if !weeks[0].StartDate.Equal(day(2024, 1, 1)) {
		t.Errorf("start = %s, want 2024-01-01", weeks[0].StartDate)
	}
	if len(weeks[0].Days) != 7 {
		t.Errorf("days = %d, want 7", len(weeks[0].Days))
	}
}

func TestWeeklyRecord_Aggregates(t *testing.T) {
	daily := makeDailySeries(day(2024, 1, 1), 7, func(i int, rec *store.DailyRecord) {
		// RHR on first three days only, HRV nowhere
		if i < 3 {
			rec.RHR = intPtr(50 + i)
		}
		// One hour of training per day, L2 every other day
		rec.Activities = []store.Activity{{
			ID:           string(rune('a' + i)),
			Date:         rec.Date,
			Duration:     3600,
			LowIntensity: i%2 == 0,
		}}
	})

	weeks, err := GroupIntoWeeks(daily)
	if err != nil {
		t.Fatal(err)
	}
	w := weeks[0]

	if avg := w.AvgRHR(); avg == nil || *avg != 51 {
		t.Errorf("AvgRHR = %v, want 51", avg)
	}
	if avg := w.AvgHRV(); avg != nil {
		t.Errorf("AvgHRV = %v, want nil for all-missing week", *avg)
	}
	if got := w.TotalTrainingHours(); got != 7 {
		t.Errorf("TotalTrainingHours = %v, want 7", got)
	}
	if got := w.TotalL2Hours(); got != 4 {
		t.Errorf("TotalL2Hours = %v, want 4 (days 0,2,4,6)", got)
	}
	wantPct := 4.0 / 7.0 * 100
	if got := w.L2Percentage(); got < wantPct-0.01 || got > wantPct+0.01 {
		t.Errorf("L2Percentage = %v, want %v", got, wantPct)
	}
}

func TestWeeklyRecord_ZeroTraining(t *testing.T) {
	daily := makeDailySeries(day(2024, 1, 1), 7, nil)
	weeks, err := GroupIntoWeeks(daily)
	if err != nil {
		t.Fatal(err)
	}
	// No division error, no NaN
	if got := weeks[0].L2Percentage(); got != 0 {
		t.Errorf("L2Percentage = %v, want 0 for a week with no training", got)
	}
}

func TestBuildDailyRows(t *testing.T) {
	daily := makeDailySeries(day(2024, 1, 1), 3, func(i int, rec *store.DailyRecord) {
		if i == 1 {
			rec.RHR = intPtr(55)
			rec.HRV = floatPtr(48)
			rec.Activities = []store.Activity{
				{ID: "x", Duration: 5400, LowIntensity: true},
			}
		}
	})

	rows := BuildDailyRows(daily)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	if rows[0].RHR != nil || rows[0].HRV != nil {
		t.Error("empty day should have nil RHR/HRV")
	}
	if rows[0].L2Percentage != 0 {
		t.Errorf("empty day L2Percentage = %v, want 0", rows[0].L2Percentage)
	}

	if rows[1].RHR == nil || *rows[1].RHR != 55 {
		t.Errorf("day 1 RHR = %v, want 55", rows[1].RHR)
	}
	if rows[1].TotalDuration != 1.5 {
		t.Errorf("day 1 TotalDuration = %v hours, want 1.5", rows[1].TotalDuration)
	}
	if rows[1].L2Percentage != 100 {
		t.Errorf("day 1 L2Percentage = %v, want 100", rows[1].L2Percentage)
	}
}

func TestBuildWeeklyRows(t *testing.T) {
	daily := makeDailySeries(day(2024, 1, 1), 14, func(i int, rec *store.DailyRecord) {
		rec.RHR = intPtr(55)
		rec.HRV = floatPtr(45 + float64(i))
		rec.Activities = []store.Activity{
			{ID: string(rune('a' + i)), Duration: 1800, LowIntensity: true},
		}
	})
	weeks, err := GroupIntoWeeks(daily)
	if err != nil {
		t.Fatal(err)
	}

	rows := BuildWeeklyRows(weeks)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].AvgHRV == nil || *rows[0].AvgHRV != 48 {
		t.Errorf("week 0 AvgHRV = %v, want 48 (mean of 45..51)", rows[0].AvgHRV)
	}
	if rows[0].L2Hours != 3.5 {
		t.Errorf("week 0 L2Hours = %v, want 3.5", rows[0].L2Hours)
	}
	if rows[0].L2Percentage != 100 {
		t.Errorf("week 0 L2Percentage = %v, want 100", rows[0].L2Percentage)
	}
	if !rows[1].WeekStart.Equal(day(2024, 1, 8)) {
		t.Errorf("week 1 start = %s, want 2024-01-08", rows[1].WeekStart)
	}
}
