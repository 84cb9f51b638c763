package store

import (
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

// setupTestDB creates an in-memory database for testing
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		sqlDB.Close()
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := migrate(sqlDB); err != nil {
		sqlDB.Close()
		t.Fatalf("Failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return &DB{sqlDB}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestUpsertRHR_UpdatesByDate(t *testing.T) {
	db := setupTestDB(t)

	date := day(2024, 3, 4)
	if err := db.UpsertRHR(RHRSample{Date: date, RHR: 55}); err != nil {
		t.Fatalf("UpsertRHR failed: %v", err)
	}
	if err := db.UpsertRHR(RHRSample{Date: date, RHR: 52}); err != nil {
		t.Fatalf("UpsertRHR update failed: %v", err)
	}

	samples, err := db.GetRHRRange(date, date)
	if err != nil {
		t.Fatalf("GetRHRRange failed: %v", err)
	}
	if len(samples) != 1 {
		t.Fatalf("got %d samples, want 1", len(samples))
	}
	if samples[0].RHR != 52 {
		t.Errorf("RHR = %d, want 52 (latest upsert)", samples[0].RHR)
	}
}

func TestUpsertActivity_UpdatesByID(t *testing.T) {
	db := setupTestDB(t)

	dist := 25000.0
	a := &Activity{
		ID:           "garmin-100",
		Date:         day(2024, 3, 4),
		Type:         "cycling",
		StartTime:    time.Date(2024, 3, 4, 7, 30, 0, 0, time.UTC),
		Duration:     5400,
		Distance:     &dist,
		LowIntensity: true,
	}
	if err := db.UpsertActivity(a); err != nil {
		t.Fatalf("UpsertActivity failed: %v", err)
	}

	a.Duration = 5700
	a.LowIntensity = false
	if err := db.UpsertActivity(a); err != nil {
		t.Fatalf("UpsertActivity update failed: %v", err)
	}

	fetched, err := db.GetActivity("garmin-100")
	if err != nil {
		t.Fatalf("GetActivity failed: %v", err)
	}
	if fetched.Duration != 5700 {
		t.Errorf("Duration = %v, want 5700", fetched.Duration)
	}
	if fetched.LowIntensity {
		t.Error("LowIntensity should have been updated to false")
	}
	if fetched.Distance == nil || *fetched.Distance != 25000 {
		t.Errorf("Distance = %v, want 25000", fetched.Distance)
	}
}

func TestGetActivity_NotFound(t *testing.T) {
	db := setupTestDB(t)

	if _, err := db.GetActivity("missing"); err != ErrActivityNotFound {
		t.Errorf("err = %v, want ErrActivityNotFound", err)
	}
}

func TestGetDailyRecords_GapFreeCoverage(t *testing.T) {
	db := setupTestDB(t)

	// Sparse data: RHR on two days, HRV on one, a single activity
	if err := db.UpsertRHR(RHRSample{Date: day(2024, 3, 4), RHR: 55}); err != nil {
		t.Fatal(err)
	}
	if err := db.UpsertRHR(RHRSample{Date: day(2024, 3, 8), RHR: 53}); err != nil {
		t.Fatal(err)
	}
	if err := db.UpsertHRV(HRVSample{Date: day(2024, 3, 5), HRV: 48.5}); err != nil {
		t.Fatal(err)
	}
	err := db.UpsertActivity(&Activity{
		ID:        "a1",
		Date:      day(2024, 3, 6),
		Type:      "running",
		StartTime: time.Date(2024, 3, 6, 18, 0, 0, 0, time.UTC),
		Duration:  3600,
	})
	if err != nil {
		t.Fatal(err)
	}

	start, end := day(2024, 3, 1), day(2024, 3, 10)
	records, err := db.GetDailyRecords(start, end)
	if err != nil {
		t.Fatalf("GetDailyRecords failed: %v", err)
	}

	// One record per calendar day, no gaps, no duplicates
	if len(records) != 10 {
		t.Fatalf("got %d records, want 10", len(records))
	}
	for i, rec := range records {
		want := start.AddDate(0, 0, i)
		if !rec.Date.Equal(want) {
			t.Errorf("record %d date = %s, want %s", i, rec.Date, want)
		}
	}

	// Spot-check sparse fields
	if records[3].RHR == nil || *records[3].RHR != 55 {
		t.Errorf("Mar 4 RHR = %v, want 55", records[3].RHR)
	}
	if records[4].HRV == nil || *records[4].HRV != 48.5 {
		t.Errorf("Mar 5 HRV = %v, want 48.5", records[4].HRV)
	}
	if len(records[5].Activities) != 1 {
		t.Errorf("Mar 6 activities = %d, want 1", len(records[5].Activities))
	}
	if records[0].RHR != nil || records[0].HRV != nil || len(records[0].Activities) != 0 {
		t.Error("Mar 1 should be completely empty")
	}
}

func TestGetDailyRecords_InvalidRange(t *testing.T) {
	db := setupTestDB(t)

	if _, err := db.GetDailyRecords(day(2024, 3, 10), day(2024, 3, 1)); err == nil {
		t.Error("expected error for end before start")
	}
}

func TestGetDailyRecords_OutOfRangeValuesKept(t *testing.T) {
	db := setupTestDB(t)

	// Implausible values are stored and returned, never rejected
	if err := db.UpsertRHR(RHRSample{Date: day(2024, 3, 4), RHR: 200}); err != nil {
		t.Fatal(err)
	}
	if err := db.UpsertHRV(HRVSample{Date: day(2024, 3, 4), HRV: 3.2}); err != nil {
		t.Fatal(err)
	}

	records, err := db.GetDailyRecords(day(2024, 3, 4), day(2024, 3, 4))
	if err != nil {
		t.Fatal(err)
	}
	if records[0].RHR == nil || *records[0].RHR != 200 {
		t.Errorf("RHR = %v, want 200 kept despite implausibility", records[0].RHR)
	}
	if records[0].HRV == nil || *records[0].HRV != 3.2 {
		t.Errorf("HRV = %v, want 3.2 kept despite implausibility", records[0].HRV)
	}
	if PlausibleRHR(200) {
		t.Error("PlausibleRHR(200) should be false")
	}
	if PlausibleHRV(3.2) {
		t.Error("PlausibleHRV(3.2) should be false")
	}
}

func TestDailyRecordDerived(t *testing.T) {
	rec := DailyRecord{
		Date: day(2024, 3, 4),
		Activities: []Activity{
			{ID: "a", Duration: 3600, LowIntensity: true},
			{ID: "b", Duration: 1800, LowIntensity: false},
		},
	}

	if got := rec.TotalDuration(); got != 5400 {
		t.Errorf("TotalDuration = %v, want 5400", got)
	}
	if got := rec.L2Duration(); got != 3600 {
		t.Errorf("L2Duration = %v, want 3600", got)
	}
	if got := rec.L2Percentage(); got < 66.6 || got > 66.7 {
		t.Errorf("L2Percentage = %v, want ~66.67", got)
	}

	// Zero training duration yields 0, not NaN
	empty := DailyRecord{Date: day(2024, 3, 5)}
	if got := empty.L2Percentage(); got != 0 {
		t.Errorf("L2Percentage of empty day = %v, want 0", got)
	}
}

func TestSyncState(t *testing.T) {
	db := setupTestDB(t)

	value, err := db.GetSyncState("last_sync")
	if err != nil {
		t.Fatalf("GetSyncState failed: %v", err)
	}
	if value != "" {
		t.Errorf("missing key = %q, want empty string", value)
	}

	if err := db.SetSyncState("last_sync", "2024-03-04"); err != nil {
		t.Fatalf("SetSyncState failed: %v", err)
	}
	if err := db.SetSyncState("last_sync", "2024-03-05"); err != nil {
		t.Fatalf("SetSyncState update failed: %v", err)
	}

	value, err = db.GetSyncState("last_sync")
	if err != nil {
		t.Fatal(err)
	}
	if value != "2024-03-05" {
		t.Errorf("value = %q, want 2024-03-05", value)
	}
}
