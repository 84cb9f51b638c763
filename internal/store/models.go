package store

import "time"

// Auth represents OAuth tokens for Garmin API access
type Auth struct {
	UserID       string    `db:"user_id"`
	AccessToken  string    `db:"access_token"`
	RefreshToken string    `db:"refresh_token"`
	ExpiresAt    time.Time `db:"expires_at"`
}

// RHRSample is a single day's resting heart rate measurement
type RHRSample struct {
	Date time.Time `db:"date"` // midnight UTC, natural key
	RHR  int       `db:"rhr"`  // bpm
}

// HRVSample is a single day's heart rate variability measurement
type HRVSample struct {
	Date time.Time `db:"date"` // midnight UTC, natural key
	HRV  float64   `db:"hrv"`  // milliseconds
}

// Activity represents a single recorded training session
type Activity struct {
	ID           string    `db:"id"`   // natural key from the source
	Date         time.Time `db:"date"` // calendar day the activity belongs to
	Type         string    `db:"type"` // free-form, e.g. "cycling"
	StartTime    time.Time `db:"start_time"`
	Duration     float64   `db:"duration"` // seconds
	Distance     *float64  `db:"distance"` // meters, nullable
	LowIntensity bool      `db:"low_intensity"`
}

// DurationHours returns the activity duration in hours
func (a Activity) DurationHours() float64 {
	return a.Duration / 3600
}

// DailyRecord aggregates one calendar day's physiology and training.
// Records are reconstructed per query; every day in a requested range
// gets exactly one record even when all fields are absent.
type DailyRecord struct {
	Date       time.Time
	RHR        *int
	HRV        *float64
	Activities []Activity
}

// TotalDuration returns the day's total training time in seconds
func (d DailyRecord) TotalDuration() float64 {
	var total float64
	for _, a := range d.Activities {
		total += a.Duration
	}
	return total
}

// L2Duration returns the day's low-intensity training time in seconds
func (d DailyRecord) L2Duration() float64 {
	var total float64
	for _, a := range d.Activities {
		if a.LowIntensity {
			total += a.Duration
		}
	}
	return total
}

// L2Percentage returns the share of training time spent at low intensity,
// 0 when the day has no training
func (d DailyRecord) L2Percentage() float64 {
	total := d.TotalDuration()
	if total == 0 {
		return 0
	}
	return d.L2Duration() / total * 100
}

// Plausible measurement ranges. Values outside these bounds are flagged
// as suspect during sync but are stored anyway and participate in every
// aggregate.
const (
	MinPlausibleRHR = 30
	MaxPlausibleRHR = 150
	MinPlausibleHRV = 10.0
	MaxPlausibleHRV = 150.0
)

// PlausibleRHR reports whether an RHR value falls in the expected range
func PlausibleRHR(rhr int) bool {
	return rhr >= MinPlausibleRHR && rhr <= MaxPlausibleRHR
}

// PlausibleHRV reports whether an HRV value falls in the expected range
func PlausibleHRV(hrv float64) bool {
	return hrv >= MinPlausibleHRV && hrv <= MaxPlausibleHRV
}
