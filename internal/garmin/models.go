package garmin

import "time"

// DailySummary represents one day's wellness summary from the API
type DailySummary struct {
	CalendarDate     string `json:"calendarDate"` // YYYY-MM-DD
	RestingHeartRate int    `json:"restingHeartRate"`
}

// HRVSummary represents one night's HRV summary from the API
type HRVSummary struct {
	CalendarDate string  `json:"calendarDate"` // YYYY-MM-DD
	LastNightAvg float64 `json:"lastNightAvg"` // ms
}

// Activity represents a recorded activity from the API
type Activity struct {
	ActivityID      string    `json:"activityId"`
	ActivityType    string    `json:"activityType"`
	StartTimeLocal  time.Time `json:"startTimeLocal"`
	DurationSeconds float64   `json:"durationInSeconds"`
	DistanceMeters  float64   `json:"distanceInMeters"`
	AverageHR       float64   `json:"averageHeartRateInBeatsPerMinute"`
}

// Date parses the summary's calendar date
func (s DailySummary) Date() (time.Time, error) {
	return time.Parse("2006-01-02", s.CalendarDate)
}

// Date parses the summary's calendar date
func (s HRVSummary) Date() (time.Time, error) {
	return time.Parse("2006-01-02", s.CalendarDate)
}
