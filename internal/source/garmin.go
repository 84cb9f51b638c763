package source

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"zone2/internal/garmin"
	"zone2/internal/store"
)

// GarminSource adapts the Garmin wellness API to the DataSource
// interface.
type GarminSource struct {
	client  *garmin.Client
	l2MaxHR float64
}

// NewGarminSource creates a Garmin-backed data source. l2MaxHR is the
// heart rate ceiling for classifying an activity as low-intensity.
func NewGarminSource(client *garmin.Client, l2MaxHR float64) *GarminSource {
	return &GarminSource{client: client, l2MaxHR: l2MaxHR}
}

func (s *GarminSource) Name() string { return "garmin" }

// FetchRHR fetches daily resting heart rate samples. Days Garmin
// reports without a resting heart rate are skipped.
func (s *GarminSource) FetchRHR(ctx context.Context, start, end time.Time) ([]store.RHRSample, error) {
	summaries, err := s.client.GetDailySummaries(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetching daily summaries: %w", err)
	}

	samples := make([]store.RHRSample, 0, len(summaries))
	for _, summary := range summaries {
		if summary.RestingHeartRate == 0 {
			continue
		}
		date, err := summary.Date()
		if err != nil {
			log.Printf("skipping daily summary with bad date %q: %v", summary.CalendarDate, err)
			continue
		}
		samples = append(samples, store.RHRSample{
			Date: date,
			RHR:  summary.RestingHeartRate,
		})
	}

	return samples, nil
}

// FetchHRV fetches nightly HRV samples. Nights without a reading are
// skipped.
func (s *GarminSource) FetchHRV(ctx context.Context, start, end time.Time) ([]store.HRVSample, error) {
	summaries, err := s.client.GetHRVSummaries(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetching hrv summaries: %w", err)
	}

	samples := make([]store.HRVSample, 0, len(summaries))
	for _, summary := range summaries {
		if summary.LastNightAvg == 0 {
			continue
		}
		date, err := summary.Date()
		if err != nil {
			log.Printf("skipping hrv summary with bad date %q: %v", summary.CalendarDate, err)
			continue
		}
		samples = append(samples, store.HRVSample{
			Date: date,
			HRV:  summary.LastNightAvg,
		})
	}

	return samples, nil
}

// FetchActivities fetches activities and classifies each as low
// intensity or not from its average heart rate.
func (s *GarminSource) FetchActivities(ctx context.Context, start, end time.Time) ([]store.Activity, error) {
	activities, err := s.client.GetActivities(ctx, start, end, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching activities: %w", err)
	}

	result := make([]store.Activity, 0, len(activities))
	for _, a := range activities {
		act := store.Activity{
			ID:           a.ActivityID,
			Date:         truncateToDay(a.StartTimeLocal),
			Type:         normalizeActivityType(a.ActivityType),
			StartTime:    a.StartTimeLocal,
			Duration:     a.DurationSeconds,
			LowIntensity: s.classifyLowIntensity(a),
		}
		if a.DistanceMeters > 0 {
			d := a.DistanceMeters
			act.Distance = &d
		}
		result = append(result, act)
	}

	return result, nil
}

// classifyLowIntensity treats an activity as L2 work when its average
// heart rate stayed at or below the configured ceiling. Activities
// without heart rate data are conservatively not counted as L2.
func (s *GarminSource) classifyLowIntensity(a garmin.Activity) bool {
	return a.AverageHR > 0 && a.AverageHR <= s.l2MaxHR
}

func normalizeActivityType(t string) string {
	return strings.ToLower(strings.ReplaceAll(t, "_", " "))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
