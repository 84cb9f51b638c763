package source

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"zone2/internal/store"
)

// MockSource generates plausible wellness data without network access.
// Output is deterministic per date, so repeated syncs upsert the same
// rows instead of duplicating them. The generated athlete slowly adapts
// over the window: resting heart rate drifts down, HRV drifts up, and
// the share of low-intensity training grows.
type MockSource struct {
	seed int64

	// Trend endpoints over the generation window
	startDate  time.Time
	windowDays int
}

// Trend parameters for the generated athlete
const (
	mockBaseRHR     = 55.0
	mockRHRDrop     = 5.0 // bpm improvement over the window
	mockBaseHRV     = 48.0
	mockHRVGain     = 10.0 // ms improvement over the window
	mockActivityPct = 0.6
	mockL2StartPct  = 0.3
	mockL2EndPct    = 0.7
)

// mockIDNamespace keys deterministic activity IDs
var mockIDNamespace = uuid.MustParse("5e6f33aa-9d0c-4c7a-8f61-2b9b1a6a7c44")

// NewMockSource creates a mock source. The window anchors the
// improvement trends: day 0 uses the base values, the last day the
// fully adapted ones.
func NewMockSource(seed int64, start time.Time, windowDays int) *MockSource {
	if windowDays < 1 {
		windowDays = 1
	}
	return &MockSource{
		seed:       seed,
		startDate:  truncateToDay(start),
		windowDays: windowDays,
	}
}

func (s *MockSource) Name() string { return "mock" }

// FetchRHR generates one sample per day, with occasional missing days
// the way a watch left on the charger would produce.
func (s *MockSource) FetchRHR(ctx context.Context, start, end time.Time) ([]store.RHRSample, error) {
	var samples []store.RHRSample
	for d := truncateToDay(start); !d.After(end); d = d.AddDate(0, 0, 1) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rng := s.dayRand(d, 1)
		if rng.Float64() < 0.05 {
			continue // missed night
		}
		rhr := mockBaseRHR - mockRHRDrop*s.progress(d) + rng.NormFloat64()*1.5
		samples = append(samples, store.RHRSample{
			Date: d,
			RHR:  int(rhr + 0.5),
		})
	}
	return samples, nil
}

// FetchHRV generates nightly HRV averages on the improving trend
func (s *MockSource) FetchHRV(ctx context.Context, start, end time.Time) ([]store.HRVSample, error) {
	var samples []store.HRVSample
	for d := truncateToDay(start); !d.After(end); d = d.AddDate(0, 0, 1) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rng := s.dayRand(d, 2)
		if rng.Float64() < 0.08 {
			continue
		}
		hrv := mockBaseHRV + mockHRVGain*s.progress(d) + rng.NormFloat64()*4
		if hrv < store.MinPlausibleHRV {
			hrv = store.MinPlausibleHRV
		}
		samples = append(samples, store.HRVSample{
			Date: d,
			HRV:  hrv,
		})
	}
	return samples, nil
}

// FetchActivities generates zero or one activity per day. The L2 share
// grows over the window as the athlete's training shifts toward easy
// volume.
func (s *MockSource) FetchActivities(ctx context.Context, start, end time.Time) ([]store.Activity, error) {
	types := []string{"cycling", "running", "walking", "indoor cycling"}

	var activities []store.Activity
	for d := truncateToDay(start); !d.After(end); d = d.AddDate(0, 0, 1) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rng := s.dayRand(d, 3)
		if rng.Float64() >= mockActivityPct {
			continue // rest day
		}

		l2Pct := mockL2StartPct + (mockL2EndPct-mockL2StartPct)*s.progress(d)
		lowIntensity := rng.Float64() < l2Pct

		duration := 30*60 + rng.Float64()*90*60 // 30-120 min
		if lowIntensity {
			duration += 20 * 60 // easy sessions run longer
		}

		activityType := types[rng.Intn(len(types))]
		startTime := d.Add(time.Duration(6+rng.Intn(13)) * time.Hour)

		act := store.Activity{
			ID:           uuid.NewSHA1(mockIDNamespace, []byte(d.Format("2006-01-02"))).String(),
			Date:         d,
			Type:         activityType,
			StartTime:    startTime,
			Duration:     duration,
			LowIntensity: lowIntensity,
		}
		if activityType != "indoor cycling" {
			speed := 2.5 // m/s walking pace
			if activityType == "cycling" {
				speed = 7.5
			} else if activityType == "running" {
				speed = 3.2
			}
			dist := duration * speed
			act.Distance = &dist
		}
		activities = append(activities, act)
	}
	return activities, nil
}

// progress maps a date to [0, 1] across the generation window
func (s *MockSource) progress(d time.Time) float64 {
	days := int(d.Sub(s.startDate).Hours() / 24)
	if days < 0 {
		return 0
	}
	if days >= s.windowDays {
		return 1
	}
	return float64(days) / float64(s.windowDays)
}

// dayRand returns a generator keyed by date and stream, so each day's
// values never change between syncs.
func (s *MockSource) dayRand(d time.Time, stream int64) *rand.Rand {
	return rand.New(rand.NewSource(s.seed ^ d.Unix()*31 ^ stream))
}
