// Package source abstracts where wellness and activity data comes
// from. The sync service works against DataSource, so the Garmin API
// and the built-in mock generator are interchangeable.
package source

import (
	"context"
	"time"

	"zone2/internal/store"
)

// DataSource provides wellness samples and activities for a date range.
// All ranges are inclusive on both ends.
type DataSource interface {
	Name() string
	FetchRHR(ctx context.Context, start, end time.Time) ([]store.RHRSample, error)
	FetchHRV(ctx context.Context, start, end time.Time) ([]store.HRVSample, error)
	FetchActivities(ctx context.Context, start, end time.Time) ([]store.Activity, error)
}
