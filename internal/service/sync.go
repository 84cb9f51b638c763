package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"zone2/internal/source"
	"zone2/internal/store"
)

// SyncService pulls wellness data from a DataSource into the local
// database.
type SyncService struct {
	source       source.DataSource
	store        *store.DB
	lookbackDays int
}

// NewSyncService creates a new sync service
func NewSyncService(src source.DataSource, db *store.DB, lookbackDays int) *SyncService {
	if lookbackDays <= 0 {
		lookbackDays = DefaultLookbackDays
	}
	return &SyncService{
		source:       src,
		store:        db,
		lookbackDays: lookbackDays,
	}
}

// SyncProgress reports progress during sync
type SyncProgress struct {
	Phase     string // "rhr", "hrv", "activities"
	Total     int
	Completed int
	Error     error
}

// SyncResult contains the results of a sync operation
type SyncResult struct {
	RHRFetched        int
	RHRStored         int
	HRVFetched        int
	HRVStored         int
	ActivitiesFetched int
	ActivitiesStored  int
	SuspectValues     int
	Errors            []error
}

// SyncAll pulls the full lookback window: RHR, then HRV, then
// activities. Everything is upserted by its natural key, so repeat
// syncs are idempotent.
func (s *SyncService) SyncAll(ctx context.Context, progress chan<- SyncProgress) (*SyncResult, error) {
	if progress != nil {
		defer close(progress)
	}

	result := &SyncResult{}
	end := time.Now()
	start := end.AddDate(0, 0, -(s.lookbackDays - 1))

	if err := s.syncRHR(ctx, start, end, progress, result); err != nil {
		return result, fmt.Errorf("syncing resting heart rate: %w", err)
	}
	if err := s.syncHRV(ctx, start, end, progress, result); err != nil {
		return result, fmt.Errorf("syncing HRV: %w", err)
	}
	if err := s.syncActivities(ctx, start, end, progress, result); err != nil {
		return result, fmt.Errorf("syncing activities: %w", err)
	}

	if err := s.store.SetSyncState("last_sync", time.Now().Format(time.RFC3339)); err != nil {
		result.Errors = append(result.Errors, fmt.Errorf("recording sync time: %w", err))
	}

	return result, nil
}

func (s *SyncService) syncRHR(ctx context.Context, start, end time.Time, progress chan<- SyncProgress, result *SyncResult) error {
	if progress != nil {
		progress <- SyncProgress{Phase: "rhr"}
	}

	samples, err := s.source.FetchRHR(ctx, start, end)
	if err != nil {
		return err
	}
	result.RHRFetched = len(samples)

	for i, sample := range samples {
		if err := ctx.Err(); err != nil {
			return err
		}

		// Out-of-range values are logged but kept; the athlete may
		// really have been that stressed, or the watch that wrong.
		if !store.PlausibleRHR(sample.RHR) {
			log.Printf("suspect resting heart rate %d bpm on %s", sample.RHR, sample.Date.Format("2006-01-02"))
			result.SuspectValues++
		}

		if err := s.store.UpsertRHR(sample); err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("storing RHR for %s: %w", sample.Date.Format("2006-01-02"), err))
			continue
		}
		result.RHRStored++

		if progress != nil {
			progress <- SyncProgress{Phase: "rhr", Total: len(samples), Completed: i + 1}
		}
	}

	return nil
}

func (s *SyncService) syncHRV(ctx context.Context, start, end time.Time, progress chan<- SyncProgress, result *SyncResult) error {
	if progress != nil {
		progress <- SyncProgress{Phase: "hrv"}
	}

	samples, err := s.source.FetchHRV(ctx, start, end)
	if err != nil {
		return err
	}
	result.HRVFetched = len(samples)

	for i, sample := range samples {
		if err := ctx.Err(); err != nil {
			return err
		}

		if !store.PlausibleHRV(sample.HRV) {
			log.Printf("suspect HRV %.1f ms on %s", sample.HRV, sample.Date.Format("2006-01-02"))
			result.SuspectValues++
		}

		if err := s.store.UpsertHRV(sample); err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("storing HRV for %s: %w", sample.Date.Format("2006-01-02"), err))
			continue
		}
		result.HRVStored++

		if progress != nil {
			progress <- SyncProgress{Phase: "hrv", Total: len(samples), Completed: i + 1}
		}
	}

	return nil
}

func (s *SyncService) syncActivities(ctx context.Context, start, end time.Time, progress chan<- SyncProgress, result *SyncResult) error {
	if progress != nil {
		progress <- SyncProgress{Phase: "activities"}
	}

	activities, err := s.source.FetchActivities(ctx, start, end)
	if err != nil {
		return err
	}
	result.ActivitiesFetched = len(activities)

	for i, a := range activities {
		if err := ctx.Err(); err != nil {
			return err
		}

		activity := a
		if err := s.store.UpsertActivity(&activity); err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("storing activity %s: %w", a.ID, err))
			continue
		}
		result.ActivitiesStored++

		if progress != nil {
			progress <- SyncProgress{Phase: "activities", Total: len(activities), Completed: i + 1}
		}
	}

	return nil
}

// LastSync returns the time of the most recent successful sync
func (s *SyncService) LastSync() (time.Time, bool) {
	value, err := s.store.GetSyncState("last_sync")
	if err != nil || value == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// SourceName reports which data source the service syncs from
func (s *SyncService) SourceName() string {
	return s.source.Name()
}
