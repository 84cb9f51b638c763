package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"zone2/internal/analysis"
	"zone2/internal/config"
	"zone2/internal/store"
)

// ErrNoData is returned by queries when nothing has been synced yet
var ErrNoData = errors.New("no data synced yet")

// QueryService provides read-only queries for the TUI
type QueryService struct {
	store      *store.DB
	chartWeeks int
}

// NewQueryService creates a new query service
func NewQueryService(db *store.DB, chartWeeks int) *QueryService {
	if chartWeeks <= 0 {
		chartWeeks = DefaultChartWeeks
	}
	return &QueryService{store: db, chartWeeks: chartWeeks}
}

// DashboardData contains all data needed for the dashboard
type DashboardData struct {
	Start time.Time
	End   time.Time

	// Most recent measurements
	LatestRHR *int
	LatestHRV *float64

	// Current (latest) week
	WeekL2Hours    float64
	WeekTotalHours float64
	WeekL2Pct      float64

	RecentDays []analysis.DailyRow

	// Chart series over the last chartWeeks weeks. RHR and HRV skip
	// weeks without a value, L2 covers every week.
	ChartRHR   []float64
	ChartHRV   []float64
	ChartL2    []float64
	WeekLabels []string
}

// CorrelationData bundles the correlation screens' content
type CorrelationData struct {
	WeeksAnalyzed int
	HRV           analysis.CorrelationResult
	RHR           analysis.CorrelationResult
	Lagged        analysis.LaggedCorrelationResult
	Trend         analysis.TrendResult
}

// GetDashboardData fetches all data needed for the dashboard
func (q *QueryService) GetDashboardData() (*DashboardData, error) {
	records, err := q.dailyRecords()
	if err != nil {
		return nil, err
	}

	weeks, err := analysis.GroupIntoWeeks(records)
	if err != nil {
		return nil, err
	}
	rows := analysis.BuildWeeklyRows(weeks)

	data := &DashboardData{
		Start: records[0].Date,
		End:   records[len(records)-1].Date,
	}

	// Latest non-null measurements, scanning backwards
	for i := len(records) - 1; i >= 0; i-- {
		if data.LatestRHR == nil && records[i].RHR != nil {
			data.LatestRHR = records[i].RHR
		}
		if data.LatestHRV == nil && records[i].HRV != nil {
			data.LatestHRV = records[i].HRV
		}
		if data.LatestRHR != nil && data.LatestHRV != nil {
			break
		}
	}

	if len(rows) > 0 {
		current := rows[len(rows)-1]
		data.WeekL2Hours = current.L2Hours
		data.WeekTotalHours = current.TotalTrainingHours
		data.WeekL2Pct = current.L2Percentage
	}

	recent := records
	if len(recent) > RecentDaysShown {
		recent = recent[len(recent)-RecentDaysShown:]
	}
	data.RecentDays = analysis.BuildDailyRows(recent)

	chartRows := rows
	if len(chartRows) > q.chartWeeks {
		chartRows = chartRows[len(chartRows)-q.chartWeeks:]
	}
	for _, row := range chartRows {
		if row.AvgRHR != nil {
			data.ChartRHR = append(data.ChartRHR, *row.AvgRHR)
		}
		if row.AvgHRV != nil {
			data.ChartHRV = append(data.ChartHRV, *row.AvgHRV)
		}
		data.ChartL2 = append(data.ChartL2, row.L2Hours)
		data.WeekLabels = append(data.WeekLabels, row.WeekStart.Format("Jan 02"))
	}

	return data, nil
}

// GetWeeklyStats returns the full weekly aggregate table
func (q *QueryService) GetWeeklyStats() ([]analysis.WeeklyRow, error) {
	return q.weeklyRows()
}

// GetCorrelations runs the correlation and trend analyses over the
// entire stored series.
func (q *QueryService) GetCorrelations() (*CorrelationData, error) {
	rows, err := q.weeklyRows()
	if err != nil {
		return nil, err
	}

	return &CorrelationData{
		WeeksAnalyzed: len(rows),
		HRV:           analysis.CorrelateL2HRV(rows),
		RHR:           analysis.CorrelateL2RHR(rows),
		Lagged:        analysis.CorrelateLagged(rows, 1),
		Trend:         analysis.Trend(rows),
	}, nil
}

// GetReport renders the full markdown report
func (q *QueryService) GetReport() (string, error) {
	rows, err := q.weeklyRows()
	if err != nil {
		return "", err
	}
	return analysis.Report(rows), nil
}

// ExportReport writes the markdown report next to the config and
// database files and returns the path written.
func (q *QueryService) ExportReport() (string, error) {
	rows, err := q.weeklyRows()
	if err != nil {
		return "", err
	}
	report := analysis.Report(rows)

	dir, err := config.GetConfigDir()
	if err != nil {
		return "", err
	}

	name := "report.md"
	if len(rows) > 0 {
		name = fmt.Sprintf("report-%s-%s.md",
			rows[0].WeekStart.Format("20060102"),
			rows[len(rows)-1].WeekEnd.Format("20060102"))
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(report), 0644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	return path, nil
}

// dailyRecords loads the gap-free daily series over the stored data
// range.
func (q *QueryService) dailyRecords() ([]store.DailyRecord, error) {
	start, end, ok, err := q.store.DataRange()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoData
	}
	return q.store.GetDailyRecords(start, end)
}

func (q *QueryService) weeklyRows() ([]analysis.WeeklyRow, error) {
	records, err := q.dailyRecords()
	if err != nil {
		return nil, err
	}
	weeks, err := analysis.GroupIntoWeeks(records)
	if err != nil {
		return nil, err
	}
	return analysis.BuildWeeklyRows(weeks), nil
}
