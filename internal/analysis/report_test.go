package analysis

import (
	"strings"
	"testing"
)

func TestReport_InsufficientData(t *testing.T) {
	rows := makeWeeklyRows([]float64{3}, []float64{45}, []float64{55})
	got := Report(rows)
	if got != InsufficientReportMessage {
		t.Errorf("Report = %q, want the insufficient-data message", got)
	}
	if Report(nil) != InsufficientReportMessage {
		t.Error("Report(nil) should return the insufficient-data message")
	}
}

func TestReport_FullSeries(t *testing.T) {
	// 8 weeks of improving data: HRV rising, RHR falling into a healthy
	// range, L2 volume above the weekly target in the second half.
	l2 := []float64{2, 2.5, 3, 3.5, 4, 4.5, 5, 5.5}
	hrv := []float64{44, 45, 46, 47, 48, 49, 50, 51}
	rhr := []float64{58, 57.5, 57, 56.5, 56, 55.5, 55, 54.5}
	rows := makeWeeklyRows(l2, hrv, rhr)

	report := Report(rows)

	for _, header := range []string{
		ReportTitle,
		HeaderPeriod,
		HeaderTrend,
		HeaderCorrelation,
		HeaderL2HRV,
		HeaderL2RHR,
		HeaderLagged,
		HeaderRecommendations,
	} {
		if !strings.Contains(report, header) {
			t.Errorf("report missing section %q", header)
		}
	}

	if !strings.Contains(report, "Start: Jan 1, 2024") {
		t.Error("report should state the first week's start date")
	}
	if !strings.Contains(report, "End: Feb 19, 2024") {
		t.Error("report should state the last week's start date")
	}
	if !strings.Contains(report, "Weeks of data: 8") {
		t.Error("report should state the week count")
	}

	// Rising HRV fires the continue rule; RHR stayed under 60 and L2
	// ended above 3 hours, so those rules stay silent.
	if !strings.Contains(report, RecContinue) {
		t.Error("report should recommend continuing the current approach")
	}
	if strings.Contains(report, RecRecovery) {
		t.Error("recovery recommendation should not fire with RHR under 60")
	}
	if strings.Contains(report, RecTargetL2Volume) {
		t.Error("L2 volume recommendation should not fire above 3 weekly hours")
	}
	if !strings.Contains(report, "1. ") {
		t.Error("recommendations should be numbered")
	}
}

func TestRecommendations_PriorityOrder(t *testing.T) {
	r := 0.8
	p := 0.01
	hrvCorr := CorrelationResult{Correlation: &r, PValue: &p, Significant: true}
	trend := TrendResult{
		HRV: &MetricTrend{Change: 2},
		RHR: &MetricTrend{SecondHalfMean: 62},
		L2:  &MetricTrend{SecondHalfMean: 2},
	}

	recs := Recommendations(hrvCorr, trend)
	want := []string{RecContinue, RecIncreaseL2, RecRecovery, RecTargetL2Volume}
	if len(recs) != len(want) {
		t.Fatalf("got %d recommendations, want %d: %v", len(recs), len(want), recs)
	}
	for i := range want {
		if recs[i] != want[i] {
			t.Errorf("recommendation %d = %q, want %q", i, recs[i], want[i])
		}
	}
}

func TestRecommendations_DecliningHRV(t *testing.T) {
	trend := TrendResult{HRV: &MetricTrend{Change: -3}}
	recs := Recommendations(CorrelationResult{}, trend)
	if len(recs) != 1 || recs[0] != RecReduceIntensity {
		t.Errorf("recs = %v, want only the reduce-intensity recommendation", recs)
	}
}

func TestRecommendations_Default(t *testing.T) {
	recs := Recommendations(CorrelationResult{}, TrendResult{})
	if len(recs) != 1 || recs[0] != RecDefault {
		t.Errorf("recs = %v, want only the default recommendation", recs)
	}
}
