package analysis

import "fmt"

// MinWeeksForTrend is the minimum weekly series length for a first-half
// vs second-half comparison; the floor-division split must also leave at
// least MinWeeksPerHalf weeks on each side.
const (
	MinWeeksForTrend = 4
	MinWeeksPerHalf  = 2
)

// MetricTrend compares one metric's mean across the two halves of the
// observation window.
type MetricTrend struct {
	FirstHalfMean  float64
	SecondHalfMean float64
	Change         float64 // second - first
	ChangePct      float64 // Change / FirstHalfMean * 100, 0 when the first-half mean is 0
}

// TrendResult holds the per-metric half-window comparisons. A metric is
// nil when either half had no values at all, or when the series was too
// short; Message always explains what was (or wasn't) computed.
type TrendResult struct {
	WeeksAnalyzed int
	HRV           *MetricTrend
	RHR           *MetricTrend
	L2            *MetricTrend
	Message       string
}

// HRVImproved reports whether HRV rose between halves (higher is better)
func (t TrendResult) HRVImproved() bool {
	return t.HRV != nil && t.HRV.Change > 0
}

// RHRImproved reports whether RHR fell between halves (lower is better)
func (t TrendResult) RHRImproved() bool {
	return t.RHR != nil && t.RHR.Change < 0
}

// L2Increased reports whether weekly L2 volume rose between halves
func (t TrendResult) L2Increased() bool {
	return t.L2 != nil && t.L2.Change > 0
}

// Trend characterizes directional change between the first and second
// half of a weekly series. Requires at least MinWeeksForTrend weeks.
func Trend(rows []WeeklyRow) TrendResult {
	result := TrendResult{WeeksAnalyzed: len(rows)}

	if len(rows) < MinWeeksForTrend {
		result.Message = fmt.Sprintf("Long-term trend analysis needs at least %d weeks of data (currently: %d)", MinWeeksForTrend, len(rows))
		return result
	}

	mid := len(rows) / 2
	if mid < MinWeeksPerHalf {
		result.Message = "Not enough data for trend analysis"
		return result
	}

	first, second := rows[:mid], rows[mid:]

	result.HRV = metricTrend(markerColumn(first, MarkerHRV), markerColumn(second, MarkerHRV))
	result.RHR = metricTrend(markerColumn(first, MarkerRHR), markerColumn(second, MarkerRHR))
	result.L2 = metricTrend(l2Column(first), l2Column(second))
	result.Message = trendMessage(result)

	return result
}

// metricTrend compares nil-ignoring half means; nil when either half is
// entirely null
func metricTrend(firstHalf, secondHalf []*float64) *MetricTrend {
	firstMean, firstN := mean(firstHalf)
	secondMean, secondN := mean(secondHalf)
	if firstN == 0 || secondN == 0 {
		return nil
	}

	change := secondMean - firstMean
	var changePct float64
	if firstMean != 0 {
		changePct = change / firstMean * 100
	}

	return &MetricTrend{
		FirstHalfMean:  firstMean,
		SecondHalfMean: secondMean,
		Change:         change,
		ChangePct:      changePct,
	}
}

func markerColumn(rows []WeeklyRow, marker Marker) []*float64 {
	col := make([]*float64, len(rows))
	for i, row := range rows {
		col[i] = markerValue(row, marker)
	}
	return col
}

func l2Column(rows []WeeklyRow) []*float64 {
	col := make([]*float64, len(rows))
	for i := range rows {
		v := rows[i].L2Hours
		col[i] = &v
	}
	return col
}

func trendMessage(result TrendResult) string {
	msg := "Long-term trend (first half vs second half):\n"

	if result.HRV != nil {
		msg += fmt.Sprintf("HRV: %.1f → %.1f %s\n", result.HRV.FirstHalfMean, result.HRV.SecondHalfMean, formatDelta(result.HRV))
	}
	if result.RHR != nil {
		line := fmt.Sprintf("RHR: %.1f → %.1f %s", result.RHR.FirstHalfMean, result.RHR.SecondHalfMean, formatDelta(result.RHR))
		if result.RHR.Change < 0 {
			line += " - improvement"
		}
		msg += line + "\n"
	}
	if result.L2 != nil {
		msg += fmt.Sprintf("Avg weekly L2 hours: %.1f → %.1f %s\n", result.L2.FirstHalfMean, result.L2.SecondHalfMean, formatDelta(result.L2))
	}

	if result.HRV != nil && result.RHR != nil && result.L2 != nil {
		msg += "\nOverall: " + trendVerdict(result)
	}

	return msg
}

func formatDelta(t *MetricTrend) string {
	if t.Change > 0 {
		return fmt.Sprintf("(+%.1f, +%.1f%%)", t.Change, t.ChangePct)
	}
	return fmt.Sprintf("(%.1f, %.1f%%)", t.Change, t.ChangePct)
}

// trendVerdict combines marker improvement with the L2 volume direction
// into one of the canned syntheses.
func trendVerdict(result TrendResult) string {
	hrvImproved := result.HRVImproved()
	rhrImproved := result.RHRImproved()
	l2Increased := result.L2Increased()

	switch {
	case hrvImproved && rhrImproved:
		verdict := "cardiovascular recovery markers are improving."
		if l2Increased {
			return verdict + " The increase in L2 training volume may be driving the adaptation."
		}
		return verdict + " L2 volume declined over this window, so other factors are likely contributing."
	case hrvImproved || rhrImproved:
		verdict := "some recovery markers are improving."
		if l2Increased {
			return verdict + " The added L2 volume may be partially responsible."
		}
		return verdict
	default:
		verdict := "recovery markers show no improvement."
		if l2Increased {
			return verdict + " L2 volume went up without a visible response yet; adaptation may lag, or other stressors may dominate."
		}
		return verdict + " L2 volume also declined; the training plan may need revisiting."
	}
}
