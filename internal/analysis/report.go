package analysis

import (
	"fmt"
	"strings"
)

// MinWeeksForReport is the minimum weekly series length for a full report
const MinWeeksForReport = 2

// InsufficientReportMessage is returned verbatim when the series is too
// short for any analysis.
const InsufficientReportMessage = "Not enough data to generate a report. Collect at least 2 weeks of data."

// Report section headers. These are part of the output contract; the
// presentation layer and the export file both rely on them.
const (
	ReportTitle           = "# Long-Term HRV/RHR Trend Report"
	HeaderPeriod          = "## Analysis Period"
	HeaderTrend           = "## Long-Term Trend"
	HeaderCorrelation     = "## Correlation Analysis"
	HeaderL2HRV           = "### L2 Training and HRV"
	HeaderL2RHR           = "### L2 Training and RHR"
	HeaderLagged          = "### Lagged Correlation (1-Week Delay)"
	HeaderRecommendations = "## Recommendations"
)

// Recommendation texts, in firing-priority order.
const (
	RecContinue        = "The current training approach is working well. Keep the same structure in the coming weeks."
	RecIncreaseL2      = "L2 training time shows a significant positive association with HRV. Increasing weekly L2 volume further may bring additional gains."
	RecRecovery        = "Resting heart rate is elevated. Strengthen recovery and stress management, and look at sleep quality."
	RecReduceIntensity = "HRV is trending down, which can indicate overtraining or accumulated stress. Add rest and recovery time and temporarily reduce training intensity."
	RecTargetL2Volume  = "Weekly L2 training time is on the low side. Aim for at least 3-5 hours of low-intensity endurance work per week to build aerobic capacity."
	RecDefault         = "No clear pattern has emerged yet. Keep collecting data and stay mindful of the balance between training and recovery."
)

// Report produces the full markdown analysis report for a weekly series:
// analysis period, long-term trend, same-week and lagged correlations,
// and numbered recommendations.
func Report(rows []WeeklyRow) string {
	if len(rows) < MinWeeksForReport {
		return InsufficientReportMessage
	}

	hrvCorr := CorrelateL2HRV(rows)
	rhrCorr := CorrelateL2RHR(rows)
	lagged := CorrelateLagged(rows, 1)
	trend := Trend(rows)

	var b strings.Builder

	b.WriteString(ReportTitle + "\n\n")

	b.WriteString(HeaderPeriod + "\n")
	fmt.Fprintf(&b, "Start: %s\n", rows[0].WeekStart.Format("Jan 2, 2006"))
	fmt.Fprintf(&b, "End: %s\n", rows[len(rows)-1].WeekStart.Format("Jan 2, 2006"))
	fmt.Fprintf(&b, "Weeks of data: %d\n\n", len(rows))

	b.WriteString(HeaderTrend + "\n")
	b.WriteString(trend.Message + "\n\n")

	b.WriteString(HeaderCorrelation + "\n\n")
	b.WriteString(HeaderL2HRV + "\n")
	b.WriteString(hrvCorr.Message + "\n\n")
	b.WriteString(HeaderL2RHR + "\n")
	b.WriteString(rhrCorr.Message + "\n\n")
	b.WriteString(HeaderLagged + "\n")
	b.WriteString(lagged.Message + "\n\n")

	b.WriteString(HeaderRecommendations + "\n")
	for i, rec := range Recommendations(hrvCorr, trend) {
		fmt.Fprintf(&b, "%d. %s\n", i+1, rec)
	}

	return b.String()
}

// Recommendations evaluates the rule set against the trend and the
// same-week L2-HRV correlation. Every rule whose guard holds fires, in
// fixed priority order; when none fire the default urges more data.
func Recommendations(hrvCorr CorrelationResult, trend TrendResult) []string {
	var recs []string

	if trend.HRV != nil && trend.HRV.Change > 0 {
		recs = append(recs, RecContinue)
	}
	if hrvCorr.Correlation != nil && *hrvCorr.Correlation > 0 && hrvCorr.Significant {
		recs = append(recs, RecIncreaseL2)
	}
	if trend.RHR != nil && trend.RHR.SecondHalfMean > 60 {
		recs = append(recs, RecRecovery)
	}
	if trend.HRV != nil && trend.HRV.Change < 0 {
		recs = append(recs, RecReduceIntensity)
	}
	if trend.L2 != nil && trend.L2.SecondHalfMean < 3 {
		recs = append(recs, RecTargetL2Volume)
	}

	if len(recs) == 0 {
		recs = append(recs, RecDefault)
	}
	return recs
}
