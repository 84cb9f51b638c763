package analysis

import "fmt"

// SignificanceLevel is the fixed two-tailed threshold for calling a
// correlation statistically significant.
const SignificanceLevel = 0.05

// MinWeeksForCorrelation is the minimum paired observations required
// before a coefficient is computed.
const MinWeeksForCorrelation = 2

// Marker identifies which recovery marker a correlation targets
type Marker int

const (
	MarkerHRV Marker = iota
	MarkerRHR
)

func (m Marker) String() string {
	if m == MarkerRHR {
		return "RHR"
	}
	return "HRV"
}

// CorrelationResult holds a single L2-vs-marker correlation. Correlation
// and PValue are nil when fewer than MinWeeksForCorrelation paired
// observations survive null-dropping, or when a series has no variance.
type CorrelationResult struct {
	Marker        Marker
	LagWeeks      int
	WeeksAnalyzed int
	Correlation   *float64
	PValue        *float64
	Significant   bool
	Message       string
}

// MarkerCorrelation is one marker's slice of a joint lagged correlation
type MarkerCorrelation struct {
	Correlation float64
	PValue      float64
	Significant bool
}

// LaggedCorrelationResult holds the joint lagged analysis: both markers
// correlated against the same lagged L2 series over the identical week
// subset (weeks missing HRV or RHR are dropped from both).
type LaggedCorrelationResult struct {
	LagWeeks      int
	WeeksAnalyzed int
	HRV           *MarkerCorrelation
	RHR           *MarkerCorrelation
	Message       string
}

// CorrelateL2HRV correlates weekly L2 hours with same-week average HRV
func CorrelateL2HRV(rows []WeeklyRow) CorrelationResult {
	return Correlate(rows, MarkerHRV, 0)
}

// CorrelateL2RHR correlates weekly L2 hours with same-week average RHR
func CorrelateL2RHR(rows []WeeklyRow) CorrelationResult {
	return Correlate(rows, MarkerRHR, 0)
}

// Correlate computes the Pearson correlation between weekly L2 hours and
// a recovery marker. With lagWeeks > 0, week t's marker value is paired
// with week t-lagWeeks's L2 hours. Weeks missing the marker are dropped.
func Correlate(rows []WeeklyRow, marker Marker, lagWeeks int) CorrelationResult {
	result := CorrelationResult{Marker: marker, LagWeeks: lagWeeks}

	var l2, markerVals []float64
	for t := lagWeeks; t < len(rows); t++ {
		v := markerValue(rows[t], marker)
		if v == nil {
			continue
		}
		l2 = append(l2, rows[t-lagWeeks].L2Hours)
		markerVals = append(markerVals, *v)
	}

	result.WeeksAnalyzed = len(l2)
	if len(l2) < MinWeeksForCorrelation {
		result.Message = fmt.Sprintf("Not enough data for correlation analysis (weeks: %d)", len(l2))
		return result
	}

	r, ok := pearson(l2, markerVals)
	if !ok {
		result.Message = fmt.Sprintf("Correlation between L2 hours and %s is undefined: a series has no variance over the %d weeks analyzed", marker, len(l2))
		return result
	}

	p := pearsonPValue(r, len(l2))
	result.Correlation = &r
	result.PValue = &p
	result.Significant = p < SignificanceLevel
	result.Message = correlationMessage(marker, r, p, result.Significant)
	return result
}

// CorrelateLagged runs the joint lagged analysis for both markers. The
// sample is the intersection of weeks with HRV, RHR, and a lagged L2
// value, so both sub-correlations share one denominator.
func CorrelateLagged(rows []WeeklyRow, lagWeeks int) LaggedCorrelationResult {
	result := LaggedCorrelationResult{LagWeeks: lagWeeks}

	var l2, hrv, rhr []float64
	for t := lagWeeks; t < len(rows); t++ {
		if rows[t].AvgHRV == nil || rows[t].AvgRHR == nil {
			continue
		}
		l2 = append(l2, rows[t-lagWeeks].L2Hours)
		hrv = append(hrv, *rows[t].AvgHRV)
		rhr = append(rhr, *rows[t].AvgRHR)
	}

	result.WeeksAnalyzed = len(l2)
	if len(l2) < MinWeeksForCorrelation {
		result.Message = fmt.Sprintf("Not enough data for lagged correlation analysis with a %d-week delay", lagWeeks)
		return result
	}

	result.HRV = markerCorrelation(l2, hrv)
	result.RHR = markerCorrelation(l2, rhr)
	result.Message = laggedMessage(result)
	return result
}

func markerCorrelation(l2, marker []float64) *MarkerCorrelation {
	r, ok := pearson(l2, marker)
	if !ok {
		return nil
	}
	p := pearsonPValue(r, len(l2))
	return &MarkerCorrelation{
		Correlation: r,
		PValue:      p,
		Significant: p < SignificanceLevel,
	}
}

func markerValue(row WeeklyRow, marker Marker) *float64 {
	if marker == MarkerRHR {
		return row.AvgRHR
	}
	return row.AvgHRV
}

func correlationMessage(marker Marker, r, p float64, significant bool) string {
	msg := fmt.Sprintf("Correlation between L2 training hours and %s: %.3f (p-value: %.3f)", marker, r, p)
	if !significant {
		return msg + "\nNo statistically significant correlation was found."
	}
	switch {
	case marker == MarkerHRV && r > 0:
		msg += "\nIncreased L2 training is significantly associated with HRV improvement."
	case marker == MarkerHRV:
		msg += "\nIncreased L2 training is significantly associated with HRV decline."
	case r < 0:
		// Lower resting heart rate is the favorable direction
		msg += "\nIncreased L2 training is significantly associated with lower RHR (improvement)."
	default:
		msg += "\nIncreased L2 training is significantly associated with higher RHR."
	}
	return msg
}

func laggedMessage(result LaggedCorrelationResult) string {
	msg := fmt.Sprintf("Correlation between L2 training %d week(s) earlier and current HRV/RHR:\n", result.LagWeeks)

	if result.HRV != nil {
		msg += fmt.Sprintf("HRV: %.3f (p-value: %.3f) - ", result.HRV.Correlation, result.HRV.PValue)
		switch {
		case !result.HRV.Significant:
			msg += "no significant association\n"
		case result.HRV.Correlation > 0:
			msg += "earlier L2 training is significantly associated with current HRV improvement\n"
		default:
			msg += "earlier L2 training is significantly associated with current HRV decline\n"
		}
	} else {
		msg += "HRV: correlation undefined (no variance)\n"
	}

	if result.RHR != nil {
		msg += fmt.Sprintf("RHR: %.3f (p-value: %.3f) - ", result.RHR.Correlation, result.RHR.PValue)
		switch {
		case !result.RHR.Significant:
			msg += "no significant association"
		case result.RHR.Correlation < 0:
			msg += "earlier L2 training is significantly associated with lower current RHR (improvement)"
		default:
			msg += "earlier L2 training is significantly associated with higher current RHR"
		}
	} else {
		msg += "RHR: correlation undefined (no variance)"
	}

	return msg
}
