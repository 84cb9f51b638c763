package tui

import "fmt"

// formatHours renders a duration in hours as "4.5h"
func formatHours(hours float64) string {
	return fmt.Sprintf("%.1fh", hours)
}

// formatPct renders a percentage with no decimals
func formatPct(pct float64) string {
	return fmt.Sprintf("%.0f%%", pct)
}

// formatOptFloat renders a nullable metric, using a dash for missing
// values
func formatOptFloat(v *float64, decimals int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.*f", decimals, *v)
}

// formatOptInt renders a nullable integer metric
func formatOptInt(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}
