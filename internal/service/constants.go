package service

const (
	// DefaultLookbackDays bounds how far back a sync reaches
	DefaultLookbackDays = 200

	// DefaultChartWeeks is how many recent weeks the dashboard charts
	DefaultChartWeeks = 12

	// RecentDaysShown is how many daily rows the dashboard lists
	RecentDaysShown = 14

	SecondsPerHour = 3600.0
)
