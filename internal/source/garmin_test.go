package source

import (
	"testing"
	"time"

	"zone2/internal/garmin"
)

func TestClassifyLowIntensity(t *testing.T) {
	src := NewGarminSource(nil, 135)

	tests := []struct {
		name string
		avg  float64
		want bool
	}{
		{"well below ceiling", 120, true},
		{"at ceiling", 135, true},
		{"above ceiling", 150, false},
		{"no heart rate data", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := src.classifyLowIntensity(garmin.Activity{AverageHR: tt.avg})
			if got != tt.want {
				t.Errorf("classifyLowIntensity(avg=%v) = %v, want %v", tt.avg, got, tt.want)
			}
		})
	}
}

func TestNormalizeActivityType(t *testing.T) {
	if got := normalizeActivityType("INDOOR_CYCLING"); got != "indoor cycling" {
		t.Errorf("normalizeActivityType = %q, want %q", got, "indoor cycling")
	}
}

func TestTruncateToDay(t *testing.T) {
	ts := time.Date(2024, 3, 15, 18, 42, 7, 0, time.UTC)
	got := truncateToDay(ts)
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("truncateToDay = %v, want %v", got, want)
	}
}
