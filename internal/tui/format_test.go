package tui

import "testing"

func TestFormatHours(t *testing.T) {
	tests := []struct {
		hours    float64
		expected string
	}{
		{0, "0.0h"},
		{1.5, "1.5h"},
		{10.25, "10.2h"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := formatHours(tt.hours); got != tt.expected {
				t.Errorf("formatHours(%v) = %q, want %q", tt.hours, got, tt.expected)
			}
		})
	}
}

func TestFormatOptFloat(t *testing.T) {
	if got := formatOptFloat(nil, 1); got != "-" {
		t.Errorf("formatOptFloat(nil) = %q, want \"-\"", got)
	}
	v := 48.25
	if got := formatOptFloat(&v, 1); got != "48.2" {
		t.Errorf("formatOptFloat(48.25) = %q, want \"48.2\"", got)
	}
}

func TestFormatOptInt(t *testing.T) {
	if got := formatOptInt(nil); got != "-" {
		t.Errorf("formatOptInt(nil) = %q, want \"-\"", got)
	}
	v := 52
	if got := formatOptInt(&v); got != "52" {
		t.Errorf("formatOptInt(52) = %q, want \"52\"", got)
	}
}
