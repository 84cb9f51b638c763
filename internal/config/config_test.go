package config

import (
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Source != SourceMock {
		t.Errorf("Source = %q, want %q", cfg.Source, SourceMock)
	}
	if cfg.Athlete.MaxHR != 185 {
		t.Errorf("Athlete.MaxHR = %v, want 185", cfg.Athlete.MaxHR)
	}
	if cfg.Athlete.L2MaxHR != 135 {
		t.Errorf("Athlete.L2MaxHR = %v, want 135", cfg.Athlete.L2MaxHR)
	}
	if cfg.Sync.LookbackDays != 200 {
		t.Errorf("Sync.LookbackDays = %d, want 200", cfg.Sync.LookbackDays)
	}
	if cfg.Display.ChartWeeks != 12 {
		t.Errorf("Display.ChartWeeks = %d, want 12", cfg.Display.ChartWeeks)
	}

	// Garmin credentials should be empty by default
	if cfg.Garmin.ClientID != "" {
		t.Errorf("Garmin.ClientID should be empty, got %q", cfg.Garmin.ClientID)
	}
	if cfg.Garmin.ClientSecret != "" {
		t.Errorf("Garmin.ClientSecret should be empty, got %q", cfg.Garmin.ClientSecret)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
		errContains string
	}{
		{
			name:        "valid mock config",
			config:      Config{Source: SourceMock},
			expectError: false,
		},
		{
			name: "valid garmin config",
			config: Config{
				Source: SourceGarmin,
				Garmin: GarminConfig{
					ClientID:     "12345",
					ClientSecret: "abc123secret",
				},
			},
			expectError: false,
		},
		{
			name:        "unknown source",
			config:      Config{Source: "fitbit"},
			expectError: true,
			errContains: "source",
		},
		{
			name: "garmin without client ID",
			config: Config{
				Source: SourceGarmin,
				Garmin: GarminConfig{ClientSecret: "abc123secret"},
			},
			expectError: true,
			errContains: "client_id",
		},
		{
			name: "garmin with placeholder client ID",
			config: Config{
				Source: SourceGarmin,
				Garmin: GarminConfig{
					ClientID:     "YOUR_CLIENT_ID",
					ClientSecret: "abc123secret",
				},
			},
			expectError: true,
			errContains: "client_id",
		},
		{
			name: "garmin with placeholder client secret",
			config: Config{
				Source: SourceGarmin,
				Garmin: GarminConfig{
					ClientID:     "12345",
					ClientSecret: "YOUR_CLIENT_SECRET",
				},
			},
			expectError: true,
			errContains: "client_secret",
		},
		{
			name: "mock source needs no credentials",
			config: Config{
				Source: SourceMock,
				Garmin: GarminConfig{},
			},
			expectError: false,
		},
		{
			name: "l2 ceiling above max HR",
			config: Config{
				Source:  SourceMock,
				Athlete: AthleteConfig{MaxHR: 180, L2MaxHR: 185},
			},
			expectError: true,
			errContains: "l2_max_hr",
		},
		{
			name: "negative lookback",
			config: Config{
				Source: SourceMock,
				Sync:   SyncConfig{LookbackDays: -1},
			},
			expectError: true,
			errContains: "lookback_days",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError {
				if err == nil {
					t.Error("expected error, got nil")
				} else if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q should contain %q", err.Error(), tt.errContains)
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{Source: SourceGarmin}
	cfg.applyDefaults()

	if cfg.Source != SourceGarmin {
		t.Errorf("Source = %q, explicit value should survive", cfg.Source)
	}
	if cfg.Athlete.L2MaxHR != 135 {
		t.Errorf("Athlete.L2MaxHR = %v, want default 135", cfg.Athlete.L2MaxHR)
	}
	if cfg.Sync.LookbackDays != 200 {
		t.Errorf("Sync.LookbackDays = %d, want default 200", cfg.Sync.LookbackDays)
	}
	if cfg.Display.ChartWeeks != 12 {
		t.Errorf("Display.ChartWeeks = %d, want default 12", cfg.Display.ChartWeeks)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("GARMIN_CLIENT_ID", "env-id")
	t.Setenv("GARMIN_CLIENT_SECRET", "env-secret")

	cfg := Config{
		Garmin: GarminConfig{
			ClientID:     "file-id",
			ClientSecret: "file-secret",
		},
	}
	cfg.applyEnv()

	if cfg.Garmin.ClientID != "env-id" {
		t.Errorf("ClientID = %q, env should override file", cfg.Garmin.ClientID)
	}
	if cfg.Garmin.ClientSecret != "env-secret" {
		t.Errorf("ClientSecret = %q, env should override file", cfg.Garmin.ClientSecret)
	}
}
