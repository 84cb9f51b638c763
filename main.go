package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/oauth2"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"zone2/internal/auth"
	"zone2/internal/config"
	"zone2/internal/garmin"
	"zone2/internal/service"
	"zone2/internal/source"
	"zone2/internal/store"
	"zone2/internal/tui"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	ctx := context.Background()

	// A .env file may carry the Garmin credentials; missing is fine
	_ = godotenv.Load()

	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		fmt.Println("No config file found. Creating example config...")
		if err := config.CreateExample(); err != nil {
			return fmt.Errorf("creating example config: %w", err)
		}
		configDir, _ := config.GetConfigDir()
		fmt.Printf("\nAn example config was written to:\n  %s/config.json\n\n", configDir)
		fmt.Println("The default \"mock\" source works out of the box.")
		fmt.Println("To use real data, set source to \"garmin\" and add your API credentials")
		fmt.Println("(or put GARMIN_CLIENT_ID / GARMIN_CLIENT_SECRET in a .env file).")
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		configDir, _ := config.GetConfigDir()
		fmt.Printf("Config validation failed: %v\n\n", err)
		fmt.Printf("Please edit the config file at:\n  %s/config.json\n", configDir)
		return nil
	}

	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	src, err := buildSource(ctx, db, cfg)
	if err != nil {
		return err
	}

	syncSvc := service.NewSyncService(src, db, cfg.Sync.LookbackDays)
	querySvc := service.NewQueryService(db, cfg.Display.ChartWeeks)

	app := tui.NewApp(db, syncSvc, querySvc)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}

// buildSource wires the configured data source. The mock source needs
// no credentials; the Garmin source runs the OAuth flow when no valid
// token is stored.
func buildSource(ctx context.Context, db *store.DB, cfg *config.Config) (source.DataSource, error) {
	if cfg.Source == config.SourceMock {
		start := time.Now().AddDate(0, 0, -(cfg.Sync.LookbackDays - 1))
		return source.NewMockSource(1, start, cfg.Sync.LookbackDays), nil
	}

	tokenSource, err := garminTokenSource(ctx, db, cfg)
	if err != nil {
		return nil, err
	}

	client := garmin.NewClient(tokenSource)
	return source.NewGarminSource(client, cfg.Athlete.L2MaxHR), nil
}

func garminTokenSource(ctx context.Context, db *store.DB, cfg *config.Config) (*auth.TokenSource, error) {
	storedAuth, err := db.GetAuth()
	if errors.Is(err, store.ErrNoAuth) {
		fmt.Println("No authentication found. Starting OAuth flow...")
		if err := authenticate(ctx, db, cfg); err != nil {
			return nil, fmt.Errorf("authentication: %w", err)
		}
		storedAuth, err = db.GetAuth()
		if err != nil {
			return nil, fmt.Errorf("fetching auth after login: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("checking auth: %w", err)
	}

	oauthCfg := newOAuthConfig(cfg)
	token := &oauth2.Token{
		AccessToken:  storedAuth.AccessToken,
		RefreshToken: storedAuth.RefreshToken,
		Expiry:       storedAuth.ExpiresAt,
	}

	tokenSource := auth.NewTokenSource(oauthCfg, token, func(newToken *oauth2.Token) error {
		return db.UpdateTokens(newToken.AccessToken, newToken.RefreshToken, newToken.Expiry)
	})

	// Test token is valid by getting a fresh one
	if _, err := tokenSource.Token(); err != nil {
		fmt.Println("Stored token is invalid or expired. Re-authenticating...")
		if err := authenticate(ctx, db, cfg); err != nil {
			return nil, fmt.Errorf("re-authentication: %w", err)
		}
		storedAuth, err = db.GetAuth()
		if err != nil {
			return nil, fmt.Errorf("fetching auth after re-login: %w", err)
		}
		token = &oauth2.Token{
			AccessToken:  storedAuth.AccessToken,
			RefreshToken: storedAuth.RefreshToken,
			Expiry:       storedAuth.ExpiresAt,
		}
		tokenSource = auth.NewTokenSource(oauthCfg, token, func(newToken *oauth2.Token) error {
			return db.UpdateTokens(newToken.AccessToken, newToken.RefreshToken, newToken.Expiry)
		})
	}

	return tokenSource, nil
}

func newOAuthConfig(cfg *config.Config) *oauth2.Config {
	return auth.NewOAuthConfig(auth.Config{
		ClientID:     cfg.Garmin.ClientID,
		ClientSecret: cfg.Garmin.ClientSecret,
		RedirectURL:  fmt.Sprintf("http://localhost:%d/callback", auth.CallbackPort),
	})
}

func authenticate(ctx context.Context, db *store.DB, cfg *config.Config) error {
	result, err := auth.Authenticate(ctx, newOAuthConfig(cfg))
	if err != nil {
		return err
	}

	storedAuth := &store.Auth{
		UserID:       result.UserID,
		AccessToken:  result.Token.AccessToken,
		RefreshToken: result.Token.RefreshToken,
		ExpiresAt:    result.Token.Expiry,
	}

	if err := db.SaveAuth(storedAuth); err != nil {
		return fmt.Errorf("saving auth: %w", err)
	}

	fmt.Println()
	fmt.Println("Successfully authenticated with Garmin Connect!")
	return nil
}
