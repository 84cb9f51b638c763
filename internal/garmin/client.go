package garmin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"
)

const BaseURL = "https://apis.garmin.com/wellness-api/rest"

const dateFormat = "2006-01-02"

// Client is a Garmin wellness API client
type Client struct {
	httpClient  *http.Client
	rateLimiter *RateLimiter
}

// NewClient creates a new Garmin API client
func NewClient(tokenSource oauth2.TokenSource) *Client {
	return &Client{
		httpClient:  oauth2.NewClient(context.Background(), tokenSource),
		rateLimiter: NewRateLimiter(),
	}
}

// GetDailySummaries fetches daily wellness summaries (resting heart
// rate) for the inclusive date range.
func (c *Client) GetDailySummaries(ctx context.Context, start, end time.Time) ([]DailySummary, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("startDate", start.Format(dateFormat))
	params.Set("endDate", end.Format(dateFormat))

	resp, err := c.get(ctx, "/dailies", params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var summaries []DailySummary
	if err := json.NewDecoder(resp.Body).Decode(&summaries); err != nil {
		return nil, fmt.Errorf("decoding daily summaries: %w", err)
	}

	return summaries, nil
}

// GetHRVSummaries fetches nightly HRV summaries for the inclusive date
// range.
func (c *Client) GetHRVSummaries(ctx context.Context, start, end time.Time) ([]HRVSummary, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("startDate", start.Format(dateFormat))
	params.Set("endDate", end.Format(dateFormat))

	resp, err := c.get(ctx, "/hrv", params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var summaries []HRVSummary
	if err := json.NewDecoder(resp.Body).Decode(&summaries); err != nil {
		return nil, fmt.Errorf("decoding hrv summaries: %w", err)
	}

	return summaries, nil
}

// GetActivities fetches activities for the inclusive date range. The
// endpoint caps ranges at 30 days, so longer spans are fetched in
// chunks.
func (c *Client) GetActivities(ctx context.Context, start, end time.Time, onProgress func(fetched int)) ([]Activity, error) {
	var all []Activity

	for chunkStart := start; !chunkStart.After(end); chunkStart = chunkStart.AddDate(0, 0, 30) {
		chunkEnd := chunkStart.AddDate(0, 0, 29)
		if chunkEnd.After(end) {
			chunkEnd = end
		}

		activities, err := c.getActivityChunk(ctx, chunkStart, chunkEnd)
		if err != nil {
			return all, fmt.Errorf("fetching activities %s to %s: %w",
				chunkStart.Format(dateFormat), chunkEnd.Format(dateFormat), err)
		}

		all = append(all, activities...)
		if onProgress != nil {
			onProgress(len(all))
		}
	}

	return all, nil
}

func (c *Client) getActivityChunk(ctx context.Context, start, end time.Time) ([]Activity, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("startDate", start.Format(dateFormat))
	params.Set("endDate", end.Format(dateFormat))

	resp, err := c.get(ctx, "/activities", params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var activities []Activity
	if err := json.NewDecoder(resp.Body).Decode(&activities); err != nil {
		return nil, fmt.Errorf("decoding activities: %w", err)
	}

	return activities, nil
}

// RateLimitStatus returns the current rate limit headroom
func (c *Client) RateLimitStatus() (minuteRemaining, dailyRemaining int) {
	return c.rateLimiter.Status()
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (*http.Response, error) {
	reqURL := BaseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("API error %d: %s", resp.StatusCode, string(body))
	}

	return resp, nil
}
