package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"lankatrip/internal/models/catalog_models"
)

// ORSClient queries the OpenRouteService directions API for real driving
// durations. It is safe for concurrent use.
type ORSClient struct {
	HTTP    *http.Client
	APIKey  string
	BaseURL string
	Profile string
}

func NewORSClient(apiKey string) (*ORSClient, error) {
	if apiKey == "" {
		return nil, errors.New("ORS api key is empty")
	}
	return &ORSClient{
		HTTP:    &http.Client{Timeout: 10 * time.Second},
		APIKey:  apiKey,
		BaseURL: "https://api.openrouteservice.org",
		Profile: "driving-car",
	}, nil
}

type httpStatusError struct {
	Code int
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Code)
}

func (c *ORSClient) LegDurationSeconds(ctx context.Context, from, to catalog_models.Coordinate) (int, error) {
	// ORS wants lon,lat ordering.
	q := url.Values{}
	q.Set("start", fmt.Sprintf("%f,%f", from.Lon, from.Lat))
	q.Set("end", fmt.Sprintf("%f,%f", to.Lon, to.Lat))

	endpoint := fmt.Sprintf("%s/v2/directions/%s?%s", c.BaseURL, c.Profile, q.Encode())

	resp, err := c.doWithRetry(ctx, endpoint)
	if err != nil {
		return 0, fmt.Errorf("ors directions: %w", err)
	}
	defer resp.Body.Close()

	var payload struct {
		Features []struct {
			Properties struct {
				Summary struct {
					Duration float64 `json:"duration"`
				} `json:"summary"`
			} `json:"properties"`
		} `json:"features"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("ors directions decode: %w", err)
	}
	if len(payload.Features) == 0 {
		return 0, errors.New("ors directions: empty feature list")
	}

	return int(payload.Features[0].Properties.Summary.Duration), nil
}

// doWithRetry retries transient failures (network errors, 429, 5xx) with
// exponential backoff while respecting context cancellation.
func (c *ORSClient) doWithRetry(ctx context.Context, endpoint string) (*http.Response, error) {
	const maxAttempts = 3
	backoff := 200 * time.Millisecond

	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Authorization", c.APIKey)
		req.Header.Set("Accept", "application/json")

		resp, err := c.HTTP.Do(req)
		if err == nil && resp.StatusCode < 400 {
			return resp, nil
		}

		retry := false
		if err == nil {
			resp.Body.Close()
			lastErr = &httpStatusError{Code: resp.StatusCode}
			switch resp.StatusCode {
			case 429, 500, 502, 503, 504:
				retry = true
			}
		} else {
			lastErr = err
			var netErr net.Error
			if errors.As(err, &netErr) {
				retry = true
			}
		}

		if !retry || attempt == maxAttempts {
			return nil, lastErr
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
		backoff *= 2
	}

	return nil, lastErr
}
