package neows

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/charmbracelet/log"

	"github.com/astronerd/neowatch/internal/config"
	"github.com/astronerd/neowatch/internal/model"
)

const feedPath = "/neo/rest/v1/feed"

// StatusError is returned when the feed endpoint answers with a
// non-200 status. The request is never retried.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("neows feed error: %s", e.Status)
}

// Client holds the shared HTTP client and the injected API key for the
// NeoWs feed endpoint. One instance serves all reports.
type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

func New(cfg *config.Config) *Client {
	return &Client{
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
	}
}

// Feed queries asteroid records with close approaches between
// startDate and endDate (inclusive, YYYY-MM-DD).
func (c *Client) Feed(ctx context.Context, startDate, endDate string) (*model.Feed, error) {
	log.Debug("fetching neows feed", "start", startDate, "end", endDate)

	params := url.Values{}
	params.Set("start_date", startDate)
	params.Set("end_date", endDate)
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+feedPath+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("neows request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("neows request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("neows read body: %w", err)
	}

	var feed model.Feed
	if err := json.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("neows parse: %w", err)
	}

	log.Debug("neows feed fetched", "dates", len(feed.NearEarthObjects))
	return &feed, nil
}
