package doctors

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/suyogshiftcare/shiftcare-booking/pkg/logging"
)

const (
	// DefaultFeedURL is the published availability feed the mobile app reads.
	DefaultFeedURL = "https://raw.githubusercontent.com/suyogshiftcare/jsontest/main/available.json"

	defaultTimeout = 10 * time.Second
)

// Client fetches the availability feed over HTTP. It implements Source.
type Client struct {
	httpClient *http.Client
	feedURL    string
	logger     *logging.Logger
}

// NewClient constructs a feed client.
func NewClient(feedURL string, logger *logging.Logger) *Client {
	if strings.TrimSpace(feedURL) == "" {
		feedURL = DefaultFeedURL
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		feedURL:    feedURL,
		logger:     logger,
	}
}

// FetchRows downloads and decodes the raw feed.
func (c *Client) FetchRows(ctx context.Context) ([]Row, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("doctors: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("doctors: fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("doctors: feed returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var rows []Row
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("doctors: decode feed: %w", err)
	}

	c.logger.Debug("fetched availability feed", "rows", len(rows))
	return rows, nil
}

// Doctors fetches the feed and groups it per doctor.
func (c *Client) Doctors(ctx context.Context) ([]Doctor, error) {
	rows, err := c.FetchRows(ctx)
	if err != nil {
		return nil, err
	}
	return GroupByDoctor(rows), nil
}
