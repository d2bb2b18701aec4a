// Package ffc fetches average-draft-position data from the Fantasy
// Football Calculator public API, used to enrich the mirrored player set.
package ffc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/JamesExley95/sleeper-player-database/internal/domain/players"
)

// ProviderName identifies this provider in logs and metrics.
const ProviderName = "fantasy_football_calculator"

const (
	defaultBaseURL     = "https://fantasyfootballcalculator.com/api/v1"
	defaultFormat      = "standard"
	defaultTeams       = 12
	defaultHTTPTimeout = 15 * time.Second
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config controls the ADP client.
type Config struct {
	BaseURL    string
	Format     string // standard, ppr, half-ppr
	Teams      int
	Year       int
	HTTPClient *http.Client
	Now        func() time.Time
}

// Client fetches ADP data and maps it to domain entries keyed by
// normalized player name.
type Client struct {
	baseURL    string
	format     string
	teams      int
	year       int
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs an ADP client with the provided configuration.
func NewClient(cfg Config) *Client {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	format := cfg.Format
	if format == "" {
		format = defaultFormat
	}
	teams := cfg.Teams
	if teams <= 0 {
		teams = defaultTeams
	}
	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimSuffix(base, "/"),
		format:     format,
		teams:      teams,
		year:       cfg.Year,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		now:        now,
	}
}

// FetchADP retrieves current ADP data. Entries are keyed by normalized
// player name since the upstream has no stable player IDs shared with the
// mirror source.
func (c *Client) FetchADP(ctx context.Context) (map[string]players.ADP, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/adp/"+c.format, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("teams", strconv.Itoa(c.teams))
	q.Set("year", strconv.Itoa(c.resolveYear()))
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("ffc: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload adpResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("ffc: decode adp: %w", err)
	}

	return mapADP(payload), nil
}

func (c *Client) resolveYear() int {
	if c.year > 0 {
		return c.year
	}
	return c.now().UTC().Year()
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}
