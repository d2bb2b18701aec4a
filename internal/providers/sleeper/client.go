package sleeper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/JamesExley95/sleeper-player-database/internal/domain/players"
	"github.com/JamesExley95/sleeper-player-database/internal/providers"
)

// Config controls how the sleeper client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	// Positions limits the result to these roster positions; empty keeps all.
	Positions []string
	// IncludeInactive keeps players the upstream marks inactive.
	IncludeInactive bool
}

// Client fetches the NFL player dump from the Sleeper API and maps it to
// domain players. The endpoint is unauthenticated.
type Client struct {
	baseURL         string
	httpClient      httpDoer
	positions       map[string]struct{}
	includeInactive bool
}

// NewClient constructs a sleeper client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:         normalizeBaseURL(cfg.BaseURL),
		httpClient:      resolveHTTPClient(cfg.HTTPClient),
		positions:       positionSet(cfg.Positions),
		includeInactive: cfg.IncludeInactive,
	}
}

// FetchPlayers retrieves and normalizes the full player dump, filtered to
// the configured positions. Results are sorted by ID for determinism.
func (c *Client) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+playersEndpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, rateLimitError(resp)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("sleeper: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var dump map[string]rawPlayer
	if err := json.NewDecoder(resp.Body).Decode(&dump); err != nil {
		return nil, fmt.Errorf("sleeper: decode players: %w", err)
	}

	result := make([]players.Player, 0, len(dump))
	for id, raw := range dump {
		p, ok := c.mapPlayer(id, raw)
		if !ok {
			continue
		}
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func rateLimitError(resp *http.Response) error {
	retryAfter := time.Duration(0)
	if raw := resp.Header.Get("Retry-After"); raw != "" {
		if secs, err := time.ParseDuration(raw + "s"); err == nil {
			retryAfter = secs
		} else if at, err := http.ParseTime(raw); err == nil {
			// The header may carry an HTTP-date instead of delta-seconds.
			retryAfter = time.Until(at)
			if retryAfter < 0 {
				retryAfter = 0
			}
		}
	}
	return &providers.RateLimitError{
		Provider:   ProviderName,
		StatusCode: resp.StatusCode,
		RetryAfter: retryAfter,
	}
}
