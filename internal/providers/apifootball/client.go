package apifootball

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/preston-bernstein/roster-filter-service/internal/domain/leagues"
	"github.com/preston-bernstein/roster-filter-service/internal/domain/players"
	"github.com/preston-bernstein/roster-filter-service/internal/providers"
)

// Config controls how the API-Football client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	MaxPages   int
}

// Client fetches league squads from API-Football and maps them to domain players.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	now        func() time.Time
	maxPages   int
}

// NewClient constructs an API-Football client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
		maxPages:   resolveMaxPages(cfg.MaxPages),
	}
}

// FetchPlayers retrieves every page of the league's players for the season, up to the page cap.
func (c *Client) FetchPlayers(ctx context.Context, season string, league leagues.League) ([]players.Player, error) {
	page := 1
	all := make([]players.Player, 0)

	for {
		payload, err := c.fetchPage(ctx, season, league.ID, page)
		if err != nil {
			return nil, fmt.Errorf("apifootball: league %s page %d: %w", league.Code, page, err)
		}

		for _, env := range payload.Response {
			if p, ok := mapPlayer(env); ok {
				all = append(all, p)
			}
		}

		if payload.Paging.Total <= page || page >= c.maxPages {
			break
		}
		page++
	}

	return all, nil
}

func (c *Client) fetchPage(ctx context.Context, season string, leagueID, page int) (playersResponse, error) {
	req, err := c.buildRequest(ctx, season, leagueID, page)
	if err != nil {
		return playersResponse{}, backoff.Permanent(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return playersResponse{}, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return playersResponse{}, &providers.RateLimitError{
			Provider:   ProviderName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			Remaining:  resp.Header.Get(remainingHeader),
			Message:    "apifootball rate limited",
		}
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return playersResponse{}, backoff.Permanent(unexpectedStatus(resp))
	case resp.StatusCode != http.StatusOK:
		return playersResponse{}, unexpectedStatus(resp)
	}

	var payload playersResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return playersResponse{}, fmt.Errorf("decode: %w", err)
	}
	if err := apiError(payload.Errors, resp.StatusCode); err != nil {
		return playersResponse{}, err
	}
	return payload, nil
}

func (c *Client) buildRequest(ctx context.Context, season string, leagueID, page int) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/players", nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("league", strconv.Itoa(leagueID))
	q.Set("season", season)
	q.Set("page", strconv.Itoa(page))
	req.URL.RawQuery = q.Encode()

	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}
	req.Header.Set("Accept", "application/json")

	return req, nil
}

func unexpectedStatus(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
}

// apiError interprets the errors field, which upstream sends as [] when empty
// and as an object keyed by error kind otherwise.
func apiError(raw json.RawMessage, status int) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("[]")) || bytes.Equal(trimmed, []byte("{}")) || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	var byKind map[string]string
	if err := json.Unmarshal(trimmed, &byKind); err != nil {
		return fmt.Errorf("upstream error: %s", string(trimmed))
	}
	if msg, ok := byKind["rateLimit"]; ok {
		return &providers.RateLimitError{
			Provider:   ProviderName,
			StatusCode: status,
			Message:    msg,
		}
	}
	if msg, ok := byKind["token"]; ok {
		return backoff.Permanent(fmt.Errorf("upstream rejected credentials: %s", msg))
	}

	parts := make([]string, 0, len(byKind))
	for kind, msg := range byKind {
		parts = append(parts, kind+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Errorf("upstream error: %s", strings.Join(parts, "; "))
}
