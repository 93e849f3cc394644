// Package nhl is the transport layer for the public NHL web API. It owns the
// HTTP client, rate limiting and the circuit breaker, and translates every
// upstream failure into the error-marker payload convention consumed by the
// resolver: {"error": true, "status": <int>, "message": <string>}.
package nhl

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/nhlstats/player-comparison-service/internal/metrics"
	"github.com/nhlstats/player-comparison-service/internal/payload"
)

// API is the contract the service layer consumes. Fetch methods return a
// decoded JSON tree; the error return is reserved for context cancellation,
// upstream trouble comes back as an error-marker tree instead.
type API interface {
	PlayerInfo(ctx context.Context, playerID string) (any, error)
	PlayerGameLog(ctx context.Context, playerID, season, gameType string) (any, error)
	PlayerLanding(ctx context.Context, playerID string) (any, error)
	Standings(ctx context.Context) (any, error)
	Ping(ctx context.Context) error
}

// Config tunes the client. Zero values fall back to sane defaults.
type Config struct {
	BaseURL           string
	Timeout           time.Duration
	UserAgent         string
	RequestsPerSecond float64
	Burst             int
}

func (c *Config) setDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
	if c.UserAgent == "" {
		c.UserAgent = "player-comparison-service/1.0"
	}
	if c.RequestsPerSecond <= 0 {
		c.RequestsPerSecond = 10
	}
	if c.Burst <= 0 {
		c.Burst = 5
	}
}

// Client talks to the NHL API with client-side rate limiting and a circuit
// breaker around the request path.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
	cb         *gobreaker.CircuitBreaker[any]
	log        zerolog.Logger
}

var _ API = (*Client)(nil)

const breakerName = "nhl-api"

// NewClient builds a ready-to-use API client.
func NewClient(cfg Config, logger zerolog.Logger) *Client {
	cfg.setDefaults()
	l := logger.With().Str("module", "nhl").Str("component", "client").Logger()

	metrics.BreakerState.WithLabelValues(breakerName).Set(0)

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return ratio >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			l.Warn().Str("from", stateLabel(from)).Str("to", stateLabel(to)).Msg("circuit breaker state change")
			metrics.BreakerState.WithLabelValues(name).Set(stateValue(to))
			metrics.BreakerTransitions.WithLabelValues(name, stateLabel(from), stateLabel(to)).Inc()
		},
	})

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		cb:         cb,
		log:        l,
	}
}

// PlayerInfo fetches basic information for one player.
func (c *Client) PlayerInfo(ctx context.Context, playerID string) (any, error) {
	return c.fetch(ctx, "player_info", BuildURL(c.baseURL, PlayerInfoPath, playerID))
}

// PlayerGameLog fetches a player's per-game stat lines for a season and game type.
func (c *Client) PlayerGameLog(ctx context.Context, playerID, season, gameType string) (any, error) {
	return c.fetch(ctx, "player_game_log", BuildURL(c.baseURL, PlayerGameLogPath, playerID, season, gameType))
}

// PlayerLanding fetches a player's career statistics page.
func (c *Client) PlayerLanding(ctx context.Context, playerID string) (any, error) {
	return c.fetch(ctx, "player_landing", BuildURL(c.baseURL, PlayerLandingPath, playerID))
}

// Standings fetches the current league standings.
func (c *Client) Standings(ctx context.Context) (any, error) {
	return c.fetch(ctx, "standings", BuildURL(c.baseURL, StandingsPath))
}

// FetchJSON fetches an arbitrary API URL with the same failure semantics as
// the typed methods.
func (c *Client) FetchJSON(ctx context.Context, url string) (any, error) {
	return c.fetch(ctx, "raw", url)
}

// httpError carries an upstream status code through the circuit breaker so
// server-side failures count against it while still producing a marker.
type httpError struct {
	status int
}

func (e *httpError) Error() string { return fmt.Sprintf("HTTP error %d", e.status) }

func (c *Client) fetch(ctx context.Context, endpoint, url string) (any, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	start := time.Now()
	tree, err := c.cb.Execute(func() (any, error) {
		return c.doFetch(ctx, url)
	})
	metrics.UpstreamRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

	if err == nil {
		metrics.UpstreamRequests.WithLabelValues(endpoint, "success").Inc()
		return tree, nil
	}

	// Cancellation belongs to the caller, not the degrade path.
	if ctx.Err() != nil {
		metrics.UpstreamRequests.WithLabelValues(endpoint, "transport_error").Inc()
		return nil, ctx.Err()
	}

	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.UpstreamRequests.WithLabelValues(endpoint, "rejected").Inc()
		c.log.Warn().Str("endpoint", endpoint).Msg("request rejected by circuit breaker")
		return payload.ErrorMarker(http.StatusServiceUnavailable, "circuit open"), nil
	default:
		var he *httpError
		if errors.As(err, &he) {
			metrics.UpstreamRequests.WithLabelValues(endpoint, "http_error").Inc()
			c.log.Warn().Str("endpoint", endpoint).Int("status", he.status).Msg("upstream http error")
			return payload.ErrorMarker(he.status, he.Error()), nil
		}
		metrics.UpstreamRequests.WithLabelValues(endpoint, "transport_error").Inc()
		c.log.Warn().Str("endpoint", endpoint).Err(err).Msg("upstream request failed")
		return payload.ErrorMarker(0, err.Error()), nil
	}
}

// doFetch runs inside the circuit breaker. Client-side 4xx statuses return a
// marker without an error so they do not trip the breaker; everything the
// upstream can be blamed for comes back as an error.
func (c *Client) doFetch(ctx context.Context, url string) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, &httpError{status: resp.StatusCode}
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return payload.ErrorMarker(resp.StatusCode, fmt.Sprintf("HTTP error %d", resp.StatusCode)), nil
	}

	var tree any
	if err := json.NewDecoder(resp.Body).Decode(&tree); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return tree, nil
}

// Ping verifies the upstream API answers at all. It bypasses the limiter and
// breaker so a saturated client cannot fail readiness on its own.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, BuildURL(c.baseURL, StandingsPath), nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}
	return nil
}

func stateLabel(s gobreaker.State) string {
	switch s {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
