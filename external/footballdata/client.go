package footballdata

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	jsoniter "github.com/json-iterator/go"

	"github.com/pitchside/fpl-compare/internal/domain/history"
	"github.com/pitchside/fpl-compare/internal/platform/logging"
	"github.com/pitchside/fpl-compare/internal/platform/resilience"
)

const (
	defaultBaseURL = "https://raw.githubusercontent.com/openfootball/football.json/master"

	maxBodyBytes = 4 << 20
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var errResultsTransient = crerr.New("results transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Seasons        []string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client reads finished matches from the public football.json dataset, one
// file per season. A broken season file degrades the corpus instead of
// failing the whole fetch.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	seasons        []string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 10 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	seasons := make([]string, 0, len(cfg.Seasons))
	for _, season := range cfg.Seasons {
		if trimmed := strings.TrimSpace(season); trimmed != "" {
			seasons = append(seasons, trimmed)
		}
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		seasons:        seasons,
		maxRetries:     max(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// RecentResults fetches every configured season and merges the finished
// matches. It fails only when no season could be fetched at all.
func (c *Client) RecentResults(ctx context.Context) ([]history.Match, error) {
	var corpus []history.Match
	var fetched int
	var lastErr error

	for _, season := range c.seasons {
		matches, err := c.fetchSeason(ctx, season)
		if err != nil {
			lastErr = err
			c.logger.WarnContext(ctx, "season results unavailable, skipping", "season", season, "error", err)
			continue
		}
		fetched++
		corpus = append(corpus, matches...)
	}

	if fetched == 0 && len(c.seasons) > 0 {
		return nil, fmt.Errorf("fetch results: no season reachable: %w", lastErr)
	}

	return corpus, nil
}

func (c *Client) fetchSeason(ctx context.Context, season string) ([]history.Match, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			return nil, fmt.Errorf("results dataset is temporarily unavailable: %w", err)
		}
	}

	path := fmt.Sprintf("/%s/en.1.json", season)
	out, err, _ := c.flight.Do(path, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, c.baseURL+path)
		if c.circuitEnabled {
			if reqErr != nil && stderrors.Is(reqErr, errResultsTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return nil, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected response payload type %T", out)
	}

	var envelope seasonEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decode season %s: %w", season, err)
	}

	return mapSeason(season, envelope), nil
}

func mapSeason(season string, envelope seasonEnvelope) []history.Match {
	matches := make([]history.Match, 0, len(envelope.Matches))
	for _, item := range envelope.Matches {
		if len(item.Score.FT) != 2 {
			continue
		}
		date, err := time.Parse("2006-01-02", item.Date)
		if err != nil {
			continue
		}
		matches = append(matches, history.Match{
			HomeTeam:  item.Team1,
			AwayTeam:  item.Team2,
			Date:      date,
			Season:    season,
			HomeGoals: item.Score.FT[0],
			AwayGoals: item.Score.FT[1],
		})
	}
	return matches
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %v", errResultsTransient, err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errResultsTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
				lastErr = fmt.Errorf("%w: results status=%d", errResultsTransient, resp.StatusCode)
			} else {
				return nil, fmt.Errorf("results status=%d", resp.StatusCode)
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("results request failed")
	}
	return nil, lastErr
}
