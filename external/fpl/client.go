package fpl

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/pitchside/fpl-compare/internal/domain/fixture"
	"github.com/pitchside/fpl-compare/internal/domain/player"
	"github.com/pitchside/fpl-compare/internal/domain/team"
	"github.com/pitchside/fpl-compare/internal/platform/logging"
	"github.com/pitchside/fpl-compare/internal/platform/resilience"
)

const (
	defaultBaseURL = "https://fantasy.premierleague.com/api"

	bootstrapPath = "/bootstrap-static/"
	fixturesPath  = "/fixtures/"

	// bootstrap-static runs to several megabytes during the season.
	maxBodyBytes = 16 << 20
)

var errFPLTransient = crerr.New("fpl transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client reads the public fantasy game API. Identical in-flight requests
// are collapsed and repeated upstream failures trip a circuit breaker.
type Client struct {
	httpClient     *http.Client
	baseURL        string
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
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		maxRetries:     max(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// Bootstrap fetches the player and team master data.
func (c *Client) Bootstrap(ctx context.Context) ([]player.Player, []team.Team, error) {
	var envelope bootstrapResponse
	if err := c.doJSON(ctx, bootstrapPath, &envelope); err != nil {
		return nil, nil, fmt.Errorf("fetch bootstrap: %w", err)
	}

	players := make([]player.Player, 0, len(envelope.Elements))
	for _, element := range envelope.Elements {
		players = append(players, player.Player{
			ID:            element.ID,
			FirstName:     element.FirstName,
			SecondName:    element.SecondName,
			WebName:       element.WebName,
			TeamID:        element.Team,
			NowCost:       element.NowCost,
			PointsPerGame: parsePointsPerGame(element.PointsPerGame),
			Status:        element.Status,
		})
	}

	teams := make([]team.Team, 0, len(envelope.Teams))
	for _, entry := range envelope.Teams {
		teams = append(teams, team.Team{
			ID:        entry.ID,
			Name:      entry.Name,
			ShortName: entry.ShortName,
		})
	}

	return players, teams, nil
}

// UpcomingFixtures fetches the fixture list with finished matches removed.
func (c *Client) UpcomingFixtures(ctx context.Context) ([]fixture.Fixture, error) {
	var entries []fixtureEntry
	if err := c.doJSON(ctx, fixturesPath, &entries); err != nil {
		return nil, fmt.Errorf("fetch fixtures: %w", err)
	}

	fixtures := make([]fixture.Fixture, 0, len(entries))
	for _, entry := range entries {
		if entry.Finished {
			continue
		}
		f := fixture.Fixture{
			ID:             entry.ID,
			HomeTeamID:     entry.TeamH,
			AwayTeamID:     entry.TeamA,
			HomeDifficulty: entry.TeamHDifficulty,
			AwayDifficulty: entry.TeamADifficulty,
		}
		if entry.Event != nil {
			f.Event = *entry.Event
		}
		if entry.KickoffTime != nil {
			if parsed, err := time.Parse(time.RFC3339, *entry.KickoffTime); err == nil {
				f.KickoffAt = parsed
			}
		}
		fixtures = append(fixtures, f)
	}

	return fixtures, nil
}

func (c *Client) doJSON(ctx context.Context, path string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "fpl circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("fantasy data feed is temporarily unavailable: %w", err)
		}
	}

	fullURL := c.baseURL + path
	out, err, _ := c.flight.Do(path, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && isFPLCircuitFailure(reqErr) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode fantasy payload: %w", err)
	}

	return nil
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
			lastErr = fmt.Errorf("%w: send request: %v", errFPLTransient, err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errFPLTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else {
				if isRetryableStatus(resp.StatusCode) {
					lastErr = fmt.Errorf("%w: fpl status=%d body=%s", errFPLTransient, resp.StatusCode, abbreviateBody(raw))
				} else {
					return nil, fmt.Errorf("fpl status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
				}
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
		lastErr = fmt.Errorf("fpl request failed")
	}
	c.logger.WarnContext(ctx, "fpl request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

// parsePointsPerGame tolerates the feed's string-typed numeric field.
func parsePointsPerGame(raw string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return value
}

func isFPLCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	return stderrors.Is(err, errFPLTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
