package app

import (
	"fmt"
	"net/http"

	"github.com/pitchside/fpl-compare/external/footballdata"
	"github.com/pitchside/fpl-compare/external/fpl"
	"github.com/pitchside/fpl-compare/internal/config"
	"github.com/pitchside/fpl-compare/internal/domain/fixture"
	"github.com/pitchside/fpl-compare/internal/domain/history"
	"github.com/pitchside/fpl-compare/internal/interfaces/httpapi"
	"github.com/pitchside/fpl-compare/internal/platform/logging"
	"github.com/pitchside/fpl-compare/internal/platform/resilience"
	"github.com/pitchside/fpl-compare/internal/usecase"
)

// NewHTTPServer wires the upstream clients, the comparison service and the
// HTTP layer into a ready-to-run server.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	fantasyClient := fpl.NewClient(fpl.ClientConfig{
		BaseURL:    cfg.FPLBaseURL,
		Timeout:    cfg.FPLTimeout,
		MaxRetries: cfg.FPLMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.FPLCircuitEnabled,
			FailureThreshold: cfg.FPLCircuitFailureThreshold,
			OpenTimeout:      cfg.FPLCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.FPLCircuitHalfOpenMaxReq,
		},
	})

	resultsClient := footballdata.NewClient(footballdata.ClientConfig{
		BaseURL:    cfg.ResultsBaseURL,
		Seasons:    cfg.ResultsSeasons,
		Timeout:    cfg.ResultsTimeout,
		MaxRetries: cfg.ResultsMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.ResultsCircuitEnabled,
			FailureThreshold: cfg.ResultsCircuitFailureThreshold,
			OpenTimeout:      cfg.ResultsCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.ResultsCircuitHalfOpenMaxReq,
		},
	})

	compareSvc := usecase.NewCompareService(
		fantasyClient,
		resultsClient,
		fixture.NewResolver(fixture.DefaultDifficultyLabels()),
		history.NewResolver(history.DefaultAliases()),
		logger,
	)

	handler := httpapi.NewHandler(compareSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
