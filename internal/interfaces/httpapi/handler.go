package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/pitchside/fpl-compare/internal/platform/logging"
	"github.com/pitchside/fpl-compare/internal/usecase"
)

type Handler struct {
	compareService *usecase.CompareService
	logger         *logging.Logger
	validator      *validator.Validate
}

func NewHandler(compareService *usecase.CompareService, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		compareService: compareService,
		logger:         logger,
		validator:      validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, healthDTO{
		Status:  "healthy",
		Message: "FPL Compare API is running",
	})
}

type compareQuery struct {
	Players string `validate:"required"`
}

// ComparePlayers answers GET /compare?players=a,b,c with one result object
// per requested name, preserving request order.
func (h *Handler) ComparePlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ComparePlayers")
	defer span.End()

	// Comparison output shifts with every gameweek, so never let proxies
	// serve a stale copy.
	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "0")

	query := compareQuery{Players: r.URL.Query().Get("players")}
	if err := h.validateRequest(ctx, query); err != nil {
		writeJSON(ctx, w, http.StatusBadRequest, errorBody{Error: "Missing 'players' parameter"})
		return
	}

	names := splitNames(query.Players)
	entries, err := h.compareService.Compare(ctx, names)
	if err != nil {
		h.logger.ErrorContext(ctx, "compare players failed", "names", names, "error", err)
		writeError(ctx, w, err)
		return
	}

	results := make([]any, 0, len(entries))
	for _, entry := range entries {
		results = append(results, comparisonEntryToDTO(entry))
	}

	writeJSON(ctx, w, http.StatusOK, results)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// splitNames splits the comma-separated players parameter. Entries are
// trimmed but empty ones are kept so each position still gets a response
// object.
func splitNames(raw string) []string {
	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		names = append(names, strings.TrimSpace(part))
	}
	return names
}

type healthDTO struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type playerResultDTO struct {
	Player   string       `json:"player"`
	Team     string       `json:"team"`
	Price    float64      `json:"price"`
	PPG      float64      `json:"ppg"`
	Status   string       `json:"status"`
	Summary  string       `json:"summary"`
	Fixtures []fixtureDTO `json:"fixtures"`
}

type fixtureDTO struct {
	Opponent    string         `json:"opponent"`
	Home        bool           `json:"home"`
	Difficulty  int            `json:"difficulty"`
	Label       string         `json:"label"`
	KickoffTime *string        `json:"kickoff_time"`
	HeadToHead  *headToHeadDTO `json:"head_to_head,omitempty"`
}

type headToHeadDTO struct {
	Summary string           `json:"summary"`
	Matches []pastMeetingDTO `json:"matches"`
}

type pastMeetingDTO struct {
	Date   string `json:"date"`
	Season string `json:"season"`
	Result string `json:"result"`
	Venue  string `json:"venue"`
	Score  string `json:"score"`
}

func comparisonEntryToDTO(entry usecase.ComparisonEntry) any {
	if !entry.Found {
		return errorBody{
			Error:      fmt.Sprintf("No match for '%s'", entry.RequestedName),
			Suggestion: entry.Suggestion,
		}
	}

	fixtures := make([]fixtureDTO, 0, len(entry.Fixtures))
	for _, outlook := range entry.Fixtures {
		dto := fixtureDTO{
			Opponent:   outlook.Opponent,
			Home:       outlook.Home,
			Difficulty: outlook.Difficulty,
			Label:      outlook.Label,
		}
		if !outlook.KickoffAt.IsZero() {
			kickoff := outlook.KickoffAt.UTC().Format(time.RFC3339)
			dto.KickoffTime = &kickoff
		}
		if outlook.HeadToHead != nil {
			h2h := &headToHeadDTO{
				Summary: outlook.HeadToHead.Summary,
				Matches: make([]pastMeetingDTO, 0, len(outlook.HeadToHead.Matches)),
			}
			for _, meeting := range outlook.HeadToHead.Matches {
				h2h.Matches = append(h2h.Matches, pastMeetingDTO{
					Date:   meeting.Date.UTC().Format("2006-01-02"),
					Season: meeting.Season,
					Result: meeting.Result,
					Venue:  meeting.Venue,
					Score:  meeting.Score,
				})
			}
			dto.HeadToHead = h2h
		}
		fixtures = append(fixtures, dto)
	}

	return playerResultDTO{
		Player:   entry.PlayerName,
		Team:     entry.TeamName,
		Price:    entry.Price,
		PPG:      entry.PointsPerGame,
		Status:   entry.Status,
		Summary:  entry.Summary,
		Fixtures: fixtures,
	}
}
