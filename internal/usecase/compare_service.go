package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/pitchside/fpl-compare/internal/domain/fixture"
	"github.com/pitchside/fpl-compare/internal/domain/history"
	"github.com/pitchside/fpl-compare/internal/domain/player"
	"github.com/pitchside/fpl-compare/internal/domain/team"
	"github.com/pitchside/fpl-compare/internal/platform/logging"
)

// FantasySource provides the live fantasy game data.
type FantasySource interface {
	Bootstrap(ctx context.Context) ([]player.Player, []team.Team, error)
	UpcomingFixtures(ctx context.Context) ([]fixture.Fixture, error)
}

// ResultsSource provides finished matches from past and current seasons.
type ResultsSource interface {
	RecentResults(ctx context.Context) ([]history.Match, error)
}

// FixtureOutlook is one upcoming fixture enriched for presentation.
type FixtureOutlook struct {
	Opponent   string
	Home       bool
	Difficulty int
	Label      string
	KickoffAt  time.Time
	HeadToHead *history.HeadToHead
}

// ComparisonEntry is the outcome for one requested name. Found tells the
// two shapes apart: a resolved player profile or a miss with an optional
// spelling suggestion.
type ComparisonEntry struct {
	RequestedName string
	Found         bool
	PlayerName    string
	TeamName      string
	Price         float64
	PointsPerGame float64
	Status        string
	Fixtures      []FixtureOutlook
	Summary       string
	Suggestion    string
}

// CompareService builds side-by-side fixture outlooks for requested players.
type CompareService struct {
	fantasy  FantasySource
	results  ResultsSource
	fixtures *fixture.Resolver
	h2h      *history.Resolver
	logger   *logging.Logger
}

func NewCompareService(
	fantasy FantasySource,
	results ResultsSource,
	fixtures *fixture.Resolver,
	h2h *history.Resolver,
	logger *logging.Logger,
) *CompareService {
	if logger == nil {
		logger = logging.Default()
	}
	return &CompareService{
		fantasy:  fantasy,
		results:  results,
		fixtures: fixtures,
		h2h:      h2h,
		logger:   logger,
	}
}

// Compare resolves each requested name against the fantasy dataset and
// returns one entry per name, in request order. Missing historical results
// degrade the response (no head-to-head blocks) instead of failing it.
func (s *CompareService) Compare(ctx context.Context, names []string) ([]ComparisonEntry, error) {
	ctx, span := startSpan(ctx, "usecase.CompareService.Compare")
	defer span.End()

	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no player names given", ErrInvalidInput)
	}

	players, teams, err := s.fantasy.Bootstrap(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	fixtures, err := s.fantasy.UpcomingFixtures(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	var corpus []history.Match
	if s.results != nil {
		corpus, err = s.results.RecentResults(ctx)
		if err != nil {
			s.logger.WarnContext(ctx, "historical results unavailable, omitting head-to-head", "error", err)
			corpus = nil
		}
	}

	index := player.NewIndex(players)
	teamNames := team.NamesByID(teams)

	entries := make([]ComparisonEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, s.compareOne(name, index, teamNames, fixtures, corpus))
	}

	return entries, nil
}

func (s *CompareService) compareOne(
	name string,
	index *player.Index,
	teamNames map[int64]string,
	fixtures []fixture.Fixture,
	corpus []history.Match,
) ComparisonEntry {
	p, ok, suggestion := index.Match(name)
	if !ok {
		return ComparisonEntry{
			RequestedName: name,
			Suggestion:    suggestion,
		}
	}

	teamName := team.NameOf(teamNames, p.TeamID)
	run := s.fixtures.Upcoming(p.TeamID, fixtures)

	outlooks := make([]FixtureOutlook, 0, len(run))
	for _, u := range run {
		outlook := FixtureOutlook{
			Opponent:   team.NameOf(teamNames, u.OpponentID),
			Home:       u.Home,
			Difficulty: u.Difficulty,
			Label:      u.Label,
			KickoffAt:  u.KickoffAt,
		}
		if len(corpus) > 0 {
			if h2h, found := s.h2h.Between(teamName, outlook.Opponent, corpus); found {
				outlook.HeadToHead = &h2h
			}
		}
		outlooks = append(outlooks, outlook)
	}

	return ComparisonEntry{
		RequestedName: name,
		Found:         true,
		PlayerName:    p.FullName(),
		TeamName:      teamName,
		Price:         p.Price(),
		PointsPerGame: p.PointsPerGame,
		Status:        p.Status,
		Fixtures:      outlooks,
		Summary:       fixture.Summarize(run),
	}
}
