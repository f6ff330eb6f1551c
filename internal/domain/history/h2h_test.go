package history

import (
	"fmt"
	"testing"
	"time"
)

func day(year, month, d int) time.Time {
	return time.Date(year, time.Month(month), d, 15, 0, 0, 0, time.UTC)
}

func derbyCorpus() []Match {
	return []Match{
		{HomeTeam: "Manchester City FC", AwayTeam: "Arsenal FC", Date: day(2026, 3, 8), Season: "2025-26", HomeGoals: 1, AwayGoals: 1},
		{HomeTeam: "Arsenal FC", AwayTeam: "Manchester City FC", Date: day(2025, 10, 4), Season: "2025-26", HomeGoals: 2, AwayGoals: 0},
		{HomeTeam: "Manchester City FC", AwayTeam: "Arsenal FC", Date: day(2025, 2, 2), Season: "2024-25", HomeGoals: 3, AwayGoals: 1},
		{HomeTeam: "Arsenal FC", AwayTeam: "Manchester City FC", Date: day(2024, 9, 22), Season: "2024-25", HomeGoals: 2, AwayGoals: 2},
		{HomeTeam: "Manchester City FC", AwayTeam: "Arsenal FC", Date: day(2024, 3, 31), Season: "2023-24", HomeGoals: 0, AwayGoals: 0},
		{HomeTeam: "Liverpool FC", AwayTeam: "Arsenal FC", Date: day(2026, 1, 10), Season: "2025-26", HomeGoals: 2, AwayGoals: 1},
	}
}

func TestResolver_BetweenNewestFirstCapped(t *testing.T) {
	t.Parallel()

	r := NewResolver(DefaultAliases())
	h2h, ok := r.Between("Arsenal", "Man City", derbyCorpus())
	if !ok {
		t.Fatal("expected meetings between Arsenal and Man City")
	}

	if len(h2h.Matches) != 4 {
		t.Fatalf("expected cap of 4 meetings, got %d", len(h2h.Matches))
	}
	for i := 1; i < len(h2h.Matches); i++ {
		if h2h.Matches[i].Date.After(h2h.Matches[i-1].Date) {
			t.Fatal("meetings must be ordered newest first")
		}
	}
	if h2h.Matches[0].Season != "2025-26" {
		t.Fatalf("unexpected newest season: %s", h2h.Matches[0].Season)
	}
}

func TestResolver_BetweenOrientation(t *testing.T) {
	t.Parallel()

	r := NewResolver(DefaultAliases())
	h2h, ok := r.Between("Arsenal", "Man City", derbyCorpus())
	if !ok {
		t.Fatal("expected meetings")
	}

	// Newest meeting was played at Manchester City, a 1-1 draw.
	newest := h2h.Matches[0]
	if newest.Venue != "away" {
		t.Fatalf("expected away venue for Arsenal, got %s", newest.Venue)
	}
	if newest.Result != "D" || newest.Score != "1-1" {
		t.Fatalf("unexpected newest meeting: %+v", newest)
	}

	// Second newest was Arsenal 2-0 at home.
	second := h2h.Matches[1]
	if second.Venue != "home" || second.Result != "W" || second.Score != "2-0" {
		t.Fatalf("unexpected second meeting: %+v", second)
	}
}

func TestResolver_BetweenSummaryCountsReturnedMeetings(t *testing.T) {
	t.Parallel()

	r := NewResolver(DefaultAliases())
	h2h, ok := r.Between("Arsenal", "Man City", derbyCorpus())
	if !ok {
		t.Fatal("expected meetings")
	}

	// Within the capped window: draw, win, loss (1-3 away), draw.
	if h2h.Summary != "1 wins, 2 draws, 1 losses" {
		t.Fatalf("unexpected summary: %q", h2h.Summary)
	}

	var wins, draws, losses int
	for _, m := range h2h.Matches {
		switch m.Result {
		case "W":
			wins++
		case "D":
			draws++
		case "L":
			losses++
		}
	}
	recounted := fmt.Sprintf("%d wins, %d draws, %d losses", wins, draws, losses)
	if recounted != h2h.Summary {
		t.Fatalf("summary %q does not match meeting results %q", h2h.Summary, recounted)
	}
}

func TestResolver_BetweenAliasAndSuffixFolding(t *testing.T) {
	t.Parallel()

	corpus := []Match{
		{HomeTeam: "Tottenham Hotspur FC", AwayTeam: "Wolverhampton Wanderers FC", Date: day(2025, 11, 2), Season: "2025-26", HomeGoals: 2, AwayGoals: 1},
	}

	r := NewResolver(DefaultAliases())
	h2h, ok := r.Between("Spurs", "Wolves", corpus)
	if !ok {
		t.Fatal("expected alias-mapped clubs to pair with dataset names")
	}
	if h2h.Matches[0].Result != "W" || h2h.Matches[0].Venue != "home" {
		t.Fatalf("unexpected meeting: %+v", h2h.Matches[0])
	}
}

func TestResolver_BetweenNoMeetings(t *testing.T) {
	t.Parallel()

	r := NewResolver(DefaultAliases())
	if _, ok := r.Between("Arsenal", "Chelsea", derbyCorpus()); ok {
		t.Fatal("expected no meetings for an unseen pairing")
	}
}
