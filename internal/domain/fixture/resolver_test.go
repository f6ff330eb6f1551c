package fixture

import (
	"testing"
	"time"
)

func kickoff(day int) time.Time {
	return time.Date(2026, 9, day, 15, 0, 0, 0, time.UTC)
}

func TestResolver_UpcomingSelectsAndOrders(t *testing.T) {
	t.Parallel()

	fixtures := []Fixture{
		{ID: 5, HomeTeamID: 1, AwayTeamID: 2, HomeDifficulty: 3, AwayDifficulty: 2, KickoffAt: kickoff(20)},
		{ID: 1, HomeTeamID: 2, AwayTeamID: 1, HomeDifficulty: 4, AwayDifficulty: 5, KickoffAt: kickoff(6)},
		{ID: 2, HomeTeamID: 3, AwayTeamID: 4, HomeDifficulty: 2, AwayDifficulty: 2, KickoffAt: kickoff(7)},
		{ID: 3, HomeTeamID: 1, AwayTeamID: 3, HomeDifficulty: 2, AwayDifficulty: 3, KickoffAt: kickoff(13)},
	}

	r := NewResolver(DefaultDifficultyLabels())
	run := r.Upcoming(1, fixtures)

	if len(run) != 3 {
		t.Fatalf("expected 3 fixtures for team 1, got %d", len(run))
	}

	first := run[0]
	if first.Home || first.OpponentID != 2 || first.Difficulty != 5 {
		t.Fatalf("unexpected first fixture: %+v", first)
	}
	if first.Label != "Likely To Lose" {
		t.Fatalf("unexpected label: %s", first.Label)
	}

	second := run[1]
	if !second.Home || second.OpponentID != 3 || second.Difficulty != 2 {
		t.Fatalf("unexpected second fixture: %+v", second)
	}

	if !run[0].KickoffAt.Before(run[1].KickoffAt) || !run[1].KickoffAt.Before(run[2].KickoffAt) {
		t.Fatal("fixtures must be ordered by kickoff ascending")
	}
}

func TestResolver_UpcomingCapsAtFour(t *testing.T) {
	t.Parallel()

	var fixtures []Fixture
	for day := 1; day <= 6; day++ {
		fixtures = append(fixtures, Fixture{
			HomeTeamID: 1, AwayTeamID: int64(day + 1),
			HomeDifficulty: 3, AwayDifficulty: 3,
			KickoffAt: kickoff(day),
		})
	}

	r := NewResolver(DefaultDifficultyLabels())
	run := r.Upcoming(1, fixtures)

	if len(run) != 4 {
		t.Fatalf("expected cap of 4, got %d", len(run))
	}
	if run[0].OpponentID != 2 || run[3].OpponentID != 5 {
		t.Fatalf("expected the four soonest fixtures, got %+v", run)
	}
}

func TestResolver_UpcomingUnscheduledSortLast(t *testing.T) {
	t.Parallel()

	fixtures := []Fixture{
		{HomeTeamID: 1, AwayTeamID: 2, HomeDifficulty: 3},
		{HomeTeamID: 1, AwayTeamID: 3, HomeDifficulty: 2, KickoffAt: kickoff(10)},
	}

	r := NewResolver(DefaultDifficultyLabels())
	run := r.Upcoming(1, fixtures)

	if len(run) != 2 {
		t.Fatalf("expected 2 fixtures, got %d", len(run))
	}
	if run[0].OpponentID != 3 {
		t.Fatal("dated fixture must sort before unscheduled one")
	}
	if !run[1].KickoffAt.IsZero() {
		t.Fatal("unscheduled fixture must keep zero kickoff")
	}
}

func TestResolver_LabelUnknownRating(t *testing.T) {
	t.Parallel()

	r := NewResolver(DefaultDifficultyLabels())
	if got := r.Label(9); got != "Unknown" {
		t.Fatalf("expected Unknown for out-of-range rating, got %s", got)
	}
}

func TestSummarize_FirstSeenOrder(t *testing.T) {
	t.Parallel()

	run := []Upcoming{
		{Label: "Easy"},
		{Label: "Difficult"},
		{Label: "Easy"},
		{Label: "Evenly Matched"},
	}

	want := "2 easy, 1 difficult, 1 evenly matched"
	if got := Summarize(run); got != want {
		t.Fatalf("Summarize = %q, want %q", got, want)
	}
}

func TestSummarize_Empty(t *testing.T) {
	t.Parallel()

	if got := Summarize(nil); got != "" {
		t.Fatalf("expected empty summary for empty run, got %q", got)
	}
}
