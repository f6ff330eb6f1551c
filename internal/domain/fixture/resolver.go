package fixture

import (
	"fmt"
	"sort"
	"strings"
)

// maxUpcoming caps how many future fixtures are reported per player.
const maxUpcoming = 4

// DefaultDifficultyLabels maps the 1..5 fixture difficulty rating scale to
// human-readable labels.
func DefaultDifficultyLabels() map[int]string {
	return map[int]string{
		1: "Very Easy",
		2: "Easy",
		3: "Evenly Matched",
		4: "Difficult",
		5: "Likely To Lose",
	}
}

// Resolver projects the league-wide fixture list onto individual teams and
// translates difficulty ratings into labels. The label table is copied at
// construction so the resolver stays immutable afterwards.
type Resolver struct {
	labels map[int]string
}

func NewResolver(labels map[int]string) *Resolver {
	owned := make(map[int]string, len(labels))
	for rating, label := range labels {
		owned[rating] = label
	}
	return &Resolver{labels: owned}
}

// Label returns the label for a difficulty rating, or "Unknown" when the
// rating falls outside the configured table.
func (r *Resolver) Label(difficulty int) string {
	if label, ok := r.labels[difficulty]; ok {
		return label
	}
	return "Unknown"
}

// Upcoming selects the next fixtures for a team, soonest first, capped at
// maxUpcoming. Fixtures without a kickoff time sort after dated ones.
func (r *Resolver) Upcoming(teamID int64, fixtures []Fixture) []Upcoming {
	var mine []Fixture
	for _, f := range fixtures {
		if f.HomeTeamID == teamID || f.AwayTeamID == teamID {
			mine = append(mine, f)
		}
	}

	sort.SliceStable(mine, func(i, j int) bool {
		a, b := mine[i].KickoffAt, mine[j].KickoffAt
		if a.IsZero() != b.IsZero() {
			return !a.IsZero()
		}
		return a.Before(b)
	})

	if len(mine) > maxUpcoming {
		mine = mine[:maxUpcoming]
	}

	out := make([]Upcoming, 0, len(mine))
	for _, f := range mine {
		u := Upcoming{KickoffAt: f.KickoffAt}
		if f.HomeTeamID == teamID {
			u.Home = true
			u.OpponentID = f.AwayTeamID
			u.Difficulty = f.HomeDifficulty
		} else {
			u.OpponentID = f.HomeTeamID
			u.Difficulty = f.AwayDifficulty
		}
		u.Label = r.Label(u.Difficulty)
		out = append(out, u)
	}

	return out
}

// Summarize aggregates a fixture run into a short phrase such as
// "2 easy, 1 difficult, 1 evenly matched". Labels appear in first-seen
// order, lowercased. An empty run yields an empty string.
func Summarize(run []Upcoming) string {
	counts := make(map[string]int, len(run))
	var order []string
	for _, u := range run {
		label := strings.ToLower(u.Label)
		if _, seen := counts[label]; !seen {
			order = append(order, label)
		}
		counts[label]++
	}

	parts := make([]string, 0, len(order))
	for _, label := range order {
		parts = append(parts, fmt.Sprintf("%d %s", counts[label], label))
	}
	return strings.Join(parts, ", ")
}
