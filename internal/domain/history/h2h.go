package history

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pitchside/fpl-compare/internal/platform/textnorm"
)

// maxMeetings caps how many past meetings a head-to-head block reports.
const maxMeetings = 4

// Resolver pairs clubs from the fantasy dataset with matches from the
// historical results dataset. The two datasets spell club names differently,
// so lookups go through an alias table and normalized substring containment.
type Resolver struct {
	aliases map[string]string
}

func NewResolver(aliases map[string]string) *Resolver {
	owned := make(map[string]string, len(aliases))
	for short, full := range aliases {
		owned[short] = full
	}
	return &Resolver{aliases: owned}
}

// canonical resolves a fantasy club name to its historical-dataset spelling
// and normalizes it for comparison.
func (r *Resolver) canonical(name string) string {
	if full, ok := r.aliases[name]; ok {
		name = full
	}
	return textnorm.Normalize(name)
}

// matchesTeam reports whether a dataset club name refers to the queried
// club. Containment absorbs suffix differences such as "Arsenal FC".
func matchesTeam(datasetName, canonicalQuery string) bool {
	if canonicalQuery == "" {
		return false
	}
	return strings.Contains(textnorm.Normalize(datasetName), canonicalQuery)
}

// Between returns the most recent meetings of two clubs, newest first,
// capped at maxMeetings, with a win/draw/loss summary from teamName's point
// of view. ok is false when the corpus holds no meetings of the pair.
func (r *Resolver) Between(teamName, opponentName string, corpus []Match) (HeadToHead, bool) {
	team := r.canonical(teamName)
	opponent := r.canonical(opponentName)

	var met []Match
	for _, m := range corpus {
		if matchesTeam(m.HomeTeam, team) && matchesTeam(m.AwayTeam, opponent) {
			met = append(met, m)
		} else if matchesTeam(m.AwayTeam, team) && matchesTeam(m.HomeTeam, opponent) {
			met = append(met, m)
		}
	}
	if len(met) == 0 {
		return HeadToHead{}, false
	}

	sort.SliceStable(met, func(i, j int) bool {
		return met[i].Date.After(met[j].Date)
	})
	if len(met) > maxMeetings {
		met = met[:maxMeetings]
	}

	var wins, draws, losses int
	meetings := make([]Meeting, 0, len(met))
	for _, m := range met {
		home := matchesTeam(m.HomeTeam, team)

		ours, theirs := m.HomeGoals, m.AwayGoals
		venue := "home"
		if !home {
			ours, theirs = m.AwayGoals, m.HomeGoals
			venue = "away"
		}

		result := "D"
		switch {
		case ours > theirs:
			result = "W"
			wins++
		case ours < theirs:
			result = "L"
			losses++
		default:
			draws++
		}

		meetings = append(meetings, Meeting{
			Date:   m.Date,
			Season: m.Season,
			Result: result,
			Venue:  venue,
			Score:  fmt.Sprintf("%d-%d", m.HomeGoals, m.AwayGoals),
		})
	}

	return HeadToHead{
		Summary: fmt.Sprintf("%d wins, %d draws, %d losses", wins, draws, losses),
		Matches: meetings,
	}, true
}
