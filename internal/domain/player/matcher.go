package player

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/pitchside/fpl-compare/internal/platform/textnorm"
)

// fuzzyCutoff is the minimum similarity ratio for a close-match suggestion.
const fuzzyCutoff = 0.6

// Index maps normalized name variants to players for lookup by user input.
// Each player contributes three variants: display name, full name and
// surname. When two players share a variant the later one wins, matching
// the order of the upstream dataset.
type Index struct {
	byVariant map[string]Player
	variants  []string
}

// NewIndex builds a lookup index over the given players.
func NewIndex(players []Player) *Index {
	ix := &Index{
		byVariant: make(map[string]Player, len(players)*3),
		variants:  make([]string, 0, len(players)*3),
	}

	for _, p := range players {
		ix.add(textnorm.Normalize(p.WebName), p)
		ix.add(textnorm.Normalize(p.FullName()), p)
		ix.add(textnorm.Normalize(p.SecondName), p)
	}

	return ix
}

func (ix *Index) add(variant string, p Player) {
	if variant == "" {
		return
	}
	if _, seen := ix.byVariant[variant]; !seen {
		ix.variants = append(ix.variants, variant)
	}
	ix.byVariant[variant] = p
}

// Match resolves a raw user-supplied name. On success it returns the player.
// On failure it returns ok=false plus the closest variant above the fuzzy
// cutoff as a suggestion, or an empty suggestion when nothing comes close.
// Exact variant hits always win over fuzzy candidates.
func (ix *Index) Match(name string) (Player, bool, string) {
	key := textnorm.Normalize(name)
	if p, ok := ix.byVariant[key]; ok {
		return p, true, ""
	}
	return Player{}, false, ix.closest(key)
}

// closest returns the best-scoring variant at or above the cutoff. Ties keep
// the earlier variant so results are stable across runs.
func (ix *Index) closest(key string) string {
	if key == "" {
		return ""
	}

	target := splitChars(key)
	best := ""
	bestScore := fuzzyCutoff

	for _, variant := range ix.variants {
		m := difflib.NewMatcher(splitChars(variant), target)
		if m.RealQuickRatio() < bestScore || m.QuickRatio() < bestScore {
			continue
		}
		if score := m.Ratio(); score > bestScore || (score == bestScore && best == "") {
			best = variant
			bestScore = score
		}
	}

	return best
}

func splitChars(s string) []string {
	return strings.Split(s, "")
}
