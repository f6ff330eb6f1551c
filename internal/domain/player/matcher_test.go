package player

import "testing"

func testPlayers() []Player {
	return []Player{
		{ID: 1, FirstName: "Mohamed", SecondName: "Salah", WebName: "M.Salah", TeamID: 12, NowCost: 131, PointsPerGame: 8.2, Status: "a"},
		{ID: 2, FirstName: "Erling", SecondName: "Haaland", WebName: "Haaland", TeamID: 13, NowCost: 151, PointsPerGame: 7.9, Status: "a"},
		{ID: 3, FirstName: "N'Golo", SecondName: "Kanté", WebName: "Kanté", TeamID: 1, NowCost: 84, PointsPerGame: 5.4, Status: "a"},
		{ID: 4, FirstName: "Bukayo", SecondName: "Saka", WebName: "Saka", TeamID: 1, NowCost: 102, PointsPerGame: 6.1, Status: "i"},
	}
}

func TestIndex_MatchByWebName(t *testing.T) {
	t.Parallel()

	ix := NewIndex(testPlayers())
	p, ok, _ := ix.Match("haaland")
	if !ok {
		t.Fatal("expected match by display name")
	}
	if p.ID != 2 {
		t.Fatalf("expected Haaland, got id %d", p.ID)
	}
}

func TestIndex_MatchByFullName(t *testing.T) {
	t.Parallel()

	ix := NewIndex(testPlayers())
	p, ok, _ := ix.Match("  Mohamed SALAH ")
	if !ok {
		t.Fatal("expected match by full name")
	}
	if p.ID != 1 {
		t.Fatalf("expected Salah, got id %d", p.ID)
	}
}

func TestIndex_MatchAccentInsensitive(t *testing.T) {
	t.Parallel()

	ix := NewIndex(testPlayers())
	p, ok, _ := ix.Match("Kante")
	if !ok {
		t.Fatal("expected accent-folded surname match")
	}
	if p.ID != 3 {
		t.Fatalf("expected Kanté, got id %d", p.ID)
	}
}

func TestIndex_ExactBeatsFuzzy(t *testing.T) {
	t.Parallel()

	players := []Player{
		{ID: 10, SecondName: "Son", WebName: "Son", TeamID: 6},
		{ID: 11, SecondName: "Sono", WebName: "Sono", TeamID: 7},
	}

	ix := NewIndex(players)
	p, ok, suggestion := ix.Match("Son")
	if !ok {
		t.Fatal("expected exact match")
	}
	if p.ID != 10 {
		t.Fatalf("exact variant must win, got id %d", p.ID)
	}
	if suggestion != "" {
		t.Fatalf("exact match must not carry a suggestion, got %q", suggestion)
	}
}

func TestIndex_SuggestionForNearMiss(t *testing.T) {
	t.Parallel()

	ix := NewIndex(testPlayers())
	_, ok, suggestion := ix.Match("Halland")
	if ok {
		t.Fatal("misspelled name must not match")
	}
	if suggestion != "haaland" {
		t.Fatalf("expected suggestion haaland, got %q", suggestion)
	}
}

func TestIndex_NoSuggestionWhenNothingClose(t *testing.T) {
	t.Parallel()

	ix := NewIndex(testPlayers())
	_, ok, suggestion := ix.Match("Zzyzx Quorblat")
	if ok {
		t.Fatal("unrelated name must not match")
	}
	if suggestion != "" {
		t.Fatalf("expected no suggestion, got %q", suggestion)
	}
}

func TestIndex_DuplicateVariantLastWins(t *testing.T) {
	t.Parallel()

	players := []Player{
		{ID: 20, FirstName: "Gabriel", SecondName: "Magalhães", WebName: "Gabriel", TeamID: 1},
		{ID: 21, FirstName: "Gabriel", SecondName: "Jesus", WebName: "G.Jesus", TeamID: 1},
	}

	// Both share the surname-variant space via "gabriel" only for the
	// first player, but "gabriel jesus" and "jesus" stay distinct.
	ix := NewIndex(players)

	p, ok, _ := ix.Match("jesus")
	if !ok || p.ID != 21 {
		t.Fatalf("expected surname match for second player, got ok=%v id=%d", ok, p.ID)
	}

	shared := []Player{
		{ID: 30, SecondName: "Ward", WebName: "Ward", TeamID: 2},
		{ID: 31, SecondName: "Ward", WebName: "Ward", TeamID: 3},
	}
	ix = NewIndex(shared)
	p, ok, _ = ix.Match("Ward")
	if !ok || p.ID != 31 {
		t.Fatalf("expected later player to win shared variant, got ok=%v id=%d", ok, p.ID)
	}
}

func TestPlayer_Price(t *testing.T) {
	t.Parallel()

	p := Player{NowCost: 131}
	if got := p.Price(); got != 13.1 {
		t.Fatalf("expected 13.1, got %v", got)
	}
}
