package footballdata

// seasonEnvelope is one season file of the open football.json dataset.
type seasonEnvelope struct {
	Name    string       `json:"name"`
	Matches []seasonItem `json:"matches"`
}

type seasonItem struct {
	Round string    `json:"round"`
	Date  string    `json:"date"`
	Team1 string    `json:"team1"`
	Team2 string    `json:"team2"`
	Score scoreItem `json:"score"`
}

// scoreItem carries the full-time score as a two-element array. Matches
// without a score have not been played yet.
type scoreItem struct {
	FT []int `json:"ft"`
}
