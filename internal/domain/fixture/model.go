package fixture

import "time"

// Fixture is a scheduled match from the fantasy fixtures feed. Finished
// fixtures are filtered out before they reach this package.
type Fixture struct {
	ID             int64
	Event          int
	HomeTeamID     int64
	AwayTeamID     int64
	HomeDifficulty int
	AwayDifficulty int
	KickoffAt      time.Time
}

// Upcoming is one fixture projected onto a single team's point of view.
type Upcoming struct {
	OpponentID int64
	Home       bool
	Difficulty int
	Label      string
	KickoffAt  time.Time
}
