package history

import "time"

// Match is one finished league match from the historical results dataset.
type Match struct {
	HomeTeam  string
	AwayTeam  string
	Date      time.Time
	Season    string
	HomeGoals int
	AwayGoals int
}

// HeadToHead summarises recent meetings between two clubs from the first
// club's point of view.
type HeadToHead struct {
	Summary string
	Matches []Meeting
}

// Meeting is a single past meeting, oriented to the queried club.
type Meeting struct {
	Date   time.Time
	Season string
	Result string
	Venue  string
	Score  string
}

// DefaultAliases maps the fantasy dataset's short club names onto the full
// names used by the historical results dataset.
func DefaultAliases() map[string]string {
	return map[string]string{
		"Man City":      "Manchester City",
		"Man Utd":       "Manchester United",
		"Spurs":         "Tottenham Hotspur",
		"Nott'm Forest": "Nottingham Forest",
		"Wolves":        "Wolverhampton Wanderers",
		"Newcastle":     "Newcastle United",
		"West Ham":      "West Ham United",
		"Brighton":      "Brighton & Hove Albion",
		"Leicester":     "Leicester City",
		"Leeds":         "Leeds United",
		"Sheffield Utd": "Sheffield United",
		"Luton":         "Luton Town",
		"Ipswich":       "Ipswich Town",
	}
}
