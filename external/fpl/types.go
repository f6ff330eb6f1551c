package fpl

// bootstrapResponse is the subset of bootstrap-static this service reads.
type bootstrapResponse struct {
	Elements []bootstrapElement `json:"elements"`
	Teams    []bootstrapTeam    `json:"teams"`
}

type bootstrapElement struct {
	ID            int64  `json:"id"`
	FirstName     string `json:"first_name"`
	SecondName    string `json:"second_name"`
	WebName       string `json:"web_name"`
	Team          int64  `json:"team"`
	NowCost       int    `json:"now_cost"`
	PointsPerGame string `json:"points_per_game"`
	Status        string `json:"status"`
}

type bootstrapTeam struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
}

// fixtureEntry mirrors one item from the fixtures feed. Kickoff and event
// are null for unscheduled fixtures.
type fixtureEntry struct {
	ID              int64   `json:"id"`
	Event           *int    `json:"event"`
	Finished        bool    `json:"finished"`
	KickoffTime     *string `json:"kickoff_time"`
	TeamH           int64   `json:"team_h"`
	TeamA           int64   `json:"team_a"`
	TeamHDifficulty int     `json:"team_h_difficulty"`
	TeamADifficulty int     `json:"team_a_difficulty"`
}
