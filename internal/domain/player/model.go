package player

import "strings"

// Player is a single entry from the fantasy bootstrap dataset.
type Player struct {
	ID            int64
	FirstName     string
	SecondName    string
	WebName       string
	TeamID        int64
	NowCost       int
	PointsPerGame float64
	Status        string
}

// FullName joins the registered first and second names.
func (p Player) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.SecondName)
}

// Price converts the tenth-of-a-million cost unit into millions.
func (p Player) Price() float64 {
	return float64(p.NowCost) / 10
}
