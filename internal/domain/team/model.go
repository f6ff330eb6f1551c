package team

// Team is a club entry from the fantasy bootstrap dataset.
type Team struct {
	ID        int64
	Name      string
	ShortName string
}

// UnknownName is used when a team id has no bootstrap entry.
const UnknownName = "Unknown"

// NamesByID builds a lookup from team id to full club name.
func NamesByID(teams []Team) map[int64]string {
	names := make(map[int64]string, len(teams))
	for _, t := range teams {
		names[t.ID] = t.Name
	}
	return names
}

// NameOf resolves a team id against the lookup, falling back to UnknownName.
func NameOf(names map[int64]string, id int64) string {
	if name, ok := names[id]; ok && name != "" {
		return name
	}
	return UnknownName
}
