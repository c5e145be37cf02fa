package model

// PlayerID uniquely identifies a player across the system.
// IDs are issued by the FACEIT data API and treated as opaque strings.
type PlayerID string

// Profile is a player's directory entry as resolved from the FACEIT data API
type Profile struct {
	ID       PlayerID
	Nickname string
	Avatar   string
	Country  string
}

// PlayerRow is a roster entry joined with the player's current anchor count
type PlayerRow struct {
	Profile
	AnchorCount int
}
