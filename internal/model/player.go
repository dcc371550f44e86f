package model

// PlayerID uniquely identifies a player across the system.
// It is supplied by the client and is not verified server-side;
// whoever presents an id speaks for that player.
type PlayerID string

// Player represents a game participant
type Player struct {
	ID          PlayerID
	DisplayName string
}
