package model

import "time"

// MatchID uniquely identifies a match
type MatchID string

// MatchState represents the current phase of a match
type MatchState string

const (
	// MatchStateWaiting means the match has one player and is in the
	// matchmaking pool awaiting an opponent
	MatchStateWaiting MatchState = "waiting_for_opponent"
	// MatchStateInProgress means both players are bound and turns are accepted
	MatchStateInProgress MatchState = "in_progress"
	// MatchStateFinished means a terminal condition was reached.
	// Only entered under strict rules; permissive rules leave a won
	// match in progress and keep accepting turns.
	MatchStateFinished MatchState = "finished"
)

// Match is the persistent record of one game session between two players.
// A match transitions waiting_for_opponent -> in_progress exactly once and
// never reverts. Records are retained for the lifetime of the process.
type Match struct {
	ID    MatchID
	State MatchState

	Player1ID   PlayerID
	Player1Name string

	// Player2 fields are empty while the match is waiting
	Player2ID   PlayerID
	Player2Name string

	// Winner is set when the match finishes with a winning line.
	// Empty for in-progress matches and for draws.
	Winner PlayerID

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasPlayer reports whether the given player participates in this match
func (m *Match) HasPlayer(id PlayerID) bool {
	return m.Player1ID == id || m.Player2ID == id
}
