package model

// EventType is the discriminator for the websocket wire protocol.
// The set is closed: unknown tags on incoming frames are ignored, and the
// server only ever emits the types below.
type EventType string

const (
	// EventRegister is the only client-to-server type: it binds the
	// connection to a player id
	EventRegister EventType = "register"

	// Server-to-client types
	EventRegisterAck   EventType = "register_ack"
	EventMatchCreated  EventType = "match_created"
	EventOpponentFound EventType = "opponent_found"
	EventTurnMade      EventType = "turn_made"
	EventGameEnded     EventType = "game_ended"
)

// Event is the server-to-client wire envelope. Which fields are populated
// depends on Type; unrelated fields are omitted from the JSON.
type Event struct {
	Type     EventType `json:"type"`
	MatchID  MatchID   `json:"match_id,omitempty"`
	Board    [][]int   `json:"board,omitempty"`
	WinnerID PlayerID  `json:"winner_id,omitempty"`
	Draw     bool      `json:"draw,omitempty"`
}

// ClientMessage is the client-to-server wire envelope
type ClientMessage struct {
	Type EventType `json:"type"`
	ID   PlayerID  `json:"id,omitempty"`
}

// RegisterAckEvent confirms a registration
func RegisterAckEvent() Event {
	return Event{Type: EventRegisterAck}
}

// MatchCreatedEvent tells the requester a new match is waiting for an opponent
func MatchCreatedEvent(matchID MatchID) Event {
	return Event{Type: EventMatchCreated, MatchID: matchID}
}

// OpponentFoundEvent tells the waiting player a second player joined
func OpponentFoundEvent(matchID MatchID) Event {
	return Event{Type: EventOpponentFound, MatchID: matchID}
}

// TurnMadeEvent carries the full board after an applied move
func TurnMadeEvent(matchID MatchID, board [][]int) Event {
	return Event{Type: EventTurnMade, MatchID: matchID, Board: board}
}

// GameEndedEvent names the winning player, or marks a draw when no
// winner exists
func GameEndedEvent(matchID MatchID, winnerID PlayerID) Event {
	return Event{Type: EventGameEnded, MatchID: matchID, WinnerID: winnerID, Draw: winnerID == ""}
}
