package request

// JoinMatchRequest is the request body for creating or joining a match
type JoinMatchRequest struct {
	PlayerID    string `json:"player_id"`
	DisplayName string `json:"display_name"`
}

// SubmitTurnRequest is the request body for submitting a turn
type SubmitTurnRequest struct {
	PlayerID string `json:"player_id"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
}
