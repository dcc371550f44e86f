package response

import (
	"time"

	"github.com/jdmorgan/noughts/internal/model"
)

// Match represents a match snapshot in API responses
type Match struct {
	MatchID     string    `json:"match_id"`
	Status      string    `json:"status"`
	Player1ID   string    `json:"player1_id"`
	Player1Name string    `json:"player1_name"`
	Player2ID   string    `json:"player2_id,omitempty"`
	Player2Name string    `json:"player2_name,omitempty"`
	Winner      *string   `json:"winner,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MatchFromModel converts a model.Match to a response Match
func MatchFromModel(m *model.Match) Match {
	var winner *string
	if m.Winner != "" {
		w := string(m.Winner)
		winner = &w
	}
	return Match{
		MatchID:     string(m.ID),
		Status:      string(m.State),
		Player1ID:   string(m.Player1ID),
		Player1Name: m.Player1Name,
		Player2ID:   string(m.Player2ID),
		Player2Name: m.Player2Name,
		Winner:      winner,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
