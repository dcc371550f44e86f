package storage

import (
	"context"

	"github.com/jdmorgan/noughts/internal/model"
)

// Storage defines the interface for match-record persistence.
//
// Only the match record (id, state, participants, winner) goes through
// storage; live board state and the matchmaking pool are process-local by
// design and owned by the matchmaker and match engine.
//
// Implementations store and return copies: a record obtained from GetMatch
// is the caller's to mutate and only becomes visible through SaveMatch.
type Storage interface {
	SaveMatch(ctx context.Context, match *model.Match) error
	GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error)
}
