// Package matchmaker pairs joining players into matches.
package matchmaker

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jdmorgan/noughts/internal/dependencies/clock"
	"github.com/jdmorgan/noughts/internal/dependencies/ident"
	"github.com/jdmorgan/noughts/internal/model"
	"github.com/jdmorgan/noughts/internal/services/match"
	"github.com/jdmorgan/noughts/internal/storage"
)

// Dispatcher delivers domain events to players by id
type Dispatcher interface {
	Send(to model.PlayerID, event model.Event)
}

// Service owns the pool of matches waiting for an opponent. Pairing is a
// brief read-modify-write on the pool, so one mutex guards the whole
// critical section; a pool entry is consumed exactly once no matter how
// many joins race.
type Service struct {
	storage    storage.Storage
	engine     *match.Engine
	dispatcher Dispatcher
	ident      ident.Generator
	clock      clock.Clock
	logger     *slog.Logger

	mu   sync.Mutex
	pool []model.MatchID // waiting matches, oldest first
}

// New creates a matchmaker
func New(
	storage storage.Storage,
	engine *match.Engine,
	dispatcher Dispatcher,
	idg ident.Generator,
	clk clock.Clock,
	logger *slog.Logger,
) *Service {
	return &Service{
		storage:    storage,
		engine:     engine,
		dispatcher: dispatcher,
		ident:      idg,
		clock:      clk,
		logger:     logger.With(slog.String("component", "matchmaker")),
	}
}

// JoinOrCreate completes the oldest waiting match with this player as the
// second participant, or parks a new waiting match when the pool is empty.
// The resulting snapshot is returned synchronously either way; the
// notification side effects are best-effort and addressed to player ids,
// not to the caller's connection.
func (s *Service) JoinOrCreate(ctx context.Context, player model.Player) (*model.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()

	if len(s.pool) > 0 {
		id := s.pool[0]

		m, err := s.storage.GetMatch(ctx, id)
		if err != nil {
			return nil, err
		}

		m.Player2ID = player.ID
		m.Player2Name = player.DisplayName
		m.State = model.MatchStateInProgress
		m.UpdatedAt = now

		if err := s.storage.SaveMatch(ctx, m); err != nil {
			return nil, err
		}

		// The waiting slot is consumed only after the record is safely
		// in progress
		s.pool = s.pool[1:]
		s.engine.StartMatch(m)
		s.dispatcher.Send(m.Player1ID, model.OpponentFoundEvent(m.ID))

		s.logger.Info("match paired",
			slog.String("match_id", string(m.ID)),
			slog.String("player1_id", string(m.Player1ID)),
			slog.String("player2_id", string(m.Player2ID)))

		return m, nil
	}

	m := &model.Match{
		ID:          model.MatchID(s.ident.NewID()),
		State:       model.MatchStateWaiting,
		Player1ID:   player.ID,
		Player1Name: player.DisplayName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.storage.SaveMatch(ctx, m); err != nil {
		return nil, err
	}

	s.pool = append(s.pool, m.ID)
	s.dispatcher.Send(player.ID, model.MatchCreatedEvent(m.ID))

	s.logger.Info("match created, waiting for opponent",
		slog.String("match_id", string(m.ID)),
		slog.String("player_id", string(player.ID)))

	return m, nil
}

// GetMatch returns the current snapshot of a match record
func (s *Service) GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error) {
	return s.storage.GetMatch(ctx, id)
}

// WaitingCount returns the number of matches awaiting an opponent
func (s *Service) WaitingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pool)
}
