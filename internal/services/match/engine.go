// Package match owns the authoritative state of in-progress matches and
// drives the turn state machine.
package match

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jdmorgan/noughts/internal/dependencies/clock"
	"github.com/jdmorgan/noughts/internal/model"
	"github.com/jdmorgan/noughts/internal/services/board"
	"github.com/jdmorgan/noughts/internal/storage"
)

// Dispatcher delivers domain events to players by id
type Dispatcher interface {
	Send(to model.PlayerID, event model.Event)
}

// Engine holds the arena of live boards, one per in-progress match, each
// behind its own lock so turns on unrelated matches never contend. A turn
// and the events it produces happen under the match lock, which gives both
// participants turn_made before game_ended and keeps events from distinct
// moves on one match from interleaving.
type Engine struct {
	storage    storage.Storage
	boards     *board.Service
	dispatcher Dispatcher
	clock      clock.Clock
	logger     *slog.Logger

	mu   sync.Mutex
	live map[model.MatchID]*liveMatch
}

type liveMatch struct {
	mu    sync.Mutex
	board *model.Board
}

// NewEngine creates a match engine
func NewEngine(
	storage storage.Storage,
	boards *board.Service,
	dispatcher Dispatcher,
	clk clock.Clock,
	logger *slog.Logger,
) *Engine {
	return &Engine{
		storage:    storage,
		boards:     boards,
		dispatcher: dispatcher,
		clock:      clk,
		logger:     logger.With(slog.String("component", "match-engine")),
		live:       make(map[model.MatchID]*liveMatch),
	}
}

// StartMatch creates the live board at the waiting -> in-progress
// transition. Called by the matchmaker once per match.
func (e *Engine) StartMatch(m *model.Match) {
	e.mu.Lock()
	e.live[m.ID] = &liveMatch{
		board: model.NewBoard(m.ID, m.Player1ID, m.Player2ID),
	}
	e.mu.Unlock()

	e.logger.Info("match started",
		slog.String("match_id", string(m.ID)),
		slog.String("player1_id", string(m.Player1ID)),
		slog.String("player2_id", string(m.Player2ID)))
}

// SubmitTurn validates and applies one move, then notifies both
// participants. Matches that are still waiting for an opponent are not
// live and report ErrMatchNotFound, like unknown ids. A rejected move
// produces no events and leaves the board untouched.
func (e *Engine) SubmitTurn(ctx context.Context, matchID model.MatchID, playerID model.PlayerID, pos model.Position) error {
	e.mu.Lock()
	lm, ok := e.live[matchID]
	e.mu.Unlock()
	if !ok {
		return model.ErrMatchNotFound
	}

	lm.mu.Lock()
	defer lm.mu.Unlock()
	b := lm.board

	mark, ok := b.MarkFor(playerID)
	if !ok {
		return model.ErrUnknownPlayer
	}

	if err := e.boards.Apply(b, pos, mark); err != nil {
		return err
	}

	turnMade := model.TurnMadeEvent(matchID, b.Grid())
	e.dispatcher.Send(b.Player1ID, turnMade)
	e.dispatcher.Send(b.Player2ID, turnMade)

	e.logger.Info("turn applied",
		slog.String("match_id", string(matchID)),
		slog.String("player_id", string(playerID)),
		slog.Int("x", pos.X),
		slog.Int("y", pos.Y))

	outcome := e.boards.Evaluate(b)
	if !outcome.Terminal() {
		return nil
	}

	b.Finished = true
	b.Winner = outcome.Winner
	winnerID := b.PlayerFor(outcome.Winner)

	gameEnded := model.GameEndedEvent(matchID, winnerID)
	e.dispatcher.Send(b.Player1ID, gameEnded)
	e.dispatcher.Send(b.Player2ID, gameEnded)

	e.logger.Info("match ended",
		slog.String("match_id", string(matchID)),
		slog.String("winner_id", string(winnerID)),
		slog.Bool("draw", outcome.Draw))

	e.recordResult(ctx, matchID, winnerID)
	return nil
}

// recordResult moves the match record to finished. Best-effort: the game
// itself already ended and events are out, a storage failure only costs
// the status snapshot.
func (e *Engine) recordResult(ctx context.Context, matchID model.MatchID, winnerID model.PlayerID) {
	m, err := e.storage.GetMatch(ctx, matchID)
	if err != nil {
		e.logger.Error("failed to load match record for result",
			slog.String("match_id", string(matchID)),
			slog.String("error", err.Error()))
		return
	}

	m.State = model.MatchStateFinished
	m.Winner = winnerID
	m.UpdatedAt = e.clock.Now()

	if err := e.storage.SaveMatch(ctx, m); err != nil {
		e.logger.Error("failed to record match result",
			slog.String("match_id", string(matchID)),
			slog.String("error", err.Error()))
	}
}
