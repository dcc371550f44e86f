// Package board implements the pure game logic: applying a move to a 3x3
// grid and evaluating terminal conditions. It holds no shared state and is
// safe for concurrent use; the match engine provides exclusion around the
// boards it passes in.
package board

import "github.com/jdmorgan/noughts/internal/model"

// Rules selects how much validation Apply performs. Coordinate bounds are
// always checked; everything else is optional so the legacy permissive
// behavior (overwrite cells, move out of turn, play past a win) remains
// available alongside the strict mode.
type Rules struct {
	// RejectOccupied fails a move onto a non-empty cell with ErrCellOccupied
	RejectOccupied bool
	// EnforceTurnOrder requires marks to alternate, player one first,
	// failing with ErrNotYourTurn
	EnforceTurnOrder bool
	// RejectFinished fails moves on a finished board with ErrMatchFinished
	RejectFinished bool
	// DetectDraw reports a draw outcome once all nine cells are filled
	// with no winning line
	DetectDraw bool
}

// StrictRules enables every check
func StrictRules() Rules {
	return Rules{
		RejectOccupied:   true,
		EnforceTurnOrder: true,
		RejectFinished:   true,
		DetectDraw:       true,
	}
}

// PermissiveRules reproduces the legacy behavior: any participant may set
// any in-bounds cell at any time, and a drawn board is indistinguishable
// from an ongoing game
func PermissiveRules() Rules {
	return Rules{}
}

// Outcome is the result of evaluating a board for terminal conditions
type Outcome struct {
	Winner model.Mark // MarkEmpty when no line is won
	Draw   bool
}

// Terminal reports whether the game is over
func (o Outcome) Terminal() bool {
	return o.Winner != model.MarkEmpty || o.Draw
}

// Service applies moves and evaluates winners under a fixed rule set
type Service struct {
	rules Rules
}

// New creates a board service with the given rules
func New(rules Rules) *Service {
	return &Service{rules: rules}
}

// Rules returns the active rule set
func (s *Service) Rules() Rules {
	return s.rules
}

// Apply validates and places a mark. The board is only mutated when every
// enabled check passes. Out-of-range coordinates are rejected under every
// rule set.
func (s *Service) Apply(b *model.Board, pos model.Position, mark model.Mark) error {
	if !b.InBounds(pos) {
		return model.ErrInvalidMove
	}
	if s.rules.RejectFinished && b.Finished {
		return model.ErrMatchFinished
	}
	if s.rules.EnforceTurnOrder && mark != b.NextTurn {
		return model.ErrNotYourTurn
	}
	if s.rules.RejectOccupied && b.Cells[pos.X][pos.Y] != model.MarkEmpty {
		return model.ErrCellOccupied
	}

	b.Cells[pos.X][pos.Y] = mark
	b.NextTurn = mark.Opponent()
	return nil
}

// Evaluate scans for a winning line in a fixed order: the three rows, the
// three columns, the main diagonal, then the anti-diagonal. The first
// uniform non-empty line found wins. An all-empty line never wins. When
// draw detection is enabled, a full board with no winning line is a draw.
func (s *Service) Evaluate(b *model.Board) Outcome {
	for x := 0; x < model.BoardSize; x++ {
		if mark := lineWinner(b.Cells[x][0], b.Cells[x][1], b.Cells[x][2]); mark != model.MarkEmpty {
			return Outcome{Winner: mark}
		}
	}
	for y := 0; y < model.BoardSize; y++ {
		if mark := lineWinner(b.Cells[0][y], b.Cells[1][y], b.Cells[2][y]); mark != model.MarkEmpty {
			return Outcome{Winner: mark}
		}
	}
	if mark := lineWinner(b.Cells[0][0], b.Cells[1][1], b.Cells[2][2]); mark != model.MarkEmpty {
		return Outcome{Winner: mark}
	}
	if mark := lineWinner(b.Cells[2][0], b.Cells[1][1], b.Cells[0][2]); mark != model.MarkEmpty {
		return Outcome{Winner: mark}
	}

	if s.rules.DetectDraw && b.IsFull() {
		return Outcome{Draw: true}
	}
	return Outcome{}
}

func lineWinner(a, b, c model.Mark) model.Mark {
	if a != model.MarkEmpty && a == b && b == c {
		return a
	}
	return model.MarkEmpty
}
