package model

// BoardSize is the grid dimension. The game is played on a 3x3 grid.
const BoardSize = 3

// Mark is the symbol placed in a grid cell. The wire encoding matches the
// numeric cell values clients already understand: 0 empty, 1 player one,
// 2 player two.
type Mark int

const (
	MarkEmpty   Mark = 0
	MarkPlayer1 Mark = 1
	MarkPlayer2 Mark = 2
)

// Opponent returns the other player's mark
func (m Mark) Opponent() Mark {
	switch m {
	case MarkPlayer1:
		return MarkPlayer2
	case MarkPlayer2:
		return MarkPlayer1
	}
	return MarkEmpty
}

// Position identifies a cell on the board
type Position struct {
	X int // 0-indexed row
	Y int // 0-indexed column
}

// Board is the authoritative grid and player-to-mark binding for an
// in-progress match. It is owned exclusively by the match engine; callers
// never mutate it directly.
type Board struct {
	MatchID   MatchID
	Player1ID PlayerID
	Player2ID PlayerID

	// Cells is row-major: Cells[x][y]. A set cell is never reset.
	Cells [BoardSize][BoardSize]Mark

	// NextTurn is the mark expected to move next when turn order is
	// enforced. Player one always opens.
	NextTurn Mark

	// Finished records that a terminal condition was observed.
	// Winner is MarkEmpty for a draw.
	Finished bool
	Winner   Mark
}

// NewBoard creates an empty board bound to the two participants
func NewBoard(matchID MatchID, player1, player2 PlayerID) *Board {
	return &Board{
		MatchID:   matchID,
		Player1ID: player1,
		Player2ID: player2,
		NextTurn:  MarkPlayer1,
	}
}

// MarkFor resolves a player id to its mark. The second return is false
// for players that are not part of this match.
func (b *Board) MarkFor(id PlayerID) (Mark, bool) {
	switch id {
	case b.Player1ID:
		return MarkPlayer1, true
	case b.Player2ID:
		return MarkPlayer2, true
	}
	return MarkEmpty, false
}

// PlayerFor resolves a mark back to the player id holding it
func (b *Board) PlayerFor(mark Mark) PlayerID {
	switch mark {
	case MarkPlayer1:
		return b.Player1ID
	case MarkPlayer2:
		return b.Player2ID
	}
	return ""
}

// InBounds reports whether the position is on the grid
func (b *Board) InBounds(pos Position) bool {
	return pos.X >= 0 && pos.X < BoardSize && pos.Y >= 0 && pos.Y < BoardSize
}

// IsFull reports whether every cell holds a mark
func (b *Board) IsFull() bool {
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			if b.Cells[x][y] == MarkEmpty {
				return false
			}
		}
	}
	return true
}

// Grid returns the cells as plain ints for serialization
func (b *Board) Grid() [][]int {
	grid := make([][]int, BoardSize)
	for x := 0; x < BoardSize; x++ {
		grid[x] = make([]int, BoardSize)
		for y := 0; y < BoardSize; y++ {
			grid[x][y] = int(b.Cells[x][y])
		}
	}
	return grid
}
