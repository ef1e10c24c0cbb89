package game

import (
	"fmt"
	"strings"
)

// Key is an exact, comparable encoding of a board configuration. Two
// boards reached by different move orders share a Key iff every cell
// and the active player match, which is precisely the identity the
// search tree needs for its node map.
type Key string

// Board is one grid configuration plus whose turn it is. Cells are
// stored row-major; dimensions never change after construction. All
// mutation goes through Place.
type Board struct {
	rows   int
	cols   int
	cells  []Cell
	active Player
}

// NewBoard returns an empty rows x cols board with player 0 to move.
func NewBoard(rows, cols int) *Board {
	if rows <= 0 || cols <= 0 {
		panic("board dimensions must be positive")
	}
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
}

// Clone returns a deep copy.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		rows:   b.rows,
		cols:   b.cols,
		cells:  cells,
		active: b.active,
	}
}

func (b *Board) Rows() int {
	return b.rows
}

func (b *Board) Cols() int {
	return b.cols
}

func (b *Board) ActivePlayer() Player {
	return b.active
}

// MaxGuess is the largest number a player may guess.
func (b *Board) MaxGuess() int {
	return max(b.rows, b.cols)
}

func (b *Board) cellAt(row, col int) Cell {
	return b.cells[row*b.cols+col]
}

func (b *Board) setCell(row, col int, cell Cell) {
	b.cells[row*b.cols+col] = cell
}

// CellAt returns the content of a square, or an error for coordinates
// outside the grid.
func (b *Board) CellAt(row, col int) (Cell, error) {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return Cell{}, fmt.Errorf("cannot access (%d, %d) on a %dx%d board", row, col, b.rows, b.cols)
	}
	return b.cellAt(row, col), nil
}

// IsFinished reports whether every square is non-empty.
func (b *Board) IsFinished() bool {
	for _, c := range b.cells {
		if c.IsEmpty() {
			return false
		}
	}
	return true
}

// EmptyCells counts the squares still in play.
func (b *Board) EmptyCells() int {
	n := 0
	for _, c := range b.cells {
		if c.IsEmpty() {
			n++
		}
	}
	return n
}

// Equal reports exact-state equality: same dimensions, same cells, same
// active player.
func (b *Board) Equal(other *Board) bool {
	if b.rows != other.rows || b.cols != other.cols || b.active != other.active {
		return false
	}
	for i, c := range b.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}

// Key encodes the full configuration into a comparable map key.
func (b *Board) Key() Key {
	var sb strings.Builder
	sb.Grow(2*len(b.cells) + 1)
	sb.WriteByte(byte(b.active))
	for _, c := range b.cells {
		switch c.kind {
		case kindEmpty:
			sb.WriteByte('.')
		case kindCrossedOut:
			sb.WriteByte('x')
		default:
			sb.WriteByte('0' + byte(c.player))
			sb.WriteByte(byte(c.num))
		}
	}
	return Key(sb.String())
}

// Scores tallies both players' points. Every fully-filled line (each
// row and each column independently) is worth its guess-cell count n to
// the owner of every guess in it that equals n; a cell can score in
// both its row and its column. Lines with any empty square score
// nothing.
func (b *Board) Scores() [2]int {
	var scores [2]int
	for row := 0; row < b.rows; row++ {
		scoreLine(&scores, b.cols, func(col int) Cell { return b.cellAt(row, col) })
	}
	for col := 0; col < b.cols; col++ {
		scoreLine(&scores, b.rows, func(row int) Cell { return b.cellAt(row, col) })
	}
	return scores
}

func scoreLine(scores *[2]int, length int, cell func(i int) Cell) {
	full := true
	guesses := 0
	for i := 0; i < length; i++ {
		switch c := cell(i); {
		case c.IsEmpty():
			full = false
		case c.IsGuess():
			guesses++
		}
	}
	if !full {
		return
	}
	for i := 0; i < length; i++ {
		if c := cell(i); c.IsGuess() && c.Number() == guesses {
			scores[c.Player()] += guesses
		}
	}
}

// moveReason is the legality predicate shared by IsLegalMove, the
// action enumerator and cascade elimination. It returns one of the
// Reason constants, or "" for a legal move.
func (b *Board) moveReason(row, col int, cell Cell) string {
	if row < 0 || row >= b.rows {
		return ReasonRowOutOfBounds
	}
	if col < 0 || col >= b.cols {
		return ReasonColOutOfBounds
	}
	if !b.cellAt(row, col).IsEmpty() {
		return ReasonOccupied
	}
	switch {
	case cell.IsEmpty():
		return ReasonErase
	case cell.IsCrossedOut():
		return ""
	}
	if cell.Player() != b.active {
		return ReasonWrongPlayer
	}
	if cell.Number() == 0 {
		return ReasonZeroGuess
	}
	if cell.Number() > b.MaxGuess() {
		return ReasonGuessTooLarge
	}
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if r != row && c != col {
				continue
			}
			if other := b.cellAt(r, c); other.IsGuess() && other.Number() == cell.Number() {
				return ReasonDuplicateGuess
			}
		}
	}
	return ""
}

// IsLegalMove checks whether cell may be placed at (row, col) for the
// current position. A failure wraps a snapshot of the board.
func (b *Board) IsLegalMove(row, col int, cell Cell) error {
	if reason := b.moveReason(row, col, cell); reason != "" {
		return &IllegalMoveError{
			Board:  b.Clone(),
			Row:    row,
			Col:    col,
			Cell:   cell,
			Reason: reason,
		}
	}
	return nil
}

// Place validates and applies a move, flipping the active player. Guess
// placements then cascade: every empty square sharing the moved-to row
// or column with no legal guess left for the new active player is
// crossed out automatically. The cascade runs against the
// already-mutated board since legality depends on every guess present.
// On failure the board is untouched.
func (b *Board) Place(row, col int, cell Cell) error {
	if err := b.IsLegalMove(row, col, cell); err != nil {
		return err
	}
	if cell.IsEmpty() {
		panic("cannot place an empty cell")
	}

	b.setCell(row, col, cell)
	b.active = b.active.Opponent()

	if !cell.IsGuess() {
		return nil
	}
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if r != row && c != col {
				continue
			}
			if !b.cellAt(r, c).IsEmpty() {
				continue
			}
			if b.hasLegalGuess(r, c) {
				continue
			}
			b.setCell(r, c, CrossedOut)
		}
	}
	return nil
}

// hasLegalGuess reports whether the active player could still place any
// guess number at (row, col).
func (b *Board) hasLegalGuess(row, col int) bool {
	for num := 1; num <= b.MaxGuess(); num++ {
		if b.moveReason(row, col, Guess(b.active, num)) == "" {
			return true
		}
	}
	return false
}

func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.rows; row++ {
		sb.WriteString("|")
		for col := 0; col < b.cols; col++ {
			sb.WriteString(b.cellAt(row, col).String())
			sb.WriteString("|")
		}
		sb.WriteString("\n")
	}
	scores := b.Scores()
	fmt.Fprintf(&sb, "Scores: %d, %d\n", scores[0], scores[1])
	switch {
	case !b.IsFinished():
		fmt.Fprintf(&sb, "Player %d to move.", b.active)
	case scores[0] < scores[1]:
		sb.WriteString("Player 1 wins.")
	case scores[1] < scores[0]:
		sb.WriteString("Player 0 wins.")
	default:
		sb.WriteString("Draw!")
	}
	return sb.String()
}
