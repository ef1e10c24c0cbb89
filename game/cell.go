package game

import "fmt"

// Player identifies one of the two players, 0 or 1.
type Player int

// Opponent returns the other player.
func (p Player) Opponent() Player {
	return 1 - p
}

type cellKind uint8

const (
	kindEmpty cellKind = iota
	kindCrossedOut
	kindGuess
)

// Cell is the content of one board square: empty, crossed out, or a
// numbered guess owned by a player. Cells are immutable values and two
// cells are equal iff their content is; the zero value is an empty
// cell.
type Cell struct {
	kind   cellKind
	player Player
	num    int
}

var (
	// Empty is an untouched square.
	Empty = Cell{}
	// CrossedOut is a square permanently voided by a cross-out move or
	// by cascade elimination.
	CrossedOut = Cell{kind: kindCrossedOut}
)

// Guess returns a cell holding player's claim of number num.
func Guess(player Player, num int) Cell {
	return Cell{kind: kindGuess, player: player, num: num}
}

func (c Cell) IsEmpty() bool {
	return c.kind == kindEmpty
}

func (c Cell) IsCrossedOut() bool {
	return c.kind == kindCrossedOut
}

func (c Cell) IsGuess() bool {
	return c.kind == kindGuess
}

// Player returns the owner of a guess cell, 0 otherwise.
func (c Cell) Player() Player {
	if c.kind != kindGuess {
		return 0
	}
	return c.player
}

// Number returns the guessed number, or 0 for empty and crossed-out
// cells.
func (c Cell) Number() int {
	if c.kind != kindGuess {
		return 0
	}
	return c.num
}

func (c Cell) String() string {
	switch c.kind {
	case kindEmpty:
		return "   "
	case kindCrossedOut:
		return " X "
	default:
		return fmt.Sprintf("%d %d", c.player, c.num)
	}
}
