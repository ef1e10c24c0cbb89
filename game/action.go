package game

import "fmt"

// Action is one placement: the target square and the cell written
// there, either CrossedOut or a Guess for the board's active player.
// The cell is never Empty.
type Action struct {
	Row  int
	Col  int
	Cell Cell
}

func (a Action) String() string {
	return fmt.Sprintf("%q at (%d, %d)", a.Cell, a.Row, a.Col)
}
