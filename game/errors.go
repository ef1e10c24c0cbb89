package game

import "fmt"

// The fixed set of reasons a move can be rejected for.
const (
	ReasonRowOutOfBounds = "row is out of bounds"
	ReasonColOutOfBounds = "column is out of bounds"
	ReasonOccupied       = "cannot place on a non-empty square"
	ReasonErase          = "cannot erase a square"
	ReasonWrongPlayer    = "cannot place a guess for your opponent"
	ReasonZeroGuess      = "cannot guess 0"
	ReasonGuessTooLarge  = "guess cannot be larger than both the grid's width and height"
	ReasonDuplicateGuess = "only one of each guess value per row/column"
)

// IllegalMoveError reports a rejected placement. It carries a snapshot
// of the board the move was attempted on for diagnostics; the board the
// move was attempted on is left unchanged. This is the only recoverable
// error the rules engine produces - the searcher only ever applies
// actions it already enumerated as legal, so it never sees one.
type IllegalMoveError struct {
	Board  *Board
	Row    int
	Col    int
	Cell   Cell
	Reason string
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("cannot place %q at (%d, %d): %s", e.Cell, e.Row, e.Col, e.Reason)
}
