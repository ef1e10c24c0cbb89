package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestNewBoard(t *testing.T) {
	t.Run("starts empty with player 0 to move", func(t *testing.T) {
		b := NewBoard(3, 4)

		require.Equal(t, 3, b.Rows())
		require.Equal(t, 4, b.Cols())
		require.Equal(t, 4, b.MaxGuess(), "max guess should be the larger dimension")
		require.Equal(t, Player(0), b.ActivePlayer())
		require.Equal(t, 12, b.EmptyCells())
		require.False(t, b.IsFinished())
	})

	t.Run("rejects non-positive dimensions", func(t *testing.T) {
		require.Panics(t, func() { NewBoard(0, 3) })
		require.Panics(t, func() { NewBoard(3, -1) })
	})
}

func TestCellAt(t *testing.T) {
	b := NewBoard(2, 2)

	cell, err := b.CellAt(1, 1)
	require.NoError(t, err)
	require.Equal(t, Empty, cell)

	_, err = b.CellAt(2, 0)
	require.Error(t, err, "row out of bounds should be reported")
	_, err = b.CellAt(0, -1)
	require.Error(t, err, "column out of bounds should be reported")
}

func TestScores(t *testing.T) {
	t.Run("partially filled lines score nothing", func(t *testing.T) {
		b := NewBoard(2, 2)
		b.setCell(0, 0, Guess(0, 1))

		require.Equal(t, [2]int{0, 0}, b.Scores())
	})

	t.Run("full line awards its guess count to matching guesses", func(t *testing.T) {
		// Row 0 holds one guess of 1: one point for player 0. Column 0
		// is not full, so it contributes nothing.
		b := NewBoard(2, 2)
		b.setCell(0, 0, Guess(0, 1))
		b.setCell(0, 1, CrossedOut)

		require.Equal(t, [2]int{1, 0}, b.Scores())
	})

	t.Run("mismatched guess scores nothing", func(t *testing.T) {
		b := NewBoard(2, 2)
		b.setCell(0, 0, Guess(0, 2))
		b.setCell(0, 1, CrossedOut)

		require.Equal(t, [2]int{0, 0}, b.Scores())
	})

	t.Run("a cell can score in both its row and its column", func(t *testing.T) {
		b := NewBoard(1, 1)
		b.setCell(0, 0, Guess(0, 1))

		require.Equal(t, [2]int{2, 0}, b.Scores(), "row and column score independently")
	})

	t.Run("rows and columns accumulate per player", func(t *testing.T) {
		// 0 1 | X
		// X   | 1 1
		b := NewBoard(2, 2)
		b.setCell(0, 0, Guess(0, 1))
		b.setCell(0, 1, CrossedOut)
		b.setCell(1, 0, CrossedOut)
		b.setCell(1, 1, Guess(1, 1))

		require.Equal(t, [2]int{2, 2}, b.Scores())
	})

	t.Run("scoring a finished board is idempotent", func(t *testing.T) {
		b := playRandomGame(t, 3, 3, 7)

		first := b.Scores()
		for i := 0; i < 5; i++ {
			require.Equal(t, first, b.Scores())
		}
	})
}

func TestIsLegalMove(t *testing.T) {
	board := func() *Board {
		b := NewBoard(2, 3)
		b.setCell(0, 0, Guess(0, 1))
		b.setCell(1, 2, CrossedOut)
		return b
	}

	cases := []struct {
		name   string
		row    int
		col    int
		cell   Cell
		reason string
	}{
		{"row out of bounds", 2, 0, CrossedOut, ReasonRowOutOfBounds},
		{"negative row", -1, 0, CrossedOut, ReasonRowOutOfBounds},
		{"column out of bounds", 0, 3, CrossedOut, ReasonColOutOfBounds},
		{"occupied by a guess", 0, 0, CrossedOut, ReasonOccupied},
		{"occupied by a cross-out", 1, 2, CrossedOut, ReasonOccupied},
		{"erasing", 0, 1, Empty, ReasonErase},
		{"opponent's guess", 0, 1, Guess(1, 2), ReasonWrongPlayer},
		{"guess of zero", 0, 1, Guess(0, 0), ReasonZeroGuess},
		{"guess above both dimensions", 0, 1, Guess(0, 4), ReasonGuessTooLarge},
		{"duplicate number in the row", 0, 1, Guess(0, 1), ReasonDuplicateGuess},
		{"duplicate number in the column", 1, 0, Guess(0, 1), ReasonDuplicateGuess},
		{"legal cross-out", 0, 1, CrossedOut, ""},
		{"legal guess", 0, 1, Guess(0, 2), ""},
		{"legal guess not sharing a line with the duplicate", 1, 1, Guess(0, 1), ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := board()
			err := b.IsLegalMove(tc.row, tc.col, tc.cell)
			if tc.reason == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			var illegal *IllegalMoveError
			require.ErrorAs(t, err, &illegal)
			require.Equal(t, tc.reason, illegal.Reason)
			require.Equal(t, tc.row, illegal.Row)
			require.Equal(t, tc.col, illegal.Col)
			require.Equal(t, tc.cell, illegal.Cell)
			require.True(t, illegal.Board.Equal(b), "error should carry a snapshot of the board")
		})
	}
}

func TestPlace(t *testing.T) {
	t.Run("cross-out flips the active player", func(t *testing.T) {
		b := NewBoard(2, 2)

		require.NoError(t, b.Place(0, 0, CrossedOut))
		require.Equal(t, Player(1), b.ActivePlayer())
		require.Equal(t, CrossedOut, b.cellAt(0, 0))
	})

	t.Run("guess flips the active player", func(t *testing.T) {
		b := NewBoard(2, 2)

		require.NoError(t, b.Place(0, 0, Guess(0, 1)))
		require.Equal(t, Player(1), b.ActivePlayer())
		require.Equal(t, Guess(0, 1), b.cellAt(0, 0))
	})

	t.Run("rejection leaves the board unchanged", func(t *testing.T) {
		b := NewBoard(2, 2)
		require.NoError(t, b.Place(0, 0, Guess(0, 1)))
		before := b.Clone()

		err := b.Place(0, 1, Guess(1, 1))
		require.Error(t, err, "duplicate in the row should be rejected")
		require.True(t, b.Equal(before), "failed placement must not mutate state")
	})

	t.Run("cascade crosses out dead cells in the shared row and column", func(t *testing.T) {
		// With 2 already guessed in row 0 and 1 about to land in
		// column 0, neither remaining cell has a legal guess left.
		b := NewBoard(2, 2)
		b.setCell(0, 1, Guess(0, 2))
		b.active = 1

		require.NoError(t, b.Place(1, 0, Guess(1, 1)))
		require.Equal(t, CrossedOut, b.cellAt(0, 0), "cell with no legal guess should be eliminated")
		require.Equal(t, CrossedOut, b.cellAt(1, 1), "cell with no legal guess should be eliminated")
		require.True(t, b.IsFinished())
	})

	t.Run("cascade spares cells that still have a legal guess", func(t *testing.T) {
		b := NewBoard(2, 2)

		require.NoError(t, b.Place(0, 0, Guess(0, 1)))
		// Player 1 could still guess 2 at (0,1) and (1,0).
		require.Equal(t, Empty, b.cellAt(0, 1))
		require.Equal(t, Empty, b.cellAt(1, 0))
	})

	t.Run("duplicate rule blocks the shared row and column only", func(t *testing.T) {
		b := NewBoard(2, 2)
		require.NoError(t, b.Place(0, 0, Guess(0, 1)))

		require.Error(t, b.IsLegalMove(0, 1, Guess(1, 1)))
		require.Error(t, b.IsLegalMove(1, 0, Guess(1, 1)))
		require.NoError(t, b.IsLegalMove(1, 1, Guess(1, 1)), "the free diagonal cell should accept the same number")
	})
}

func TestUniquenessInvariant(t *testing.T) {
	// After any sequence of legal placements, no two guesses sharing a
	// row or column hold equal numbers.
	for seed := uint64(1); seed <= 20; seed++ {
		b := playRandomGame(t, 4, 4, seed)

		for r := 0; r < b.Rows(); r++ {
			for c := 0; c < b.Cols(); c++ {
				cell := b.cellAt(r, c)
				if !cell.IsGuess() {
					continue
				}
				for r2 := 0; r2 < b.Rows(); r2++ {
					for c2 := 0; c2 < b.Cols(); c2++ {
						if r2 == r && c2 == c {
							continue
						}
						if r2 != r && c2 != c {
							continue
						}
						other := b.cellAt(r2, c2)
						if other.IsGuess() {
							require.NotEqual(t, cell.Number(), other.Number(),
								"(%d,%d) and (%d,%d) share a line and a number", r, c, r2, c2)
						}
					}
				}
			}
		}
	}
}

func TestTransposeScores(t *testing.T) {
	// Swapping rows and columns swaps the row/column roles in scoring,
	// leaving each player's total unchanged.
	for seed := uint64(1); seed <= 10; seed++ {
		b := playRandomGame(t, 3, 5, seed)

		transposed := NewBoard(b.Cols(), b.Rows())
		for r := 0; r < b.Rows(); r++ {
			for c := 0; c < b.Cols(); c++ {
				transposed.setCell(c, r, b.cellAt(r, c))
			}
		}

		require.Equal(t, b.Scores(), transposed.Scores())
	}
}

func TestKey(t *testing.T) {
	t.Run("identical configurations share a key", func(t *testing.T) {
		// Two different move orders reaching the same cells and the
		// same player to move are the same search node.
		a := NewBoard(2, 2)
		require.NoError(t, a.Place(0, 0, CrossedOut))
		require.NoError(t, a.Place(1, 1, CrossedOut))

		b := NewBoard(2, 2)
		require.NoError(t, b.Place(1, 1, CrossedOut))
		require.NoError(t, b.Place(0, 0, CrossedOut))

		require.Equal(t, a.Key(), b.Key())
		require.True(t, a.Equal(b))
	})

	t.Run("active player distinguishes keys", func(t *testing.T) {
		a := NewBoard(2, 2)
		b := NewBoard(2, 2)
		b.active = 1

		require.NotEqual(t, a.Key(), b.Key())
		require.False(t, a.Equal(b))
	})

	t.Run("guess owner distinguishes keys", func(t *testing.T) {
		a := NewBoard(2, 2)
		a.setCell(0, 0, Guess(0, 1))
		b := NewBoard(2, 2)
		b.setCell(0, 0, Guess(1, 1))

		require.NotEqual(t, a.Key(), b.Key())
	})
}

// playRandomGame plays uniformly random legal actions to completion.
func playRandomGame(t *testing.T, rows, cols int, seed uint64) *Board {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	b := NewBoard(rows, cols)
	for {
		actions := b.LegalActions()
		if len(actions) == 0 {
			break
		}
		a := actions[rng.Intn(len(actions))]
		require.NoError(t, b.Place(a.Row, a.Col, a.Cell), "enumerated action must apply")
	}
	require.True(t, b.IsFinished())
	return b
}
