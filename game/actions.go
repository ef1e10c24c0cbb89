package game

// LegalActions materializes every legal action for the active player,
// in row-major square order: per empty square a cross-out first, then
// guesses in ascending number order. The filter is the same predicate
// Place validates with, so every returned action is guaranteed to
// apply.
func (b *Board) LegalActions() []Action {
	var actions []Action
	maxGuess := b.MaxGuess()
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			if !b.cellAt(row, col).IsEmpty() {
				continue
			}
			if b.moveReason(row, col, CrossedOut) == "" {
				actions = append(actions, Action{Row: row, Col: col, Cell: CrossedOut})
			}
			for num := 1; num <= maxGuess; num++ {
				guess := Guess(b.active, num)
				if b.moveReason(row, col, guess) == "" {
					actions = append(actions, Action{Row: row, Col: col, Cell: guess})
				}
			}
		}
	}
	return actions
}
