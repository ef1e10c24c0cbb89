package searcher

import "numcross/game"

// Tree maps exact board configurations to their accumulated search
// statistics. It is exclusively owned by one Bot; entries persist
// across real-game turns until Update prunes them.
type Tree map[game.Key]*ActionScores

// Visit is the accumulated statistics for one action at one node.
type Visit struct {
	Count   uint64
	Rewards float64
}

// ActionScores holds the per-action statistics of one visited board.
// The action list is frozen when the node is first encountered and
// never changes afterwards, even as visits accumulate.
type ActionScores struct {
	visits     map[game.Action]Visit
	available  []game.Action
	emptyCells int
}

// NewActionScores snapshots the legal actions of board and starts an
// empty tally for them.
func NewActionScores(board *game.Board) *ActionScores {
	return &ActionScores{
		visits:     make(map[game.Action]Visit),
		available:  board.LegalActions(),
		emptyCells: board.EmptyCells(),
	}
}

// Available returns the frozen action list. Callers must not modify it.
func (s *ActionScores) Available() []game.Action {
	return s.available
}

// MarkVisit records one traversal of action with the given reward.
func (s *ActionScores) MarkVisit(action game.Action, reward float64) {
	v := s.visits[action]
	v.Count++
	v.Rewards += reward
	s.visits[action] = v
}

// GetVisit returns action's tally, zero if it was never visited.
func (s *ActionScores) GetVisit(action game.Action) Visit {
	return s.visits[action]
}
