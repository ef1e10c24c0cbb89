package searcher

import (
	"fmt"

	"numcross/game"
)

// step is one traversed edge of a playout: the board the action was
// taken from and the action itself.
type step struct {
	board  *game.Board
	action game.Action
}

// Playout runs one selection, expansion, rollout and backpropagation
// cycle from root against tree. It is a no-op on a finished root and
// always leaves the tree in a consistent, reusable state.
func Playout(root *game.Board, tree Tree, rng Rand) {
	if root.IsFinished() {
		return
	}

	// Selection: descend through known nodes by the selection policy
	// until an untracked or terminal node is reached.
	var path []step
	node := root.Clone()
	for {
		tally, ok := tree[node.Key()]
		if !ok || len(tally.Available()) == 0 {
			break
		}
		action := chooseChild(tally, tally.Available(), rng)
		path = append(path, step{board: node.Clone(), action: action})
		apply(node, action)
	}

	// Expansion: track the reached node if it is new.
	if key := node.Key(); tree[key] == nil {
		tree[key] = NewActionScores(node)
	}

	// Rollout: uniformly random moves to the end of the game.
	for {
		actions := node.LegalActions()
		if len(actions) == 0 {
			break
		}
		action := actions[rng.Intn(len(actions))]
		path = append(path, step{board: node.Clone(), action: action})
		apply(node, action)
	}

	// Backpropagation: every node on the path is rewarded relative to
	// its own player to move, so a node's exploitation term always
	// reads as the expected value for whoever moves there. A path node
	// without a tree entry ends propagation.
	scores := node.Scores()
	for _, s := range path {
		tally, ok := tree[s.board.Key()]
		if !ok {
			break
		}
		tally.MarkVisit(s.action, reward(scores, s.board.ActivePlayer()))
	}
}

// reward is the terminal outcome seen from player's side.
func reward(scores [2]int, player game.Player) float64 {
	switch {
	case scores[player] > scores[player.Opponent()]:
		return Win
	case scores[player] < scores[player.Opponent()]:
		return Loss
	default:
		return Draw
	}
}

// apply plays an enumerated action. Enumerated actions are legal by
// construction; a rejection here is a broken invariant, not a
// recoverable error.
func apply(board *game.Board, action game.Action) {
	if err := board.Place(action.Row, action.Col, action.Cell); err != nil {
		panic(fmt.Sprintf("enumerated action %v is not playable: %v", action, err))
	}
}
