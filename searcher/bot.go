package searcher

import (
	"math"
	"time"

	"numcross/game"

	"github.com/rs/zerolog/log"
)

// DefaultPlayouts is the search budget per recommendation. It is the
// quality/latency trade-off knob.
const DefaultPlayouts = 2048

type Option func(bot *Bot)

// WithPlayouts overrides the playout budget used by Recommend.
func WithPlayouts(playouts int) Option {
	return func(b *Bot) {
		if playouts > 0 {
			b.playouts = playouts
		}
	}
}

// WithRand injects the randomness source, e.g. a seeded generator for
// reproducible searches.
func WithRand(rng Rand) Option {
	return func(b *Bot) {
		if rng != nil {
			b.rng = rng
		}
	}
}

// Bot owns one search tree and the current root board across the real
// moves of a game, playing as one of the two players.
type Bot struct {
	root     *game.Board
	me       game.Player
	tree     Tree
	playouts int
	rng      Rand
}

// NewBot creates a bot playing as me, rooted at root, with an empty
// tree.
func NewBot(root *game.Board, me game.Player, options ...Option) *Bot {
	b := &Bot{
		root:     root.Clone(),
		me:       me,
		tree:     make(Tree),
		playouts: DefaultPlayouts,
		rng:      defaultRand(),
	}
	for _, option := range options {
		option(b)
	}
	return b
}

// Me returns which player the bot plays as.
func (b *Bot) Me() game.Player {
	return b.me
}

// Root returns a copy of the current root board.
func (b *Bot) Root() *game.Board {
	return b.root.Clone()
}

// TreeSize returns the number of tracked boards.
func (b *Bot) TreeSize() int {
	return len(b.tree)
}

// Update tells the bot about the new authoritative board after a real
// move, its own or the opponent's. Tree entries further from completion
// than the new root can no longer be reached and are pruned; entries at
// or past the new root's progress keep their statistics for reuse. Runs
// exactly once per real move, never per playout.
func (b *Bot) Update(board *game.Board) {
	empty := board.EmptyCells()
	pruned := 0
	for key, tally := range b.tree {
		if tally.emptyCells > empty {
			delete(b.tree, key)
			pruned++
		}
	}
	b.root = board.Clone()
	if pruned > 0 {
		log.Debug().Int("pruned", pruned).Int("retained", len(b.tree)).Msg("pruned search tree")
	}
}

// Playout runs one search cycle against the owned tree.
func (b *Bot) Playout() {
	Playout(b.root, b.tree, b.rng)
}

// Edge is a root action together with its accumulated statistics.
type Edge struct {
	Action  game.Action
	Visits  uint64
	Rewards float64
}

// BestAction returns the visited root action with the highest average
// reward, not the most-visited one. Candidates are scanned in the
// node's frozen enumeration order (row-major squares, cross-out before
// ascending guesses), so ties resolve deterministically to the lowest
// row, then column, then number. Returns false on a finished or
// never-searched root.
func (b *Bot) BestAction() (Edge, bool) {
	if b.root.IsFinished() {
		return Edge{}, false
	}
	tally, ok := b.tree[b.root.Key()]
	if !ok {
		return Edge{}, false
	}

	var best Edge
	found := false
	bestAvg := math.Inf(-1)
	for _, action := range tally.Available() {
		v := tally.GetVisit(action)
		if v.Count == 0 {
			continue
		}
		if avg := v.Rewards / float64(v.Count); avg > bestAvg {
			best = Edge{Action: action, Visits: v.Count, Rewards: v.Rewards}
			bestAvg = avg
			found = true
		}
	}
	return best, found
}

// Recommend runs the full playout budget and returns the resulting best
// action, or false when the game is already over.
func (b *Bot) Recommend() (Edge, bool) {
	start := time.Now()
	for i := 0; i < b.playouts; i++ {
		b.Playout()
	}
	log.Debug().
		Int("playouts", b.playouts).
		Int("tree", len(b.tree)).
		Dur("elapsed", time.Since(start)).
		Msg("search complete")
	return b.BestAction()
}
