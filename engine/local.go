package engine

import (
	"numcross/game"
	"numcross/searcher"

	"github.com/rs/zerolog/log"
)

// Run plays a full bot-vs-bot game on a fresh rows x cols board, each
// seat searching with its own tree, and returns the final scores.
func Run(rows, cols int, options ...searcher.Option) [2]int {
	board := game.NewBoard(rows, cols)
	bots := [2]*searcher.Bot{
		searcher.NewBot(board, 0, options...),
		searcher.NewBot(board, 1, options...),
	}

	log.Info().Int("player", int(board.ActivePlayer())).Msg("game starting")

	turn := 1
	for !board.IsFinished() {
		player := board.ActivePlayer()
		edge, ok := bots[player].Recommend()
		if !ok {
			panic("no recommendation for an unfinished game")
		}

		next := board.Clone()
		if err := next.Place(edge.Action.Row, edge.Action.Col, edge.Action.Cell); err != nil {
			panic(err)
		}
		log.Info().
			Int("turn", turn).
			Int("player", int(player)).
			Stringer("action", edge.Action).
			Uint64("visits", edge.Visits).
			Float64("rewards", edge.Rewards).
			Msg("bot move")

		board = next
		bots[0].Update(board)
		bots[1].Update(board)
		turn++
	}

	scores := board.Scores()
	log.Info().Int("score0", scores[0]).Int("score1", scores[1]).Msg("game over")
	return scores
}
