package engine

import (
	"fmt"

	"numcross/game"
	"numcross/searcher"

	"github.com/rs/zerolog/log"
)

// Engine is the surface a host drives one game through. It owns the
// authoritative board and a bot searching on behalf of one player;
// every real move advances the bot's root and prunes its tree once.
type Engine struct {
	board *game.Board
	bot   *searcher.Bot
}

// New creates a rows x cols game with the bot seated as botPlayer.
func New(rows, cols int, botPlayer game.Player, options ...searcher.Option) *Engine {
	board := game.NewBoard(rows, cols)
	return &Engine{
		board: board,
		bot:   searcher.NewBot(board, botPlayer, options...),
	}
}

func (e *Engine) Rows() int {
	return e.board.Rows()
}

func (e *Engine) Cols() int {
	return e.board.Cols()
}

func (e *Engine) IsFinished() bool {
	return e.board.IsFinished()
}

func (e *Engine) Scores() [2]int {
	return e.board.Scores()
}

func (e *Engine) ActivePlayer() game.Player {
	return e.board.ActivePlayer()
}

func (e *Engine) BotPlayer() game.Player {
	return e.bot.Me()
}

// CellAt returns the content of a square, with an error for
// out-of-bounds coordinates.
func (e *Engine) CellAt(row, col int) (game.Cell, error) {
	return e.board.CellAt(row, col)
}

// Place applies a move for the current active player: guess 0 is a
// cross-out, anything larger a numbered guess. Rejections are
// *game.IllegalMoveError and leave the game unchanged.
func (e *Engine) Place(row, col, guess int) error {
	cell := game.CrossedOut
	if guess > 0 {
		cell = game.Guess(e.board.ActivePlayer(), guess)
	}
	next := e.board.Clone()
	if err := next.Place(row, col, cell); err != nil {
		return err
	}
	e.board = next
	e.bot.Update(next)
	log.Info().
		Int("row", row).
		Int("col", col).
		Stringer("cell", cell).
		Msg("move played")
	return nil
}

// Playout runs a single incremental search cycle, for hosts that search
// in the background between moves.
func (e *Engine) Playout() {
	e.bot.Playout()
}

// Recommend runs the full playout budget and returns the bot's best
// action with its statistics, or false on a finished game.
func (e *Engine) Recommend() (searcher.Edge, bool) {
	return e.bot.Recommend()
}

// PlayBotMove searches and applies the recommended action.
func (e *Engine) PlayBotMove() (game.Action, error) {
	edge, ok := e.Recommend()
	if !ok {
		return game.Action{}, fmt.Errorf("no action to recommend: game is finished")
	}
	if err := e.Place(edge.Action.Row, edge.Action.Col, edge.Action.Cell.Number()); err != nil {
		return game.Action{}, err
	}
	return edge.Action, nil
}
