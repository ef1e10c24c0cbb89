package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"numcross/config"
	"numcross/engine"
	"numcross/game"
	"numcross/searcher"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	var cfg config.Config
	if err := cfg.Load(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if cfg.BotPlayer != 0 && cfg.BotPlayer != 1 {
		log.Fatal().Int("bot-player", cfg.BotPlayer).Msg("bot player must be 0 or 1")
	}

	if cfg.Selfplay {
		engine.Run(cfg.Rows, cfg.Cols, searcher.WithPlayouts(cfg.Playouts))
		return
	}

	eng := engine.New(cfg.Rows, cfg.Cols, game.Player(cfg.BotPlayer),
		searcher.WithPlayouts(cfg.Playouts))
	playInteractive(eng)
}

func playInteractive(eng *engine.Engine) {
	profile := termenv.ColorProfile()
	stdin := bufio.NewScanner(os.Stdin)

	for !eng.IsFinished() {
		fmt.Println(renderBoard(eng, profile))

		if eng.ActivePlayer() == eng.BotPlayer() {
			action, err := eng.PlayBotMove()
			if err != nil {
				log.Fatal().Err(err).Msg("bot cannot move")
			}
			fmt.Printf("Bot plays %s.\n\n", action)
			continue
		}

		fmt.Printf("Player %d, enter: row col guess (0 crosses out) > ", eng.ActivePlayer())
		if !stdin.Scan() {
			return
		}
		var row, col, guess int
		if _, err := fmt.Sscanf(strings.TrimSpace(stdin.Text()), "%d %d %d", &row, &col, &guess); err != nil {
			fmt.Println("enter three numbers: row col guess")
			continue
		}
		if err := eng.Place(row, col, guess); err != nil {
			fmt.Println(err)
		}
		fmt.Println()
	}

	fmt.Println(renderBoard(eng, profile))
	scores := eng.Scores()
	switch {
	case scores[0] > scores[1]:
		fmt.Println("Player 0 wins.")
	case scores[1] > scores[0]:
		fmt.Println("Player 1 wins.")
	default:
		fmt.Println("Draw!")
	}
}

// ANSI colors per player.
var playerColors = [2]string{"12", "9"}

func renderBoard(eng *engine.Engine, profile termenv.Profile) string {
	var sb strings.Builder
	sb.WriteString("    ")
	for col := 0; col < eng.Cols(); col++ {
		fmt.Fprintf(&sb, " %d  ", col)
	}
	sb.WriteString("\n")
	for row := 0; row < eng.Rows(); row++ {
		fmt.Fprintf(&sb, " %d |", row)
		for col := 0; col < eng.Cols(); col++ {
			cell, err := eng.CellAt(row, col)
			if err != nil {
				panic(err)
			}
			sb.WriteString(renderCell(profile, cell))
			sb.WriteString("|")
		}
		sb.WriteString("\n")
	}
	scores := eng.Scores()
	fmt.Fprintf(&sb, "Scores: %d, %d", scores[0], scores[1])
	return sb.String()
}

func renderCell(profile termenv.Profile, cell game.Cell) string {
	switch {
	case cell.IsEmpty():
		return "   "
	case cell.IsCrossedOut():
		return termenv.String(" X ").Faint().String()
	default:
		text := fmt.Sprintf("%2d ", cell.Number())
		return termenv.String(text).
			Foreground(profile.Color(playerColors[cell.Player()])).
			String()
	}
}
