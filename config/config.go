package config

import (
	"github.com/namsral/flag"

	"numcross/searcher"
)

// Config holds the executable's settings. Each flag falls back to a
// NUMCROSS_-prefixed environment variable.
type Config struct {
	Rows      int
	Cols      int
	BotPlayer int
	Playouts  int
	Selfplay  bool
	Debug     bool
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSetWithEnvPrefix("numcross", "NUMCROSS", flag.ContinueOnError)
	fs.IntVar(&c.Rows, "rows", 5, "number of grid rows")
	fs.IntVar(&c.Cols, "cols", 5, "number of grid columns")
	fs.IntVar(&c.BotPlayer, "bot-player", 1, "which player the bot plays, 0 or 1")
	fs.IntVar(&c.Playouts, "playouts", searcher.DefaultPlayouts, "playouts per recommendation")
	fs.BoolVar(&c.Selfplay, "selfplay", false, "watch two bots play each other")
	fs.BoolVar(&c.Debug, "debug", false, "enable debug logging")
	return fs.Parse(args)
}
