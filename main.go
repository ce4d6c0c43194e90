package main

import (
	"log"
	"log/slog"
	"os"

	"StoneChamber/commands"
	"StoneChamber/internal/config"
	"StoneChamber/internal/game"
	"StoneChamber/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}, os.Stderr)
	slog.SetDefault(lg)

	g := game.NewGame(
		game.WithOutput(os.Stdout),
		game.WithLogger(lg),
		game.WithColor(cfg.Color),
	)
	if err := game.Run(g, os.Stdin, commands.Dispatch); err != nil {
		lg.Error("session aborted", "error", err)
		os.Exit(1)
	}
}
