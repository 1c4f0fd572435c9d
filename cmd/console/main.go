package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"blackjack-table/internal/config"
	"blackjack-table/internal/console"
	"blackjack-table/internal/game"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger := cfg.Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	table := console.NewTable(os.Stdin, os.Stdout)
	outcome, err := table.Play(ctx, game.NewSeededDeck(cfg.ShuffleSeed))
	if err != nil {
		logger.Error("round ended abnormally", "error", err)
		os.Exit(1)
	}
	logger.Debug("round settled", "outcome", outcome)
}
