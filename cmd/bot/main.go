package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"blackjack-table/internal/bot"
	"blackjack-table/internal/config"
	"blackjack-table/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.BotToken == "" {
		log.Fatalf("BOT_TOKEN is not set")
	}
	logger := cfg.Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rounds, err := session.Open(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to open session store: %v", err)
	}
	defer rounds.Close()

	b, err := bot.New(cfg, rounds, logger)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	if err := b.Run(ctx); err != nil {
		logger.Error("bot error", "error", err)
		os.Exit(1)
	}
}
