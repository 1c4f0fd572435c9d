package bot

import (
	"context"
	"log/slog"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"blackjack-table/internal/config"
	"blackjack-table/internal/session"
)

const sweepInterval = time.Minute

type Bot struct {
	api     *tgbotapi.BotAPI
	handler *Handler
	rounds  session.Store
	logger  *slog.Logger
}

func New(cfg *config.Config, rounds session.Store, logger *slog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, err
	}

	return &Bot{
		api:     api,
		handler: NewHandler(api, cfg, rounds, logger),
		rounds:  rounds,
		logger:  logger,
	}, nil
}

// Run long-polls Telegram until ctx is done.
func (b *Bot) Run(ctx context.Context) error {
	b.logger.Info("bot started", "username", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	return b.serve(ctx, updates)
}

// serve dispatches updates until ctx is done or updates is closed, then
// waits for every handler it started. Handlers run on a context that is
// not canceled with ctx, so a move in flight still reaches the store.
func (b *Bot) serve(ctx context.Context, updates <-chan tgbotapi.Update) error {
	var wg sync.WaitGroup
	defer wg.Wait()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if sweeper, ok := b.rounds.(session.Sweeper); ok {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.sweep(ctx, sweeper)
		}()
	}

	handlerCtx := context.WithoutCancel(ctx)
	for {
		select {
		case <-ctx.Done():
			b.logger.Info("bot stopping")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				b.handler.HandleUpdate(handlerCtx, update)
			}()
		}
	}
}

func (b *Bot) sweep(ctx context.Context, s session.Sweeper) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.Sweep(ctx)
			if err != nil {
				b.logger.Warn("failed to sweep rounds", "error", err)
				continue
			}
			if n > 0 {
				b.logger.Debug("expired rounds removed", "count", n)
			}
		}
	}
}
