package bot

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"blackjack-table/internal/config"
	"blackjack-table/internal/game"
	"blackjack-table/internal/session"
)

// sender is the part of *tgbotapi.BotAPI the handler talks to.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Handler struct {
	bot    sender
	rounds session.Store
	logger *slog.Logger
	locks  chatLocks

	rngMu   sync.Mutex
	rng     *rand.Rand
	newDeck func() *game.Deck
}

func NewHandler(bot sender, cfg *config.Config, rounds session.Store, logger *slog.Logger) *Handler {
	seed := cfg.ShuffleSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	h := &Handler{
		bot:    bot,
		rounds: rounds,
		logger: logger,
		locks:  chatLocks{locks: make(map[int64]*chatLock)},
		rng:    rand.New(rand.NewSource(seed)),
	}
	h.newDeck = h.shuffledDeck
	return h
}

// shuffledDeck draws every deck from the handler's generator so a fixed
// SHUFFLE_SEED replays the same sequence of rounds.
func (h *Handler) shuffledDeck() *game.Deck {
	h.rngMu.Lock()
	defer h.rngMu.Unlock()
	return game.NewDeck(h.rng)
}

func (h *Handler) send(chatID int64, text string) {
	if _, err := h.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		h.logger.Error("failed to send message", "chat_id", chatID, "error", err)
	}
}

func (h *Handler) sendWithKeyboard(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	if _, err := h.bot.Send(msg); err != nil {
		h.logger.Error("failed to send message", "chat_id", chatID, "error", err)
	}
}

func (h *Handler) answerCallback(id, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(id, text)); err != nil {
		h.logger.Warn("failed to answer callback", "callback_id", id, "error", err)
	}
}

// HandleUpdate routes one Telegram update. Updates for the same chat are
// handled one at a time.
func (h *Handler) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil && update.CallbackQuery.Message != nil:
		h.HandleCallback(ctx, update.CallbackQuery)
	case update.Message != nil && update.Message.Chat != nil:
		h.HandleMessage(ctx, update.Message)
	}
}

func (h *Handler) HandleMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	parts := strings.Fields(msg.Text)
	if len(parts) == 0 {
		return
	}

	unlock := h.locks.lock(chatID)
	defer unlock()

	switch cmd := strings.ToLower(parts[0]); cmd {
	case "/start":
		h.sendWithKeyboard(chatID, "🎰 Welcome to Blackjack!\n\n/play: deal a new round\n/quit: abandon the current round\n/help: rules", EndGameKeyboard())
	case "/help":
		h.send(chatID, helpText)
	case "/play":
		h.handlePlay(ctx, chatID)
	case "/quit":
		h.handleQuit(ctx, chatID)
	default:
		h.handleText(ctx, chatID, msg.Text)
	}
}

func (h *Handler) HandleCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID

	unlock := h.locks.lock(chatID)
	defer unlock()

	switch callback.Data {
	case CallbackNewRound:
		h.handlePlay(ctx, chatID)
	case CallbackHit:
		h.handleDecision(ctx, chatID, game.Hit)
	case CallbackStand:
		h.handleDecision(ctx, chatID, game.Stand)
	default:
		h.logger.Warn("unknown callback", "chat_id", chatID, "data", callback.Data)
	}
	h.answerCallback(callback.ID, "")
}

func (h *Handler) handlePlay(ctx context.Context, chatID int64) {
	current, err := h.rounds.Get(ctx, chatID)
	switch {
	case err == nil && current.State() == game.StatePlayerDeciding:
		h.sendWithKeyboard(chatID, "You already have a round in progress.\n\n"+formatRound(current), GameKeyboard())
		return
	case err != nil && !errors.Is(err, session.ErrNotFound):
		h.logger.Error("failed to load round", "chat_id", chatID, "error", err)
	}

	r, err := game.NewRound(h.newDeck())
	if err != nil {
		h.logger.Error("failed to deal round", "chat_id", chatID, "error", err)
		h.send(chatID, "❌ Could not deal a new round. Try again later.")
		return
	}
	if err := h.rounds.Save(ctx, chatID, r); err != nil {
		h.logger.Error("failed to save round", "chat_id", chatID, "round_id", r.ID(), "error", err)
		h.send(chatID, "❌ Could not start a round. Try again later.")
		return
	}

	h.logger.Info("round dealt", "chat_id", chatID, "round_id", r.ID())
	h.sendWithKeyboard(chatID, formatRound(r), GameKeyboard())
}

func (h *Handler) handleQuit(ctx context.Context, chatID int64) {
	if err := h.rounds.Delete(ctx, chatID); err != nil {
		h.logger.Error("failed to delete round", "chat_id", chatID, "error", err)
		h.send(chatID, "❌ Could not abandon the round. Try again later.")
		return
	}
	h.sendWithKeyboard(chatID, "Round abandoned.", EndGameKeyboard())
}

// handleText treats free text as a decision. Anything that does not parse
// asks again and leaves the round untouched.
func (h *Handler) handleText(ctx context.Context, chatID int64, text string) {
	decision, ok := game.ParseDecision(text)
	if !ok {
		_, err := h.rounds.Get(ctx, chatID)
		if errors.Is(err, session.ErrNotFound) {
			h.send(chatID, "No round in progress. Send /play to start one.")
			return
		}
		if err != nil {
			h.logger.Error("failed to load round", "chat_id", chatID, "error", err)
			h.send(chatID, "❌ Could not load your round. Send /play to start over.")
			return
		}
		h.sendWithKeyboard(chatID, "What would you like to do?\n[1] Hit\n[2] Stand", GameKeyboard())
		return
	}
	h.handleDecision(ctx, chatID, decision)
}

func (h *Handler) handleDecision(ctx context.Context, chatID int64, d game.Decision) {
	r, err := h.rounds.Get(ctx, chatID)
	if errors.Is(err, session.ErrNotFound) {
		h.sendWithKeyboard(chatID, "No round in progress.", EndGameKeyboard())
		return
	}
	if err != nil {
		h.logger.Error("failed to load round", "chat_id", chatID, "error", err)
		h.send(chatID, "❌ Could not load your round. Send /play to start over.")
		return
	}

	if err := r.Submit(d); err != nil {
		h.logger.Error("round aborted", "chat_id", chatID, "round_id", r.ID(), "decision", d, "error", err)
		h.dropRound(ctx, chatID)
		h.sendWithKeyboard(chatID, "❌ The round could not continue and was cancelled.", EndGameKeyboard())
		return
	}

	if r.State() == game.StateSettled {
		h.logger.Info("round settled", "chat_id", chatID, "round_id", r.ID(), "outcome", r.Outcome())
		h.dropRound(ctx, chatID)
		h.sendWithKeyboard(chatID, formatGameEnd(r), EndGameKeyboard())
		return
	}

	if err := h.rounds.Save(ctx, chatID, r); err != nil {
		h.logger.Error("failed to save round", "chat_id", chatID, "round_id", r.ID(), "error", err)
		h.send(chatID, "❌ Could not save your move. Try again.")
		return
	}
	h.sendWithKeyboard(chatID, formatRound(r), GameKeyboard())
}

func (h *Handler) dropRound(ctx context.Context, chatID int64) {
	if err := h.rounds.Delete(ctx, chatID); err != nil {
		h.logger.Error("failed to delete round", "chat_id", chatID, "error", err)
	}
}
