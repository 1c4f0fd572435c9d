package bot

import (
	"fmt"
	"strings"

	"blackjack-table/internal/game"
)

func formatCards(cards []game.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.Short()
	}
	return strings.Join(parts, " ")
}

// formatRound shows both hands. The dealer stays face down until the round
// is settled.
func formatRound(r *game.Round) string {
	revealed := r.State() == game.StateSettled
	return fmt.Sprintf("🃏 Dealer: %s (%s)\n🎴 You: %s (%s)",
		formatCards(r.DealerHand(revealed)), r.DealerScoreDisplay(revealed),
		formatCards(r.PlayerHand()), r.PlayerScoreDisplay())
}

func formatOutcome(r *game.Round) string {
	var sb strings.Builder

	if ending, _ := r.Ending(); ending == game.StatePlayerBusted {
		sb.WriteString("💥 Bust!\n")
	}
	if r.DealerScore().Bust() {
		sb.WriteString("💥 Dealer busts!\n")
	}

	switch r.Outcome() {
	case game.OutcomePlayerWin:
		sb.WriteString("🎉 You win!")
	case game.OutcomeDealerWin:
		sb.WriteString("😔 Dealer wins.")
	case game.OutcomeTie:
		sb.WriteString("🤝 It's a tie!")
	case game.OutcomePlayerBlackjack:
		sb.WriteString("🎰 Blackjack! You win!")
	case game.OutcomeDealerBlackjack:
		sb.WriteString("🎰 Dealer got blackjack. You lose.")
	}
	return sb.String()
}

func formatGameEnd(r *game.Round) string {
	return formatRound(r) + "\n\n" + formatOutcome(r)
}

const helpText = "📖 Blackjack rules:\n\n" +
	"🎯 Get closer to 21 than the dealer without going over.\n\n" +
	"📊 Points:\n" +
	"• 2-10: face value\n" +
	"• J, Q, K: 10\n" +
	"• A: 1 or 11\n\n" +
	"🎮 Moves:\n" +
	"• Hit (1): take a card\n" +
	"• Stand (2): stop and let the dealer play\n\n" +
	"The dealer draws below 17 and then takes one more card.\n" +
	"Reaching 21 after a hit wins unless the dealer also holds 21."
