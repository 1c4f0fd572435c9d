package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func card(r Rank, s Suit) Card {
	return NewCard(s, r)
}

// stackedDeck deals top first, then the rest of a canonical deck.
func stackedDeck(t *testing.T, top ...Card) *Deck {
	t.Helper()

	var full Deck
	full.Build()

	used := make(map[Card]bool, len(top))
	for _, c := range top {
		require.False(t, used[c], "duplicate stacked card %s", c)
		used[c] = true
	}

	cards := append([]Card{}, top...)
	for _, c := range full.Cards() {
		if !used[c] {
			cards = append(cards, c)
		}
	}
	return NewDeckFromCards(cards)
}

func requireFullDeck(t *testing.T, groups ...[]Card) {
	t.Helper()

	seen := make(map[Card]int)
	for _, g := range groups {
		for _, c := range g {
			seen[c]++
		}
	}
	require.Len(t, seen, DeckSize)
	for c, n := range seen {
		require.Equal(t, 1, n, "card %s held %d times", c, n)
	}
}
