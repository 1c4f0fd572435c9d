package game

import "fmt"

// Hand holds one participant's cards in the order they were dealt.
// It only grows.
type Hand struct {
	cards []Card
}

func NewHand(cards ...Card) (*Hand, error) {
	if len(cards) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidHand, len(cards))
	}
	h := &Hand{cards: make([]Card, 0, 8)}
	h.cards = append(h.cards, cards...)
	return h, nil
}

func (h *Hand) AddCard(c Card) {
	h.cards = append(h.cards, c)
}

// Cards returns a copy; mutating it does not change the hand.
func (h *Hand) Cards() []Card {
	out := make([]Card, len(h.cards))
	copy(out, h.cards)
	return out
}

func (h *Hand) Len() int {
	return len(h.cards)
}

func (h *Hand) Score() Score {
	return ScoreOf(h.cards)
}
