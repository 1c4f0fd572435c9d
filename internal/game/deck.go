package game

import (
	"math/rand"
	"time"
)

const DeckSize = 52

// Source is the random source a Deck shuffles with. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

type Deck struct {
	cards []Card
	built bool
	rng   Source
}

// NewDeck builds and shuffles a 52-card deck. A nil rng falls back to a
// time-seeded generator owned by the deck.
func NewDeck(rng Source) *Deck {
	d := &Deck{rng: rng}
	d.Shuffle()
	return d
}

// NewSeededDeck returns a shuffled deck whose order depends only on seed.
// A zero seed is replaced by the current time.
func NewSeededDeck(seed int64) *Deck {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewDeck(rand.New(rand.NewSource(seed)))
}

// NewDeckFromCards returns a deck that deals cards in the given order,
// without shuffling.
func NewDeckFromCards(cards []Card) *Deck {
	d := &Deck{
		cards: make([]Card, len(cards)),
		built: true,
	}
	copy(d.cards, cards)
	return d
}

// Build resets the deck to all 52 cards in suit-major, rank-minor order.
func (d *Deck) Build() {
	d.cards = make([]Card, 0, DeckSize)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}
	d.built = true
}

// Shuffle applies a Fisher-Yates permutation, building the deck first if
// it has never been built.
func (d *Deck) Shuffle() {
	if !d.built {
		d.Build()
	}
	if d.rng == nil {
		d.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes and returns the top card.
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}

	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, nil
}

func (d *Deck) Size() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards, top first.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
