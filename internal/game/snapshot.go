package game

import (
	"fmt"

	"github.com/google/uuid"
)

// Snapshot is the serializable form of a round between two decisions.
type Snapshot struct {
	ID      uuid.UUID `json:"id"`
	Deck    []Card    `json:"deck"`
	Dealer  []Card    `json:"dealer"`
	Player  []Card    `json:"player"`
	State   State     `json:"state"`
	Ending  State     `json:"ending,omitempty"`
	Outcome Outcome   `json:"outcome"`
	History []State   `json:"history"`
}

func (r *Round) Snapshot() Snapshot {
	return Snapshot{
		ID:      r.id,
		Deck:    r.deck.Cards(),
		Dealer:  r.dealer.Cards(),
		Player:  r.player.Cards(),
		State:   r.state,
		Ending:  r.ending,
		Outcome: r.outcome,
		History: r.History(),
	}
}

// Restore rebuilds a round from a snapshot. The deck and both hands must
// together hold every card of a 52-card deck exactly once.
func Restore(s Snapshot) (*Round, error) {
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}

	dealerHand, err := NewHand(s.Dealer...)
	if err != nil {
		return nil, fmt.Errorf("%w: dealer: %v", ErrCorruptSnapshot, err)
	}
	playerHand, err := NewHand(s.Player...)
	if err != nil {
		return nil, fmt.Errorf("%w: player: %v", ErrCorruptSnapshot, err)
	}

	r := &Round{
		id:      s.ID,
		deck:    NewDeckFromCards(s.Deck),
		dealer:  newParticipant(RoleDealer, dealerHand),
		player:  newParticipant(RolePlayer, playerHand),
		state:   s.State,
		ending:  s.Ending,
		outcome: s.Outcome,
		history: append(make([]State, 0, len(s.History)), s.History...),
	}
	return r, nil
}

func (s Snapshot) validate() error {
	seen := make(map[Card]bool, DeckSize)
	for _, group := range [][]Card{s.Deck, s.Dealer, s.Player} {
		for _, c := range group {
			if !c.Rank.Valid() || c.Suit < Clubs || c.Suit > Spades {
				return fmt.Errorf("invalid card %+v", c)
			}
			if seen[c] {
				return fmt.Errorf("duplicate card %s", c)
			}
			seen[c] = true
		}
	}
	if len(seen) != DeckSize {
		return fmt.Errorf("expected %d cards, got %d", DeckSize, len(seen))
	}

	if len(s.History) == 0 || s.History[len(s.History)-1] != s.State {
		return fmt.Errorf("history does not end in %s", s.State)
	}

	switch s.State {
	case StatePlayerDeciding:
		if s.Outcome != OutcomeNone || isEnding(s.Ending) {
			return fmt.Errorf("undecided round carries a result")
		}
	case StateSettled:
		if s.Outcome == OutcomeNone || !isEnding(s.Ending) {
			return fmt.Errorf("settled round without a result")
		}
	default:
		return fmt.Errorf("cannot resume in %s", s.State)
	}
	return nil
}
