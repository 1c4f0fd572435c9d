package game

import (
	"fmt"

	"github.com/google/uuid"
)

// Round is one dealer-versus-player game. It moves through
//
//	Dealing -> PlayerDeciding -> PlayerBusted | PlayerBlackjack | PlayerStood
//	        -> DealerPlaying (only after PlayerStood) -> Settled
//
// and is driven from outside by Submit or Play.
type Round struct {
	id      uuid.UUID
	deck    *Deck
	dealer  *Participant
	player  *Participant
	state   State
	ending  State
	outcome Outcome
	history []State
	err     error
}

// NewRound deals two cards to the dealer and then two to the player from
// an already shuffled deck.
func NewRound(deck *Deck) (*Round, error) {
	r := &Round{
		id:      uuid.New(),
		deck:    deck,
		history: make([]State, 0, 6),
	}
	r.enter(StateDealing)

	dealerHand, err := r.dealHand()
	if err != nil {
		return nil, fmt.Errorf("failed to deal dealer: %w", err)
	}
	playerHand, err := r.dealHand()
	if err != nil {
		return nil, fmt.Errorf("failed to deal player: %w", err)
	}
	r.dealer = newParticipant(RoleDealer, dealerHand)
	r.player = newParticipant(RolePlayer, playerHand)

	r.enter(StatePlayerDeciding)
	return r, nil
}

func (r *Round) dealHand() (*Hand, error) {
	first, err := r.deck.Draw()
	if err != nil {
		return nil, err
	}
	second, err := r.deck.Draw()
	if err != nil {
		return nil, err
	}
	return NewHand(first, second)
}

func (r *Round) enter(s State) {
	r.state = s
	r.history = append(r.history, s)
	if isEnding(s) {
		r.ending = s
	}
}

func isEnding(s State) bool {
	return s == StatePlayerBusted || s == StatePlayerBlackjack || s == StatePlayerStood
}

// Submit applies one player decision. It only succeeds while the round is
// in PlayerDeciding.
func (r *Round) Submit(d Decision) error {
	if r.err != nil {
		return r.err
	}
	if r.state == StateSettled {
		return ErrRoundOver
	}
	if r.state != StatePlayerDeciding {
		return fmt.Errorf("cannot take a decision in %s", r.state)
	}

	switch d {
	case Hit:
		return r.hit()
	case Stand:
		return r.stand()
	}
	return fmt.Errorf("unknown decision %d", int(d))
}

func (r *Round) hit() error {
	card, err := r.deck.Draw()
	if err != nil {
		return r.abort(err)
	}
	r.player.add(card)

	score := r.player.Score()
	switch {
	case score.Bust():
		r.enter(StatePlayerBusted)
		r.settle()
	case score.IsBlackjack():
		r.enter(StatePlayerBlackjack)
		r.settle()
	}
	return nil
}

func (r *Round) stand() error {
	r.enter(StatePlayerStood)
	r.enter(StateDealerPlaying)
	if err := r.dealerPlay(); err != nil {
		return r.abort(err)
	}
	r.settle()
	return nil
}

func (r *Round) dealerPlay() error {
	for DealerShouldDraw(r.dealer.Score()) {
		if err := r.dealerDraw(); err != nil {
			return err
		}
	}
	// One more card after the loop exits, whatever the total.
	return r.dealerDraw()
}

func (r *Round) dealerDraw() error {
	card, err := r.deck.Draw()
	if err != nil {
		return err
	}
	r.dealer.add(card)
	return nil
}

func (r *Round) abort(err error) error {
	r.err = fmt.Errorf("round %s aborted in %s: %w", r.id, r.state, err)
	return r.err
}

func (r *Round) settle() {
	r.outcome = Settle(r.ending, r.player.Score(), r.dealer.Score())
	r.enter(StateSettled)
}

// Settle decides the round from the way the player's turn ended and both
// final scores.
func Settle(ending State, player, dealer Score) Outcome {
	switch ending {
	case StatePlayerBusted:
		return OutcomeDealerWin
	case StatePlayerBlackjack:
		if dealer.Effective() == Blackjack {
			return OutcomeDealerBlackjack
		}
		return OutcomePlayerBlackjack
	}

	if dealer.Bust() {
		return OutcomePlayerWin
	}

	p, d := player.Effective(), dealer.Effective()
	switch {
	case p > d:
		return OutcomePlayerWin
	case p < d:
		return OutcomeDealerWin
	default:
		return OutcomeTie
	}
}

func (r *Round) ID() uuid.UUID {
	return r.id
}

func (r *Round) State() State {
	return r.state
}

// Ending reports how the player's turn ended. ok is false while the
// player is still deciding.
func (r *Round) Ending() (s State, ok bool) {
	return r.ending, isEnding(r.ending)
}

// History lists every state the round has entered, oldest first.
func (r *Round) History() []State {
	out := make([]State, len(r.history))
	copy(out, r.history)
	return out
}

// Outcome is OutcomeNone until the round is Settled.
func (r *Round) Outcome() Outcome {
	return r.outcome
}

// Err returns the error that aborted the round, if any.
func (r *Round) Err() error {
	return r.err
}

func (r *Round) PlayerHand() []Card {
	return r.player.Cards()
}

func (r *Round) PlayerScore() Score {
	return r.player.Score()
}

func (r *Round) PlayerScoreDisplay() string {
	return r.player.Score().Display
}

// DealerHand returns the dealer's cards, or the same number of face-down
// zero Cards when revealed is false.
func (r *Round) DealerHand(revealed bool) []Card {
	cards := r.dealer.Cards()
	if !revealed {
		for i := range cards {
			cards[i] = Card{}
		}
	}
	return cards
}

func (r *Round) DealerScore() Score {
	return r.dealer.Score()
}

func (r *Round) DealerScoreDisplay(revealed bool) string {
	if !revealed {
		return "hidden"
	}
	return r.dealer.Score().Display
}

// CardsLeft is the number of cards still in the round's deck.
func (r *Round) CardsLeft() int {
	return r.deck.Size()
}
