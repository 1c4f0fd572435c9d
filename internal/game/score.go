package game

import "strconv"

const (
	Blackjack      = 21
	DealerStandsOn = 17
	softBonus      = 10
)

// Score is derived from a hand and never stored across mutations.
// Alternate adds a flat 10 when at least one ace is present, however
// many aces the hand holds.
type Score struct {
	Plain     int
	Alternate int
	HasAce    bool
	Display   string
}

func ScoreOf(cards []Card) Score {
	s := Score{}
	for _, c := range cards {
		s.Plain += c.Rank.BaseValue()
		if c.Rank.IsSoft() {
			s.HasAce = true
		}
	}

	s.Alternate = s.Plain
	s.Display = strconv.Itoa(s.Plain)
	if s.HasAce {
		s.Alternate = s.Plain + softBonus
		s.Display = strconv.Itoa(s.Plain) + " or " + strconv.Itoa(s.Alternate)
	}
	return s
}

// Effective is the total used at settlement.
func (s Score) Effective() int {
	if s.Alternate <= Blackjack {
		return s.Alternate
	}
	return s.Plain
}

func (s Score) Bust() bool {
	return s.Plain > Blackjack
}

func (s Score) IsBlackjack() bool {
	return s.Plain == Blackjack || s.Alternate == Blackjack
}

// DealerShouldDraw is the dealer's loop condition.
func DealerShouldDraw(s Score) bool {
	return s.Plain < DealerStandsOn || (s.HasAce && s.Alternate <= DealerStandsOn)
}
