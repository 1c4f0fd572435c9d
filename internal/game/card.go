package game

import "fmt"

type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	}
	return "?"
}

func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	}
	return "?"
}

// Rank is a card's identity, not its value. Jack, Queen and King are
// distinct ranks that share a base value of 10; see BaseValue.
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

var Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

var baseValues = map[Rank]int{
	Ace: 1, Two: 2, Three: 3, Four: 4, Five: 5, Six: 6, Seven: 7,
	Eight: 8, Nine: 9, Ten: 10, Jack: 10, Queen: 10, King: 10,
}

var rankNames = map[Rank]string{
	Ace: "Ace", Two: "Two", Three: "Three", Four: "Four", Five: "Five",
	Six: "Six", Seven: "Seven", Eight: "Eight", Nine: "Nine", Ten: "Ten",
	Jack: "Jack", Queen: "Queen", King: "King",
}

var rankShort = map[Rank]string{
	Ace: "A", Two: "2", Three: "3", Four: "4", Five: "5", Six: "6", Seven: "7",
	Eight: "8", Nine: "9", Ten: "10", Jack: "J", Queen: "Q", King: "K",
}

// BaseValue returns the rank's point value with Ace counted as 1.
func (r Rank) BaseValue() int {
	return baseValues[r]
}

// IsSoft reports whether the rank can count for an extra 10 points.
func (r Rank) IsSoft() bool {
	return r == Ace
}

func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return "?"
}

// Card is an immutable (Suit, Rank) pair. The zero Card stands for a card
// that is face down and renders as "hidden".
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

func (c Card) Hidden() bool {
	return !c.Rank.Valid()
}

func (c Card) String() string {
	if c.Hidden() {
		return "hidden"
	}
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// Short renders the card as e.g. "A♠" or "10♥".
func (c Card) Short() string {
	if c.Hidden() {
		return "🂠"
	}
	return rankShort[c.Rank] + c.Suit.Symbol()
}
