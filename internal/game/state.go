package game

import "strings"

type State int

const (
	StateDealing State = iota
	StatePlayerDeciding
	StatePlayerBusted
	StatePlayerBlackjack
	StatePlayerStood
	StateDealerPlaying
	StateSettled
)

var stateNames = map[State]string{
	StateDealing:         "Dealing",
	StatePlayerDeciding:  "PlayerDeciding",
	StatePlayerBusted:    "PlayerBusted",
	StatePlayerBlackjack: "PlayerBlackjack",
	StatePlayerStood:     "PlayerStood",
	StateDealerPlaying:   "DealerPlaying",
	StateSettled:         "Settled",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "Unknown"
}

type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomePlayerWin
	OutcomeDealerWin
	OutcomeTie
	OutcomePlayerBlackjack
	OutcomeDealerBlackjack
)

var outcomeNames = map[Outcome]string{
	OutcomeNone:            "None",
	OutcomePlayerWin:       "PlayerWin",
	OutcomeDealerWin:       "DealerWin",
	OutcomeTie:             "Tie",
	OutcomePlayerBlackjack: "PlayerBlackjack",
	OutcomeDealerBlackjack: "DealerBlackjack",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return "Unknown"
}

type Decision int

const (
	Hit Decision = iota + 1
	Stand
)

func (d Decision) String() string {
	switch d {
	case Hit:
		return "Hit"
	case Stand:
		return "Stand"
	}
	return "?"
}

// ParseDecision accepts the menu numbers "1" (hit) and "2" (stand) as
// well as the words hit, h, stand, stay and s. ok is false for anything
// else, which callers treat as no decision yet.
func ParseDecision(input string) (d Decision, ok bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "1", "hit", "h":
		return Hit, true
	case "2", "stand", "stay", "s":
		return Stand, true
	}
	return 0, false
}

type Role int

const (
	RolePlayer Role = iota
	RoleDealer
)

func (r Role) String() string {
	if r == RoleDealer {
		return "Dealer"
	}
	return "Player"
}

// Participant owns a hand and the score derived from it. Every change to
// the hand goes through add so the score is recomputed before it is read.
type Participant struct {
	Role  Role
	hand  *Hand
	score Score
}

func newParticipant(role Role, hand *Hand) *Participant {
	p := &Participant{Role: role, hand: hand}
	p.rescore()
	return p
}

func (p *Participant) add(c Card) {
	p.hand.AddCard(c)
	p.rescore()
}

func (p *Participant) rescore() {
	p.score = p.hand.Score()
}

func (p *Participant) Cards() []Card {
	return p.hand.Cards()
}

func (p *Participant) Score() Score {
	return p.score
}
