// Package console plays rounds on a terminal.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"blackjack-table/internal/game"
)

const welcome = `
  ╔═════════════════════════════╗
  ║    Welcome to Black Jack    ║
  ╚═════════════════════════════╝
`

const prompt = `
  What would you like to do?
    [1] Hit
    [2] Stay
`

var ErrInputClosed = errors.New("input closed")

type Table struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewTable(in io.Reader, out io.Writer) *Table {
	return &Table{in: bufio.NewScanner(in), out: out}
}

// Decide shows the table and reads one line. It satisfies game.Decider.
func (t *Table) Decide(_ context.Context, r *game.Round) (string, error) {
	t.show(r)
	fmt.Fprint(t.out, prompt)
	if !t.in.Scan() {
		if err := t.in.Err(); err != nil {
			return "", err
		}
		return "", ErrInputClosed
	}
	return t.in.Text(), nil
}

// Play deals one round from deck and runs it to the end.
func (t *Table) Play(ctx context.Context, deck *game.Deck) (game.Outcome, error) {
	fmt.Fprint(t.out, welcome)

	r, err := game.NewRound(deck)
	if err != nil {
		return game.OutcomeNone, err
	}
	outcome, err := r.Play(ctx, t)
	if err != nil {
		return game.OutcomeNone, err
	}

	t.show(r)
	fmt.Fprintln(t.out, "\n...And the winner is...")
	fmt.Fprintln(t.out, outcomeLine(outcome))
	return outcome, nil
}

func (t *Table) show(r *game.Round) {
	revealed := r.State() == game.StateSettled
	t.showHand("Dealer", r.DealerHand(revealed), r.DealerScoreDisplay(revealed))
	t.showHand("Player", r.PlayerHand(), r.PlayerScoreDisplay())
}

func (t *Table) showHand(title string, cards []game.Card, score string) {
	fmt.Fprintf(t.out, "\n  ┌─────────────────┐\n  │ %-15s │\n  └─────────────────┘\n", title)
	for _, c := range cards {
		fmt.Fprintf(t.out, "\t\t%s\n", c)
	}
	fmt.Fprintf(t.out, "\nScore: %s\n", score)
}

func outcomeLine(o game.Outcome) string {
	switch o {
	case game.OutcomePlayerWin:
		return "You win!"
	case game.OutcomeDealerWin:
		return "Dealer wins."
	case game.OutcomeTie:
		return "It's a tie!"
	case game.OutcomePlayerBlackjack:
		return "You win! BlackJack!"
	case game.OutcomeDealerBlackjack:
		return "You lose.. Dealer got BlackJack"
	}
	return strings.ToLower(o.String())
}
