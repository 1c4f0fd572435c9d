package game

import "context"

// Decider supplies raw player input. Play calls it again whenever the
// input does not parse as a decision.
type Decider interface {
	Decide(ctx context.Context, r *Round) (string, error)
}

type DeciderFunc func(ctx context.Context, r *Round) (string, error)

func (f DeciderFunc) Decide(ctx context.Context, r *Round) (string, error) {
	return f(ctx, r)
}

// Play runs the player's turn to completion and returns the settled
// outcome. Unparseable input is never an error.
func (r *Round) Play(ctx context.Context, d Decider) (Outcome, error) {
	for r.state == StatePlayerDeciding {
		if err := ctx.Err(); err != nil {
			return OutcomeNone, err
		}

		input, err := d.Decide(ctx, r)
		if err != nil {
			return OutcomeNone, err
		}
		decision, ok := ParseDecision(input)
		if !ok {
			continue
		}
		if err := r.Submit(decision); err != nil {
			return OutcomeNone, err
		}
	}

	if r.err != nil {
		return OutcomeNone, r.err
	}
	return r.outcome, nil
}
