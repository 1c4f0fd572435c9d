package game

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedDecider struct {
	inputs []string
	asked  int
}

func (s *scriptedDecider) Decide(_ context.Context, _ *Round) (string, error) {
	if s.asked >= len(s.inputs) {
		return "", errors.New("script exhausted")
	}
	input := s.inputs[s.asked]
	s.asked++
	return input, nil
}

func TestParseDecision(t *testing.T) {
	tests := []struct {
		input string
		want  Decision
		ok    bool
	}{
		{"1", Hit, true},
		{"2", Stand, true},
		{" HIT ", Hit, true},
		{"h", Hit, true},
		{"Stay", Stand, true},
		{"stand", Stand, true},
		{"s", Stand, true},
		{"", 0, false},
		{"3", 0, false},
		{"0", 0, false},
		{"maybe", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseDecision(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlay_InvalidInputReprompts(t *testing.T) {
	r := newStackedRound(t,
		card(Ten, Clubs), card(Seven, Clubs),
		card(Ten, Hearts), card(Queen, Hearts),
		card(Two, Diamonds),
	)
	d := &scriptedDecider{inputs: []string{"", "banana", "42", "2"}}

	outcome, err := r.Play(context.Background(), d)
	require.NoError(t, err)
	assert.Equal(t, 4, d.asked)
	assert.Equal(t, OutcomePlayerWin, outcome)
	assert.Equal(t, StateSettled, r.State())
}

func TestPlay_HitThenStand(t *testing.T) {
	r := newStackedRound(t,
		card(Ten, Clubs), card(Seven, Clubs),
		card(Two, Hearts), card(Three, Hearts),
		card(Four, Hearts), card(Two, Diamonds),
	)
	d := &scriptedDecider{inputs: []string{"h", "stay"}}

	outcome, err := r.Play(context.Background(), d)
	require.NoError(t, err)
	assert.Equal(t, OutcomeDealerWin, outcome)
	assert.Len(t, r.PlayerHand(), 3)
	assert.Len(t, r.DealerHand(true), 3)
}

func TestPlay_StopsAtBust(t *testing.T) {
	r := newStackedRound(t,
		card(Ten, Clubs), card(Seven, Clubs),
		card(King, Hearts), card(Queen, Hearts),
		card(Five, Diamonds),
	)
	d := &scriptedDecider{inputs: []string{"1", "1", "1"}}

	outcome, err := r.Play(context.Background(), d)
	require.NoError(t, err)
	assert.Equal(t, 1, d.asked)
	assert.Equal(t, OutcomeDealerWin, outcome)
}

func TestPlay_ContextCanceled(t *testing.T) {
	r := newStackedRound(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Play(ctx, DeciderFunc(func(context.Context, *Round) (string, error) {
		t.Fatal("decider should not be asked")
		return "", nil
	}))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StatePlayerDeciding, r.State())
}

func TestPlay_DeciderError(t *testing.T) {
	r := newStackedRound(t)
	boom := errors.New("input closed")

	_, err := r.Play(context.Background(), DeciderFunc(func(context.Context, *Round) (string, error) {
		return "", boom
	}))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, StatePlayerDeciding, r.State())
}

func TestPlay_SettledRoundReturnsOutcome(t *testing.T) {
	r := newStackedRound(t,
		card(Ten, Clubs), card(Seven, Clubs),
		card(King, Hearts), card(Queen, Hearts),
		card(Five, Diamonds),
	)
	require.NoError(t, r.Submit(Hit))

	outcome, err := r.Play(context.Background(), &scriptedDecider{})
	require.NoError(t, err)
	assert.Equal(t, OutcomeDealerWin, outcome)
}
