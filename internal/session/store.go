// Package session keeps the round each chat is currently playing.
//
// Only rounds in progress are stored. A settled round is deleted by the
// caller, so nothing carries over from one round to the next.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"blackjack-table/internal/game"
)

var ErrNotFound = errors.New("no round in progress")

type Store interface {
	Get(ctx context.Context, chatID int64) (*game.Round, error)
	Save(ctx context.Context, chatID int64, round *game.Round) error
	Delete(ctx context.Context, chatID int64) error
	Close() error
}

// Sweeper is implemented by stores that do not expire entries on their own.
type Sweeper interface {
	Sweep(ctx context.Context) (int, error)
}

func encode(round *game.Round) ([]byte, error) {
	data, err := json.Marshal(round.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("failed to encode round %s: %w", round.ID(), err)
	}
	return data, nil
}

func decode(data []byte) (*game.Round, error) {
	var snap game.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode round: %w", err)
	}
	return game.Restore(snap)
}
