package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"blackjack-table/internal/game"
)

type SQLiteStore struct {
	db  *sql.DB
	ttl time.Duration
	now func() time.Time
}

// NewSQLiteStore expects the rounds table created by database.New.
func NewSQLiteStore(db *sql.DB, ttl time.Duration) *SQLiteStore {
	return &SQLiteStore{db: db, ttl: ttl, now: time.Now}
}

func (s *SQLiteStore) Get(ctx context.Context, chatID int64) (*game.Round, error) {
	var (
		data      string
		updatedAt int64
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT snapshot, updated_at
		FROM rounds WHERE chat_id = ?
	`, chatID).Scan(&data, &updatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get round: %w", err)
	}

	if s.ttl > 0 && updatedAt < s.cutoff() {
		return nil, ErrNotFound
	}
	return decode([]byte(data))
}

func (s *SQLiteStore) Save(ctx context.Context, chatID int64, round *game.Round) error {
	data, err := encode(round)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO rounds (chat_id, round_id, snapshot, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(chat_id) DO UPDATE SET
			round_id = excluded.round_id,
			snapshot = excluded.snapshot,
			updated_at = excluded.updated_at
	`, chatID, round.ID().String(), string(data), s.now().Unix())

	if err != nil {
		return fmt.Errorf("failed to save round: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, chatID int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM rounds WHERE chat_id = ?`, chatID); err != nil {
		return fmt.Errorf("failed to delete round: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Sweep(ctx context.Context) (int, error) {
	if s.ttl <= 0 {
		return 0, nil
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM rounds WHERE updated_at < ?`, s.cutoff())
	if err != nil {
		return 0, fmt.Errorf("failed to sweep rounds: %w", err)
	}
	n, err := res.RowsAffected()
	return int(n), err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) cutoff() int64 {
	return s.now().Add(-s.ttl).Unix()
}
