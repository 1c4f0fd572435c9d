package session

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blackjack-table/internal/config"
	"blackjack-table/internal/database"
	"blackjack-table/internal/game"
)

type fakeRedis struct {
	mu     sync.Mutex
	values map[string]string
	ttls   map[string]time.Duration
	closed bool
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = string(value.([]byte))
	f.ttls[key] = ttl
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, k := range keys {
		if _, ok := f.values[k]; ok {
			delete(f.values, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func (f *fakeRedis) Close() error {
	f.closed = true
	return nil
}

func newSQLiteStore(t *testing.T, ttl time.Duration) *SQLiteStore {
	t.Helper()
	db, err := database.New(filepath.Join(t.TempDir(), "rounds.db"))
	require.NoError(t, err)
	s := NewSQLiteStore(db.DB, ttl)
	t.Cleanup(func() { s.Close() })
	return s
}

func newRound(t *testing.T, seed int64) *game.Round {
	t.Helper()
	r, err := game.NewRound(game.NewSeededDeck(seed))
	require.NoError(t, err)
	return r
}

func TestStores(t *testing.T) {
	stores := map[string]func(t *testing.T) Store{
		"memory": func(t *testing.T) Store { return NewMemoryStore(time.Hour) },
		"sqlite": func(t *testing.T) Store { return newSQLiteStore(t, time.Hour) },
		"redis":  func(t *testing.T) Store { return NewRedisStore(newFakeRedis(), time.Hour) },
	}

	for name, open := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := open(t)

			_, err := s.Get(ctx, 1)
			assert.ErrorIs(t, err, ErrNotFound)

			r := newRound(t, 9)
			require.NoError(t, s.Save(ctx, 1, r))

			got, err := s.Get(ctx, 1)
			require.NoError(t, err)
			assert.Equal(t, r.ID(), got.ID())
			assert.Equal(t, r.PlayerHand(), got.PlayerHand())
			assert.Equal(t, r.DealerHand(true), got.DealerHand(true))
			assert.Equal(t, game.StatePlayerDeciding, got.State())

			// A loaded round is a copy until it is saved again.
			require.NoError(t, got.Submit(game.Stand))
			again, err := s.Get(ctx, 1)
			require.NoError(t, err)
			assert.Equal(t, game.StatePlayerDeciding, again.State())

			require.NoError(t, s.Save(ctx, 1, got))
			again, err = s.Get(ctx, 1)
			require.NoError(t, err)
			assert.Equal(t, game.StateSettled, again.State())
			assert.Equal(t, got.Outcome(), again.Outcome())

			_, err = s.Get(ctx, 2)
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, s.Delete(ctx, 1))
			_, err = s.Get(ctx, 1)
			assert.ErrorIs(t, err, ErrNotFound)
			require.NoError(t, s.Delete(ctx, 1))
		})
	}
}

func TestMemoryStore_Expires(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewMemoryStore(10 * time.Minute)
	s.now = func() time.Time { return now }

	require.NoError(t, s.Save(ctx, 1, newRound(t, 1)))
	require.NoError(t, s.Save(ctx, 2, newRound(t, 2)))

	now = now.Add(5 * time.Minute)
	require.NoError(t, s.Save(ctx, 2, newRound(t, 2)))

	now = now.Add(6 * time.Minute)
	_, err := s.Get(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Get(ctx, 2)
	assert.NoError(t, err)

	removed, err := s.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
}

func TestSQLiteStore_Expires(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s := newSQLiteStore(t, 10*time.Minute)
	s.now = func() time.Time { return now }

	require.NoError(t, s.Save(ctx, 1, newRound(t, 1)))
	require.NoError(t, s.Save(ctx, 2, newRound(t, 2)))

	now = now.Add(5 * time.Minute)
	require.NoError(t, s.Save(ctx, 2, newRound(t, 2)))

	now = now.Add(6 * time.Minute)
	_, err := s.Get(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Get(ctx, 2)
	assert.NoError(t, err)

	removed, err := s.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
}

func TestSQLiteStore_CorruptRow(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStore(t, time.Hour)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO rounds (chat_id, round_id, snapshot, updated_at) VALUES (?, ?, ?, ?)`,
		7, "x", `{"deck":[]}`, time.Now().Unix())
	require.NoError(t, err)

	_, err = s.Get(ctx, 7)
	assert.ErrorIs(t, err, game.ErrCorruptSnapshot)
}

func TestRedisStore_KeyAndTTL(t *testing.T) {
	ctx := context.Background()
	client := newFakeRedis()
	s := NewRedisStore(client, 15*time.Minute)

	require.NoError(t, s.Save(ctx, 42, newRound(t, 3)))
	assert.Contains(t, client.values, "blackjack:round:42")
	assert.Equal(t, 15*time.Minute, client.ttls["blackjack:round:42"])

	require.NoError(t, s.Close())
	assert.True(t, client.closed)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	mem, err := Open(ctx, &config.Config{SessionStore: config.StoreMemory, SessionTTL: time.Minute}, logger)
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, mem)

	lite, err := Open(ctx, &config.Config{
		SessionStore: config.StoreSQLite,
		DatabasePath: filepath.Join(t.TempDir(), "rounds.db"),
		SessionTTL:   time.Minute,
	}, logger)
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, lite)
	require.NoError(t, lite.Close())

	_, err = Open(ctx, &config.Config{SessionStore: config.StoreRedis, RedisURL: "not a url"}, logger)
	assert.Error(t, err)

	_, err = Open(ctx, &config.Config{SessionStore: "etcd"}, logger)
	assert.Error(t, err)
}
