package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_CreatesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rounds.db")

	db, err := New(path)
	require.NoError(t, err)
	defer db.Close()

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'rounds'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "rounds", name)
}

func TestNew_MigrateIsRepeatable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rounds.db")

	first, err := New(path)
	require.NoError(t, err)
	_, err = first.Exec(`INSERT INTO rounds (chat_id, round_id, snapshot, updated_at) VALUES (1, 'r', '{}', 0)`)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := New(path)
	require.NoError(t, err)
	defer second.Close()

	var count int
	require.NoError(t, second.QueryRow(`SELECT COUNT(*) FROM rounds`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestNew_BadPath(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing", "dir", "rounds.db"))
	assert.Error(t, err)
}
