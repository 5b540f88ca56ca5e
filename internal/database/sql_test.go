package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) Store {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") + "?mode=rwc"
	s, err := Open(context.Background(), Config{Driver: DriverSQLite, DSN: dsn})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPutGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	created := time.Date(2017, 3, 14, 9, 26, 53, 0, time.UTC)
	rec := Record{Filepath: "abc.wav", Created: created}
	require.NoError(t, s.Put(ctx, "abc", rec))

	got, err := s.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestPutOverwrites(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "k", Record{Filepath: "old.wav", Created: time.Now().UTC()}))
	latest := Record{Filepath: "new.wav", Created: time.Now().UTC().Truncate(time.Second)}
	require.NoError(t, s.Put(ctx, "k", latest))

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "new.wav", got.Filepath)
}

func TestGetMissing(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNoRecord)
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), Config{Driver: Driver("mongodb")})
	assert.Error(t, err)
}
