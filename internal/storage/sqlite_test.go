package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "sessions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "a", "b", "sessions.db")
	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.fogofwar/sessions.db")
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(filepath.Join(home, ".fogofwar", "sessions.db"))
	assert.NoError(t, err)
}

func TestStoreSaveAndList(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	first := Session{
		StartedAt:    base,
		Duration:     90 * time.Second,
		VisionRadius: 320,
		FadeWidth:    40,
		Frames:       5400,
		AvgFPS:       60,
		AvgFrameMS:   16.6,
		MinFrameMS:   15.9,
		MaxFrameMS:   33.1,
		WorldSeed:    42,
	}
	id, err := store.SaveSession(ctx, first)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	second := first
	second.ID = "fixed-id"
	second.StartedAt = base.Add(time.Hour)
	second.VisionRadius = 200
	id2, err := store.SaveSession(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", id2)

	sessions, err := store.RecentSessions(ctx, 10)
	require.NoError(t, err)
	require.Len(t, sessions, 2)

	// Newest first.
	assert.Equal(t, "fixed-id", sessions[0].ID)
	assert.Equal(t, 200.0, sessions[0].VisionRadius)
	assert.Equal(t, id, sessions[1].ID)

	got := sessions[1]
	assert.True(t, got.StartedAt.Equal(base), "started_at %v", got.StartedAt)
	assert.Equal(t, 90*time.Second, got.Duration)
	assert.Equal(t, int64(5400), got.Frames)
	assert.Equal(t, 33.1, got.MaxFrameMS)
	assert.Equal(t, int64(42), got.WorldSeed)
}

func TestStoreRecentSessionsLimit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		_, err := store.SaveSession(ctx, Session{StartedAt: base.Add(time.Duration(i) * time.Minute), FadeWidth: 40})
		require.NoError(t, err)
	}

	sessions, err := store.RecentSessions(ctx, 3)
	require.NoError(t, err)
	require.Len(t, sessions, 3)
	assert.True(t, sessions[0].StartedAt.Equal(base.Add(4*time.Minute)))

	sessions, err = store.RecentSessions(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, sessions, 5)
}

func TestStoreDuplicateID(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	_, err := store.SaveSession(ctx, Session{ID: "dup", StartedAt: time.Now()})
	require.NoError(t, err)
	_, err = store.SaveSession(ctx, Session{ID: "dup", StartedAt: time.Now()})
	assert.Error(t, err)
}
