package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oluyale/portfolio/internal/navstate"
	"github.com/oluyale/portfolio/internal/pages"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "test.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenMemory(t *testing.T) {
	db, err := Open(context.Background(), MemoryPath, nil)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM sessions`).Scan(&n))
	assert.Zero(t, n)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "again.db")
	db, err := Open(context.Background(), path, nil)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(context.Background(), path, nil)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}

func TestSessionStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(openTestDB(t))

	st, err := store.Load(ctx, "unknown")
	require.NoError(t, err)
	assert.Equal(t, navstate.New(), st)

	for _, id := range pages.All() {
		require.NoError(t, store.Save(ctx, "s1", navstate.State{Page: id, MenuOpen: true}))
		st, err = store.Load(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, id, st.Page)
		assert.True(t, st.MenuOpen)
	}

	require.NoError(t, store.Delete(ctx, "s1"))
	st, err = store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, pages.Home, st.Page)
}

func TestSessionStoreNormalizesPage(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	store := NewSessionStore(db)

	_, err := db.Exec(`INSERT INTO sessions (id, page, menu_open, updated_at) VALUES ('x', 'Blog', 0, 0)`)
	require.NoError(t, err)
	st, err := store.Load(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, pages.Home, st.Page)

	require.NoError(t, store.Save(ctx, "y", navstate.State{Page: "Blog"}))
	st, err = store.Load(ctx, "y")
	require.NoError(t, err)
	assert.Equal(t, pages.Home, st.Page)
}

func TestSessionStorePrune(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(openTestDB(t))
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	store.now = func() time.Time { return base }
	require.NoError(t, store.Save(ctx, "old", navstate.New()))
	store.now = func() time.Time { return base.Add(time.Hour) }
	require.NoError(t, store.Save(ctx, "new", navstate.New()))

	n, err := store.Prune(ctx, base.Add(30*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	st, err := store.Load(ctx, "new")
	require.NoError(t, err)
	assert.Equal(t, base.Add(time.Hour), st.UpdatedAt)
}
