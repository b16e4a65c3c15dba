package localstate

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cerebrohq/cerebro/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFileStoreMissingFileIsEmpty(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	doc, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, doc.Watchlist)
	assert.Empty(t, doc.SeenArticles)
}

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	want := Document{
		Watchlist:    []string{"israel-gaza", "ukraine-russia"},
		SeenArticles: []string{"https://example.com/1", "https://example.com/2"},
		Theme:        ThemeLight,
	}
	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFileStoreCorruptFileIsEmptyWithError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, stateFileName), []byte("{not json"), 0o644))

	store, err := NewFileStore(dir)
	require.NoError(t, err)

	doc, err := store.Load()
	assert.True(t, errors.Is(err, domain.ErrStorageUnavailable))
	assert.Empty(t, doc.Watchlist, "a corrupt store degrades to empty state")
}

func TestSessionDegradesOnCorruptStore(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, stateFileName), []byte("garbage"), 0o644))

	store, err := NewFileStore(dir)
	require.NoError(t, err)

	session := NewSession(store, discardLogger())
	assert.Equal(t, 0, session.WatchedCount())
	assert.Equal(t, ThemeDark, session.Theme())
}

func TestSessionToggleWatchPersists(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	session := NewSession(store, discardLogger())
	session.ToggleWatch("ukraine-russia")
	session.ToggleWatch("sudan-civil-war")
	assert.True(t, session.IsWatched("ukraine-russia"))
	assert.Equal(t, 2, session.WatchedCount())

	// A fresh session over the same store sees the persisted watchlist.
	reloaded := NewSession(store, discardLogger())
	assert.True(t, reloaded.IsWatched("sudan-civil-war"))

	reloaded.ToggleWatch("ukraine-russia")
	assert.False(t, reloaded.IsWatched("ukraine-russia"))
	assert.Equal(t, 1, reloaded.WatchedCount())
}
