package decks_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomtoy/tarot-deck/internal/adapters/decks"
	"github.com/randomtoy/tarot-deck/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), nil, 0o644))
	}
}

func TestStore_Load(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "02-The High Priestess.jpg", "00-The Fool.jpg", "01-The Magician.jpg", "notes.txt", "back.png")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.jpg"), 0o755))

	c, err := decks.NewDirStore(dir, ".jpg", discardLogger()).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []domain.CardID{
		"00-The Fool",
		"01-The Magician",
		"02-The High Priestess",
	}, c.IDs())
}

func TestStore_Load_MissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nope")

	_, err := decks.NewDirStore(dir, ".jpg", discardLogger()).Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrCatalogNotFound)
}

func TestStore_Load_PathIsFile(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "card.jpg")

	_, err := decks.NewDirStore(filepath.Join(dir, "card.jpg"), ".jpg", discardLogger()).Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrCatalogNotFound)
}

func TestStore_Load_Empty(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "readme.md")

	_, err := decks.NewDirStore(dir, ".jpg", discardLogger()).Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrEmptyCatalog)
}

func TestStore_Load_DuplicateStems(t *testing.T) {
	fsys := fstest.MapFS{
		"Fool.jpg":     {Data: []byte{}},
		"Fool.JPG":     {Data: []byte{}},
		"Magician.jpg": {Data: []byte{}},
	}

	c, err := decks.NewFSStore(fsys, "mem", ".jpg", discardLogger()).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.CardID{"Fool", "Magician"}, c.IDs())
}

func TestStore_Load_ExtensionWithoutDot(t *testing.T) {
	fsys := fstest.MapFS{
		"Star.png": {Data: []byte{}},
		"Moon.jpg": {Data: []byte{}},
	}

	c, err := decks.NewFSStore(fsys, "mem", "png", discardLogger()).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.CardID{"Star"}, c.IDs())
}

func TestStore_Load_Rerunnable(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.jpg")
	s := decks.NewDirStore(dir, "", discardLogger())

	first, err := s.Load(context.Background())
	require.NoError(t, err)
	touch(t, dir, "b.jpg")
	second, err := s.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, first.Len())
	assert.Equal(t, 2, second.Len())
}

func TestStore_Load_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := decks.NewDirStore(t.TempDir(), ".jpg", discardLogger()).Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
