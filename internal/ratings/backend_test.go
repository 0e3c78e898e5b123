package ratings

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/campanini-sabores/storefront/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundTrip submits ratings through one store and reloads them through another
func roundTrip(t *testing.T, backend Backend) {
	t.Helper()
	ctx := context.Background()

	first := NewStore(backend, discardLogger())
	first.Load(ctx)

	var submitted []models.Rating
	for _, in := range []struct {
		productID string
		score     int
		comment   string
	}{
		{"1", 5, "Excelente!"},
		{"2", 3, ""},
		{"1", 4, "com \"aspas\" e\nquebra"},
	} {
		r, err := first.Submit(ctx, in.productID, in.score, in.comment)
		require.NoError(t, err)
		submitted = append(submitted, r)
	}

	second := NewStore(backend, discardLogger())
	second.Load(ctx)

	assert.Equal(t, submitted, second.All())
	assert.Equal(t, 4.5, second.AverageFor("1"))
}

func TestMemoryBackend_RoundTrip(t *testing.T) {
	roundTrip(t, NewMemoryBackend())
}

func TestFileBackend_RoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	backend, err := NewFileBackend(dir)
	require.NoError(t, err)

	roundTrip(t, backend)

	assert.Equal(t, filepath.Join(dir, "campanini_ratings.json"), backend.Path())
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestFileBackend_ReadMissing(t *testing.T) {
	backend, err := NewFileBackend(t.TempDir())
	require.NoError(t, err)

	_, err = backend.Read(context.Background())
	assert.ErrorIs(t, err, ErrNoData)
}

func TestFileBackend_CorruptFileLoadsEmpty(t *testing.T) {
	dir := t.TempDir()
	backend, err := NewFileBackend(dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(backend.Path(), []byte("[{\"id\":"), 0o644))

	s := NewStore(backend, discardLogger())
	s.Load(context.Background())
	assert.Empty(t, s.All())

	// The next submission overwrites the corrupt file
	_, err = s.Submit(context.Background(), "3", 5, "")
	require.NoError(t, err)

	reloaded := NewStore(backend, discardLogger())
	reloaded.Load(context.Background())
	assert.Len(t, reloaded.All(), 1)
}

func TestLevelDBBackend_RoundTrip(t *testing.T) {
	backend, err := OpenLevelDB(filepath.Join(t.TempDir(), "ratings.ldb"))
	require.NoError(t, err)
	defer backend.Close()

	roundTrip(t, backend)
}

func TestLevelDBBackend_InMemory(t *testing.T) {
	backend, err := OpenLevelDBInMemory()
	require.NoError(t, err)
	defer backend.Close()

	_, err = backend.Read(context.Background())
	assert.ErrorIs(t, err, ErrNoData)

	roundTrip(t, backend)
}

func TestLevelDBBackend_ReopenKeepsRatings(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "ratings.ldb")

	backend, err := OpenLevelDB(path)
	require.NoError(t, err)
	s := NewStore(backend, discardLogger())
	_, err = s.Submit(ctx, "5", 2, "")
	require.NoError(t, err)
	require.NoError(t, backend.Close())

	backend, err = OpenLevelDB(path)
	require.NoError(t, err)
	defer backend.Close()

	reloaded := NewStore(backend, discardLogger())
	reloaded.Load(ctx)
	assert.Equal(t, 2.0, reloaded.AverageFor("5"))
}
