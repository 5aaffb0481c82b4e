package snapshot

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PrizeDraw_Go/internal/domain"
)

func TestFileStore_MissingFileLoadsEmpty(t *testing.T) {
	t.Parallel()

	store := NewFileStore(filepath.Join(t.TempDir(), "none.json"))
	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.EmptySnapshot(), got)
}

func TestFileStore_SaveLoad(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "nested", "dir", "draw.json")
	store := NewFileStore(path)
	assert.Equal(t, path, store.Path())

	snap := sampleSnapshot()
	require.NoError(t, store.Save(ctx, snap))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, snap, got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(FilePermissions), info.Mode().Perm())

	// Overwrite and make sure no temp files are left behind
	snap.TierIndex = 0
	require.NoError(t, store.Save(ctx, snap))
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	got, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, got.TierIndex)
}

func TestFileStore_CorruptFileFlagsLedger(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "draw.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"participants":[{"id":"E1","name":"A"}],"winnerLedger":7}`), 0o600))

	got, err := NewFileStore(path).Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrLedgerUnreadable)
	require.NotNil(t, got)
	assert.Len(t, got.Participants, 1)
}

func TestFileStore_NotJSONFlagsWholeDocument(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "draw.json")
	require.NoError(t, os.WriteFile(path, []byte("participants: [E1]"), 0o600))

	got, err := NewFileStore(path).Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrSnapshotUnreadable)
	assert.ErrorIs(t, err, domain.ErrLedgerUnreadable)
	assert.True(t, domain.IsDataIntegrity(err))
	require.NotNil(t, got)
	assert.Empty(t, got.Participants)
}

func TestFileStore_Delete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "draw.json")
	store := NewFileStore(path)
	require.NoError(t, store.Save(ctx, domain.EmptySnapshot()))

	require.NoError(t, store.Delete(ctx))
	_, err := os.Stat(path)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	// Deleting again is fine
	require.NoError(t, store.Delete(ctx))
}

func TestFileStore_UnreadablePath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	// A directory where the file should be cannot be read as a snapshot
	path := filepath.Join(dir, "draw.json")
	require.NoError(t, os.Mkdir(path, 0o750))

	_, err := NewFileStore(path).Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrSnapshotLoad)

	err = NewFileStore(path).Save(context.Background(), sampleSnapshot())
	assert.ErrorIs(t, err, domain.ErrSnapshotSave)
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := NewMemoryStore()
	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.EmptySnapshot(), got)

	require.NoError(t, store.Save(ctx, sampleSnapshot()))
	assert.Equal(t, 1, store.Saves())
	assert.Contains(t, string(store.Raw()), `"drawMode":"batch"`)

	store.FailWith(errors.New("disk full"))
	err = store.Save(ctx, sampleSnapshot())
	assert.ErrorIs(t, err, domain.ErrSnapshotSave)
	assert.Equal(t, 1, store.Saves())

	store.FailWith(nil)
	store.SetRaw([]byte(`{"employees":[{"id":"E9","name":"Legacy"}]}`))
	got, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "E9", got.Participants[0].ID)
}
