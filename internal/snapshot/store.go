package snapshot

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/osse101/PrizeDraw_Go/internal/domain"
	"github.com/osse101/PrizeDraw_Go/internal/logger"
)

// Store persists a single draw session. Load returns an empty session when
// nothing has been saved yet; a non-nil snapshot returned together with a
// domain.ErrLedgerUnreadable error must still be used, with the session blocked.
type Store interface {
	Load(ctx context.Context) (*domain.Snapshot, error)
	Save(ctx context.Context, snap *domain.Snapshot) error
}

// FileStore keeps the snapshot in a JSON file, replaced atomically on save
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store for the given path. The directory is created on first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads and decodes the snapshot file
func (s *FileStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		logger.FromContext(ctx).Info(LogMsgSnapshotMissing, "path", s.path)
		return domain.EmptySnapshot(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: "+ErrContextPath, domain.ErrSnapshotLoad, s.path, err)
	}
	return Decode(ctx, data)
}

// Save writes the snapshot to a temporary file and renames it over the old one
func (s *FileStore) Save(ctx context.Context, snap *domain.Snapshot) error {
	data, err := Encode(snap)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSnapshotSave, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, DirPermissions); err != nil {
		return fmt.Errorf("%w: "+ErrContextPath, domain.ErrSnapshotSave, dir, err)
	}

	tmp, err := os.CreateTemp(dir, TempFilePattern)
	if err != nil {
		return fmt.Errorf("%w: "+ErrContextPath, domain.ErrSnapshotSave, dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: "+ErrContextPath, domain.ErrSnapshotSave, tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: "+ErrContextPath, domain.ErrSnapshotSave, tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: "+ErrContextPath, domain.ErrSnapshotSave, tmpName, err)
	}
	if err := os.Chmod(tmpName, FilePermissions); err != nil {
		return fmt.Errorf("%w: "+ErrContextPath, domain.ErrSnapshotSave, tmpName, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("%w: "+ErrContextPath, domain.ErrSnapshotSave, s.path, err)
	}

	logger.FromContext(ctx).Debug(LogMsgSnapshotSaved, "path", s.path, "bytes", len(data))
	return nil
}

// Delete removes the snapshot file. A missing file is not an error.
func (s *FileStore) Delete(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: "+ErrContextPath, domain.ErrSnapshotSave, s.path, err)
	}
	logger.FromContext(ctx).Info(LogMsgSnapshotDeleted, "path", s.path)
	return nil
}

// Path returns the file the store writes to
func (s *FileStore) Path() string {
	return s.path
}

// MemoryStore keeps the encoded snapshot in memory. It goes through the same
// codec as the persistent stores.
type MemoryStore struct {
	mu    sync.Mutex
	data  []byte
	saves int
	err   error
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load decodes the last saved snapshot
func (s *MemoryStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	s.mu.Lock()
	data := s.data
	s.mu.Unlock()
	return Decode(ctx, data)
}

// Save encodes and keeps the snapshot, or returns the error set with FailWith
func (s *MemoryStore) Save(ctx context.Context, snap *domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSnapshotSave, s.err)
	}
	data, err := Encode(snap)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSnapshotSave, err)
	}
	s.data = data
	s.saves++
	return nil
}

// FailWith makes subsequent saves fail with err; nil restores normal saves
func (s *MemoryStore) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Saves returns the number of successful saves
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

// Raw returns the last encoded snapshot
func (s *MemoryStore) Raw() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte(nil), s.data...)
}

// SetRaw replaces the stored bytes, for loading legacy or damaged documents
func (s *MemoryStore) SetRaw(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append([]byte(nil), data...)
}
