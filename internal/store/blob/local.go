package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"fileshelf/internal/domain"
)

// LocalStore keeps one file per blob in a flat directory; the blob
// filename is the file id, with no extension.
type LocalStore struct {
	dir string
}

// NewLocalStore ensures the blob directory exists and returns the store.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &domain.StorageError{Op: "create blob directory", Err: err}
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) objectPath(id string) string {
	// Ids are server-generated UUIDs; Base strips anything path-like
	// that might arrive through a hand-crafted request.
	return filepath.Join(s.dir, filepath.Base(id))
}

// Put writes content under the given id, overwriting any existing blob.
func (s *LocalStore) Put(ctx context.Context, id string, r io.Reader, size int64) error {
	f, err := os.Create(s.objectPath(id))
	if err != nil {
		return &domain.StorageError{Op: fmt.Sprintf("create blob %s", id), Err: err}
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(s.objectPath(id))
		return &domain.StorageError{Op: fmt.Sprintf("write blob %s", id), Err: err}
	}

	if err := f.Close(); err != nil {
		return &domain.StorageError{Op: fmt.Sprintf("close blob %s", id), Err: err}
	}
	return nil
}

// Get opens the blob for reading. Absence maps to NotFoundError.
func (s *LocalStore) Get(ctx context.Context, id string) (io.ReadCloser, error) {
	f, err := os.Open(s.objectPath(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &domain.NotFoundError{Message: fmt.Sprintf("blob %s not found", id)}
		}
		return nil, &domain.StorageError{Op: fmt.Sprintf("open blob %s", id), Err: err}
	}
	return f, nil
}

// Delete removes the blob. Deleting an absent id is a no-op.
func (s *LocalStore) Delete(ctx context.Context, id string) error {
	if err := os.Remove(s.objectPath(id)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &domain.StorageError{Op: fmt.Sprintf("delete blob %s", id), Err: err}
	}
	return nil
}
