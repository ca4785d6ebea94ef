package metadata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"fileshelf/internal/domain"
	"fileshelf/internal/domain/models"
)

// FileStore keeps the document in a single JSON file under the data
// directory. Writes go through a temp file followed by an atomic rename
// so a crash mid-write never leaves a half-written document behind; a
// mutex serializes writers within the process.
type FileStore struct {
	path   string
	logger *slog.Logger
	mu     sync.Mutex
}

// NewFileStore creates the data directory and an empty document on
// first use, then returns the store.
func NewFileStore(dataDir string, logger *slog.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, &domain.StorageError{Op: "create data directory", Err: err}
	}

	s := &FileStore{
		path:   filepath.Join(dataDir, "metadata.json"),
		logger: logger,
	}

	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		if err := s.Write(context.Background(), models.NewDocument()); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Read loads the full document. An absent, unreadable, or unparsable
// file is downgraded to an empty document rather than failing the
// caller.
func (s *FileStore) Read(ctx context.Context) (*models.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("metadata read failed, treating as empty", "path", s.path, "error", err)
		}
		return models.NewDocument(), nil
	}

	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Warn("metadata unparsable, treating as empty", "path", s.path, "error", err)
		return models.NewDocument(), nil
	}

	if doc.Folders == nil {
		doc.Folders = []models.Folder{}
	}
	if doc.Files == nil {
		doc.Files = []models.File{}
	}

	return &doc, nil
}

// Write serializes the full document and replaces the backing file in
// one rename.
func (s *FileStore) Write(ctx context.Context, doc *models.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &domain.StorageError{Op: "encode metadata", Err: err}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return &domain.StorageError{Op: "write metadata", Err: err}
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return &domain.StorageError{Op: fmt.Sprintf("replace %s", s.path), Err: err}
	}

	return nil
}

// Close implements Store. The file store holds no open handles.
func (s *FileStore) Close() error { return nil }
