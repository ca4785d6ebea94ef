package metadata

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"fileshelf/internal/domain/models"
)

func newTestStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := NewFileStore(dir, logger)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return store, dir
}

func TestFileStoreInitializesEmptyDocument(t *testing.T) {
	store, dir := newTestStore(t)

	if _, err := os.Stat(filepath.Join(dir, "metadata.json")); err != nil {
		t.Fatalf("metadata.json not created: %v", err)
	}

	doc, err := store.Read(context.Background())
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(doc.Folders) != 0 || len(doc.Files) != 0 {
		t.Errorf("fresh store not empty: %+v", doc)
	}
	if doc.Folders == nil || doc.Files == nil {
		t.Error("fresh document has nil slices")
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	parent := "p1"
	doc := &models.Document{
		Folders: []models.Folder{
			{ID: "p1", Name: "parent"},
			{ID: "c1", Name: "child", ParentID: &parent},
		},
		Files: []models.File{
			{ID: "f1", Name: "a.txt", Size: 3, FolderID: &parent},
		},
	}

	if err := store.Write(ctx, doc); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := store.Read(ctx)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got.Folders) != 2 || len(got.Files) != 1 {
		t.Fatalf("round trip lost entries: %+v", got)
	}
	if got.Folders[1].ParentID == nil || *got.Folders[1].ParentID != "p1" {
		t.Errorf("ParentID lost in round trip: %+v", got.Folders[1])
	}
}

func TestFileStoreCorruptionReadsAsEmpty(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not json", content: "{{{{ definitely not json"},
		{name: "wrong shape", content: `"just a string"`},
		{name: "empty file", content: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, dir := newTestStore(t)

			path := filepath.Join(dir, "metadata.json")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("corrupt metadata: %v", err)
			}

			doc, err := store.Read(context.Background())
			if err != nil {
				t.Fatalf("Read on corrupt store: %v", err)
			}
			if len(doc.Folders) != 0 || len(doc.Files) != 0 {
				t.Errorf("corrupt store read as non-empty: %+v", doc)
			}
		})
	}
}

func TestFileStoreMissingFileReadsAsEmpty(t *testing.T) {
	store, dir := newTestStore(t)

	if err := os.Remove(filepath.Join(dir, "metadata.json")); err != nil {
		t.Fatalf("remove metadata: %v", err)
	}

	doc, err := store.Read(context.Background())
	if err != nil {
		t.Fatalf("Read on missing store: %v", err)
	}
	if len(doc.Folders) != 0 || len(doc.Files) != 0 {
		t.Errorf("missing store read as non-empty: %+v", doc)
	}
}

func TestFileStoreWriteLeavesNoTempFile(t *testing.T) {
	store, dir := newTestStore(t)

	if err := store.Write(context.Background(), models.NewDocument()); err != nil {
		t.Fatalf("Write: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	for _, e := range entries {
		if e.Name() != "metadata.json" {
			t.Errorf("unexpected leftover %s", e.Name())
		}
	}
}
