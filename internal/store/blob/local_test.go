package blob

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"fileshelf/internal/domain"
)

func newTestLocal(t *testing.T) *LocalStore {
	t.Helper()
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}
	return store
}

func TestLocalPutGetDelete(t *testing.T) {
	store := newTestLocal(t)
	ctx := context.Background()

	content := "some bytes"
	if err := store.Put(ctx, "id-1", strings.NewReader(content), int64(len(content))); err != nil {
		t.Fatalf("Put: %v", err)
	}

	rc, err := store.Get(ctx, "id-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	got, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		t.Fatalf("read blob: %v", err)
	}
	if !bytes.Equal(got, []byte(content)) {
		t.Errorf("content = %q, want %q", got, content)
	}

	if err := store.Delete(ctx, "id-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(ctx, "id-1"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Get after delete: expected not found, got %v", err)
	}
}

func TestLocalPutOverwrites(t *testing.T) {
	store := newTestLocal(t)
	ctx := context.Background()

	if err := store.Put(ctx, "id-1", strings.NewReader("old"), 3); err != nil {
		t.Fatalf("first Put: %v", err)
	}
	if err := store.Put(ctx, "id-1", strings.NewReader("newer"), 5); err != nil {
		t.Fatalf("second Put: %v", err)
	}

	rc, err := store.Get(ctx, "id-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	defer rc.Close()
	got, _ := io.ReadAll(rc)
	if string(got) != "newer" {
		t.Errorf("content = %q, want newer", got)
	}
}

func TestLocalGetAbsent(t *testing.T) {
	store := newTestLocal(t)

	_, err := store.Get(context.Background(), "nope")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestLocalDeleteAbsentIsNoop(t *testing.T) {
	store := newTestLocal(t)

	if err := store.Delete(context.Background(), "nope"); err != nil {
		t.Fatalf("delete of absent blob should be a no-op, got %v", err)
	}
}
