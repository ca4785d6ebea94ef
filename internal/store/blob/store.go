// Package blob stores raw file content keyed by opaque ids. Ids are
// treated as flat object names: no sharding, no hashing, no
// deduplication.
package blob

import (
	"context"
	"io"
)

// Store maps a file id to its raw byte content.
//
// Get returns domain.ErrNotFound (via a NotFoundError) for an absent
// id; absence is a normal outcome used to render 404 responses. Delete
// of an absent id is a no-op so that file deletion stays idempotent
// with respect to content.
type Store interface {
	Put(ctx context.Context, id string, r io.Reader, size int64) error
	Get(ctx context.Context, id string) (io.ReadCloser, error)
	Delete(ctx context.Context, id string) error
}
