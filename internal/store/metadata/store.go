// Package metadata persists the folder/file tree as one serialized
// document. Implementations read and rewrite the document in full; there
// is no partial update, no transaction log, and last writer wins.
package metadata

import (
	"context"

	"fileshelf/internal/domain/models"
)

// Store is the single source of truth for the folder/file tree.
//
// Read never fails on absent or corrupt storage: both yield an empty
// document, trading durability guarantees for availability. Write
// failures are surfaced as domain.StorageError and are fatal to the
// request that triggered them.
type Store interface {
	Read(ctx context.Context) (*models.Document, error)
	Write(ctx context.Context, doc *models.Document) error
	Close() error
}
