package metadata

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fileshelf/internal/domain"
	"fileshelf/internal/domain/models"
)

// PostgresStore keeps the serialized document in a single row instead
// of a file on disk. The whole-document semantics are identical to
// FileStore: Read selects the one row, Write upserts it. The row upsert
// also gives writes the atomicity the file store gets from rename.
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

const metadataTable = "fileshelf_metadata"

// NewPostgresStore connects, ensures the single-row table exists, and
// returns the store.
func NewPostgresStore(ctx context.Context, databaseURL string, logger *slog.Logger) (*PostgresStore, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, &domain.StorageError{Op: "parse database url", Err: err}
	}
	config.MaxConns = 10

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, &domain.StorageError{Op: "create connection pool", Err: err}
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, &domain.StorageError{Op: "ping database", Err: err}
	}

	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS `+metadataTable+` (
			id  int PRIMARY KEY,
			doc jsonb NOT NULL
		)
	`)
	if err != nil {
		pool.Close()
		return nil, &domain.StorageError{Op: "ensure metadata table", Err: err}
	}

	return &PostgresStore{pool: pool, logger: logger}, nil
}

// Read loads the full document from the single row. A missing row or an
// unparsable document is downgraded to an empty document, matching the
// file store's availability-over-correctness policy.
func (s *PostgresStore) Read(ctx context.Context) (*models.Document, error) {
	var data []byte
	err := s.pool.QueryRow(ctx, `SELECT doc FROM `+metadataTable+` WHERE id = 1`).Scan(&data)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			s.logger.Warn("metadata read failed, treating as empty", "error", err)
		}
		return models.NewDocument(), nil
	}

	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Warn("metadata unparsable, treating as empty", "error", err)
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

// Write upserts the full document into the single row.
func (s *PostgresStore) Write(ctx context.Context, doc *models.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return &domain.StorageError{Op: "encode metadata", Err: err}
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO `+metadataTable+` (id, doc) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc
	`, data)
	if err != nil {
		return &domain.StorageError{Op: "write metadata", Err: err}
	}

	return nil
}

// Close releases the connection pool.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
