package services

import (
	"context"

	"fileshelf/internal/domain/models"
)

// StructureService exposes the full metadata document
type StructureService interface {
	// GetStructure returns the complete folder/file tree
	GetStructure(ctx context.Context) (*models.Document, error)
}
