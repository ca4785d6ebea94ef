package service

import (
	"context"
	"log/slog"

	"fileshelf/internal/domain/models"
	"fileshelf/internal/domain/services"
	"fileshelf/internal/store/metadata"
)

type structureService struct {
	meta   metadata.Store
	logger *slog.Logger
}

// NewStructureService creates a new structure service.
func NewStructureService(meta metadata.Store, logger *slog.Logger) services.StructureService {
	return &structureService{meta: meta, logger: logger}
}

// GetStructure returns the complete folder/file tree.
func (s *structureService) GetStructure(ctx context.Context) (*models.Document, error) {
	return s.meta.Read(ctx)
}
