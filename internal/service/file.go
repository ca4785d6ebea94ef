package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"fileshelf/internal/domain"
	"fileshelf/internal/domain/models"
	"fileshelf/internal/domain/services"
	"fileshelf/internal/store/blob"
	"fileshelf/internal/store/metadata"
)

type fileService struct {
	meta   metadata.Store
	blobs  blob.Store
	mu     *sync.Mutex // shared with the folder service
	logger *slog.Logger
}

// NewFileService creates a new file service.
func NewFileService(meta metadata.Store, blobs blob.Store, mu *sync.Mutex, logger *slog.Logger) services.FileService {
	return &fileService{
		meta:   meta,
		blobs:  blobs,
		mu:     mu,
		logger: logger,
	}
}

// UploadFiles stores each upload's content under a fresh id and then
// records all new files in one document rewrite. Blobs are written
// before metadata: a failure in between orphans a blob, which is
// accepted and never cleaned up.
func (s *fileService) UploadFiles(ctx context.Context, req *services.UploadFilesRequest) ([]models.File, error) {
	if len(req.Uploads) == 0 {
		return nil, &domain.ValidationError{Message: "no files supplied"}
	}

	created := make([]models.File, 0, len(req.Uploads))
	now := time.Now()
	for _, up := range req.Uploads {
		file := models.File{
			ID:        uuid.NewString(),
			FolderID:  req.FolderID,
			Name:      up.Name,
			Size:      up.Size,
			Type:      models.TypeFromName(up.Name),
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err := s.blobs.Put(ctx, file.ID, up.Reader, up.Size); err != nil {
			return nil, err
		}
		created = append(created, file)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.meta.Read(ctx)
	if err != nil {
		return nil, err
	}
	doc.Files = append(doc.Files, created...)

	if err := s.meta.Write(ctx, doc); err != nil {
		return nil, err
	}

	for _, f := range created {
		s.logger.Info("file uploaded",
			"id", f.ID,
			"name", f.Name,
			"size", f.Size,
			"folder_id", f.FolderID,
		)
	}

	return created, nil
}

// GetContent looks up the file's metadata and opens its blob. A missing
// id and a missing blob are both NotFoundError.
func (s *fileService) GetContent(ctx context.Context, id string) (*models.File, io.ReadCloser, error) {
	doc, err := s.meta.Read(ctx)
	if err != nil {
		return nil, nil, err
	}

	file := doc.FindFile(id)
	if file == nil {
		return nil, nil, &domain.NotFoundError{Message: fmt.Sprintf("file %s not found", id)}
	}

	rc, err := s.blobs.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	result := *file
	return &result, rc, nil
}

// UpdateFile renames and/or moves a file. A new name that trims to
// blank is silently ignored; a successful rename re-derives the type
// from the new name's extension. A provided folder reference (including
// explicit null) replaces the old one unconditionally.
func (s *fileService) UpdateFile(ctx context.Context, id string, req *services.UpdateFileRequest) (*models.File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.meta.Read(ctx)
	if err != nil {
		return nil, err
	}

	file := doc.FindFile(id)
	if file == nil {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("file %s not found", id)}
	}

	if req.Name != nil {
		if name := strings.TrimSpace(*req.Name); name != "" {
			file.Name = name
			file.Type = models.TypeFromName(name)
		}
	}
	if req.SetFolder {
		file.FolderID = req.FolderID
	}
	file.UpdatedAt = time.Now()

	if err := s.meta.Write(ctx, doc); err != nil {
		return nil, err
	}

	s.logger.Info("file updated",
		"id", file.ID,
		"name", file.Name,
		"folder_id", file.FolderID,
	)

	updated := *file
	return &updated, nil
}

// DeleteFile removes the metadata entry and the blob. Deleting an id
// with no entry is NotFoundError; a blob already gone is not.
func (s *fileService) DeleteFile(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.meta.Read(ctx)
	if err != nil {
		return err
	}

	file := removeFile(doc, id)
	if file == nil {
		return &domain.NotFoundError{Message: fmt.Sprintf("file %s not found", id)}
	}

	if err := s.blobs.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.meta.Write(ctx, doc); err != nil {
		return err
	}

	s.logger.Info("file deleted", "id", id, "name", file.Name)

	return nil
}
