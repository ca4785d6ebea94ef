package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"fileshelf/internal/domain"
	"fileshelf/internal/domain/models"
	"fileshelf/internal/domain/services"
	"fileshelf/internal/store/blob"
	"fileshelf/internal/store/metadata"
)

type folderService struct {
	meta   metadata.Store
	blobs  blob.Store
	mu     *sync.Mutex // serializes read-modify-write cycles, shared with the file service
	logger *slog.Logger
}

// NewFolderService creates a new folder service. The mutex is shared
// with the file service so that all document rewrites are serialized.
func NewFolderService(meta metadata.Store, blobs blob.Store, mu *sync.Mutex, logger *slog.Logger) services.FolderService {
	return &folderService{
		meta:   meta,
		blobs:  blobs,
		mu:     mu,
		logger: logger,
	}
}

// CreateFolder creates a new folder. The parent reference is stored
// verbatim: a parent_id pointing at no existing folder is tolerated and
// simply renders as an orphaned entry.
func (s *folderService) CreateFolder(ctx context.Context, req *services.CreateFolderRequest) (*models.Folder, error) {
	if err := validateCreateFolder(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.meta.Read(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	folder := models.Folder{
		ID:        uuid.NewString(),
		ParentID:  req.ParentID,
		Name:      strings.TrimSpace(req.Name),
		CreatedAt: now,
		UpdatedAt: now,
	}
	doc.Folders = append(doc.Folders, folder)

	if err := s.meta.Write(ctx, doc); err != nil {
		return nil, err
	}

	s.logger.Info("folder created",
		"id", folder.ID,
		"name", folder.Name,
		"parent_id", folder.ParentID,
	)

	return &folder, nil
}

// GetFolder retrieves a folder together with its immediate child
// folders and files.
func (s *folderService) GetFolder(ctx context.Context, id string) (*services.FolderContents, error) {
	doc, err := s.meta.Read(ctx)
	if err != nil {
		return nil, err
	}

	folder := doc.FindFolder(id)
	if folder == nil {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("folder %s not found", id)}
	}

	contents := &services.FolderContents{
		Folder:  folder,
		Folders: []models.Folder{},
		Files:   []models.File{},
	}
	for _, f := range doc.Folders {
		if f.ParentID != nil && *f.ParentID == id {
			contents.Folders = append(contents.Folders, f)
		}
	}
	for _, f := range doc.Files {
		if f.FolderID != nil && *f.FolderID == id {
			contents.Files = append(contents.Files, f)
		}
	}

	return contents, nil
}

// UpdateFolder renames and/or moves a folder. A new name that trims to
// blank is silently ignored and the old name kept; a provided parent
// reference (including explicit null for root) replaces the old one
// unconditionally, with no existence or cycle check.
func (s *folderService) UpdateFolder(ctx context.Context, id string, req *services.UpdateFolderRequest) (*models.Folder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.meta.Read(ctx)
	if err != nil {
		return nil, err
	}

	folder := doc.FindFolder(id)
	if folder == nil {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("folder %s not found", id)}
	}

	if req.Name != nil {
		if name := strings.TrimSpace(*req.Name); name != "" {
			folder.Name = name
		}
	}
	if req.SetParent {
		folder.ParentID = req.ParentID
	}
	folder.UpdatedAt = time.Now()

	if err := s.meta.Write(ctx, doc); err != nil {
		return nil, err
	}

	s.logger.Info("folder updated",
		"id", folder.ID,
		"name", folder.Name,
		"parent_id", folder.ParentID,
	)

	updated := *folder
	return &updated, nil
}

// DeleteFolder deletes the folder, every descendant folder, and every
// file transitively contained in one, along with those files' blobs.
func (s *folderService) DeleteFolder(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.meta.Read(ctx)
	if err != nil {
		return err
	}

	if doc.FindFolder(id) == nil {
		return &domain.NotFoundError{Message: fmt.Sprintf("folder %s not found", id)}
	}

	ids := descendantFolderIDs(doc, id)
	removed := removeFilesIn(doc, ids)
	removeFolders(doc, ids)

	// Blobs go first: if one delete fails the document is not yet
	// rewritten, and a retry tolerates the blobs already gone.
	for _, f := range removed {
		if err := s.blobs.Delete(ctx, f.ID); err != nil {
			return err
		}
	}

	if err := s.meta.Write(ctx, doc); err != nil {
		return err
	}

	s.logger.Info("folder deleted",
		"id", id,
		"folders_removed", len(ids),
		"files_removed", len(removed),
	)

	return nil
}

func validateCreateFolder(req *services.CreateFolderRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.Required,
			validation.By(notBlank),
		),
	)
}

// notBlank rejects names that trim to the empty string.
func notBlank(value interface{}) error {
	name, _ := value.(string)
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("must not be blank")
	}
	return nil
}
