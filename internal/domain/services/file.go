package services

import (
	"context"
	"io"

	"fileshelf/internal/domain/models"
)

// FileService handles file business logic
type FileService interface {
	// UploadFiles stores one or more uploads and records their metadata
	UploadFiles(ctx context.Context, req *UploadFilesRequest) ([]models.File, error)

	// GetContent retrieves a file's metadata together with its content stream.
	// The caller owns the returned reader and must close it.
	GetContent(ctx context.Context, id string) (*models.File, io.ReadCloser, error)

	// UpdateFile updates a file (rename or move)
	UpdateFile(ctx context.Context, id string, req *UpdateFileRequest) (*models.File, error)

	// DeleteFile deletes a file's metadata entry and its blob
	DeleteFile(ctx context.Context, id string) error
}

// Upload is one incoming file: a display name plus its content stream.
type Upload struct {
	Name   string
	Size   int64
	Reader io.Reader
}

// UploadFilesRequest represents a multi-file upload request
type UploadFilesRequest struct {
	FolderID *string // nil for root
	Uploads  []Upload
}

// UpdateFileRequest represents a file update request.
// Same tri-state parent semantics as UpdateFolderRequest.
type UpdateFileRequest struct {
	Name      *string // nil = keep current name
	FolderID  *string // new folder, nil meaning root; only applied when SetFolder
	SetFolder bool
}
