package services

import (
	"context"

	"fileshelf/internal/domain/models"
)

// FolderService handles folder business logic
type FolderService interface {
	// CreateFolder creates a new folder
	CreateFolder(ctx context.Context, req *CreateFolderRequest) (*models.Folder, error)

	// GetFolder retrieves a folder with its immediate children
	GetFolder(ctx context.Context, id string) (*FolderContents, error)

	// UpdateFolder updates a folder (rename or move)
	UpdateFolder(ctx context.Context, id string, req *UpdateFolderRequest) (*models.Folder, error)

	// DeleteFolder deletes a folder, cascading to every descendant
	// folder and every file transitively contained in one
	DeleteFolder(ctx context.Context, id string) error
}

// CreateFolderRequest represents a folder creation request
type CreateFolderRequest struct {
	Name     string  `json:"name"`
	ParentID *string `json:"parent_id,omitempty"` // nil for root
}

// UpdateFolderRequest represents a folder update request.
// Transport-agnostic: the handler maps JSON PATCH semantics
// (httputil.OptionalString) onto SetParent/ParentID.
type UpdateFolderRequest struct {
	Name      *string // nil = keep current name
	ParentID  *string // new parent, nil meaning root; only applied when SetParent
	SetParent bool
}

// FolderContents represents a folder with its immediate children
type FolderContents struct {
	Folder  *models.Folder  `json:"folder"`
	Folders []models.Folder `json:"folders"`
	Files   []models.File   `json:"files"`
}
