package models

import (
	"path/filepath"
	"strings"
	"time"
)

type File struct {
	ID        string    `json:"id"`        // doubles as the blob store key
	FolderID  *string   `json:"folder_id"` // NULL = root level
	Name      string    `json:"name"`      // display name including extension
	Size      int64     `json:"size"`      // byte length recorded at upload time
	Type      *string   `json:"type"`      // lowercase extension without dot, NULL if none
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TypeFromName derives the File.Type value from a display name:
// the lowercased extension without the leading dot, or nil when the
// name has no extension.
func TypeFromName(name string) *string {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		return nil
	}
	ext = strings.ToLower(ext)
	return &ext
}
