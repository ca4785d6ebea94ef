package models

import (
	"time"
)

type Folder struct {
	ID        string    `json:"id"`
	ParentID  *string   `json:"parent_id"` // NULL = root level
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
