package service

import (
	"fileshelf/internal/domain/models"
)

// descendantFolderIDs returns rootID plus the id of every folder whose
// ancestor chain includes rootID. The visited set guards the walk
// against parent_id cycles, which nothing prevents a move from
// creating.
func descendantFolderIDs(doc *models.Document, rootID string) map[string]bool {
	children := make(map[string][]string)
	for _, f := range doc.Folders {
		if f.ParentID != nil {
			children[*f.ParentID] = append(children[*f.ParentID], f.ID)
		}
	}

	visited := make(map[string]bool)
	stack := []string{rootID}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[id] {
			continue
		}
		visited[id] = true
		stack = append(stack, children[id]...)
	}

	return visited
}

// removeFolders drops every folder whose id is in the set, preserving
// the order of the remainder.
func removeFolders(doc *models.Document, ids map[string]bool) {
	kept := doc.Folders[:0]
	for _, f := range doc.Folders {
		if !ids[f.ID] {
			kept = append(kept, f)
		}
	}
	doc.Folders = kept
}

// removeFilesIn drops every file whose folder_id is in the set and
// returns the removed entries so their blobs can be deleted.
func removeFilesIn(doc *models.Document, folderIDs map[string]bool) []models.File {
	var removed []models.File
	kept := doc.Files[:0]
	for _, f := range doc.Files {
		if f.FolderID != nil && folderIDs[*f.FolderID] {
			removed = append(removed, f)
			continue
		}
		kept = append(kept, f)
	}
	doc.Files = kept
	return removed
}

// removeFile drops the file with the given id, returning it, or nil if
// no such file exists.
func removeFile(doc *models.Document, id string) *models.File {
	for i := range doc.Files {
		if doc.Files[i].ID == id {
			f := doc.Files[i]
			doc.Files = append(doc.Files[:i], doc.Files[i+1:]...)
			return &f
		}
	}
	return nil
}
