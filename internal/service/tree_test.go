package service

import (
	"testing"

	"fileshelf/internal/domain/models"
)

func folder(id string, parentID *string) models.Folder {
	return models.Folder{ID: id, ParentID: parentID, Name: id}
}

func TestDescendantFolderIDs(t *testing.T) {
	a := "a"
	b := "b"

	doc := &models.Document{
		Folders: []models.Folder{
			folder("a", nil),
			folder("b", &a),
			folder("c", &b),
			folder("d", nil),
		},
	}

	ids := descendantFolderIDs(doc, "a")
	for _, want := range []string{"a", "b", "c"} {
		if !ids[want] {
			t.Errorf("missing descendant %s", want)
		}
	}
	if ids["d"] {
		t.Error("unrelated folder collected")
	}
}

func TestDescendantFolderIDsCycle(t *testing.T) {
	a := "a"
	b := "b"

	// a and b point at each other; the walk must still terminate
	doc := &models.Document{
		Folders: []models.Folder{
			folder("a", &b),
			folder("b", &a),
		},
	}

	ids := descendantFolderIDs(doc, "a")
	if !ids["a"] || !ids["b"] {
		t.Errorf("cycle walk missed members: %v", ids)
	}
}

func TestDescendantFolderIDsSelfParent(t *testing.T) {
	a := "a"

	doc := &models.Document{
		Folders: []models.Folder{folder("a", &a)},
	}

	ids := descendantFolderIDs(doc, "a")
	if len(ids) != 1 || !ids["a"] {
		t.Errorf("self-parented walk = %v, want just {a}", ids)
	}
}
