package models

// Document is the aggregate root for all folder and file metadata.
// It is read and rewritten in full on every mutating operation; there
// is no partial update and no transaction log.
type Document struct {
	Folders []Folder `json:"folders"`
	Files   []File   `json:"files"`
}

// NewDocument returns an empty document with non-nil slices so that it
// always serializes as {"folders":[],"files":[]}.
func NewDocument() *Document {
	return &Document{
		Folders: []Folder{},
		Files:   []File{},
	}
}

// FindFolder returns a pointer into Folders for the given id, or nil.
func (d *Document) FindFolder(id string) *Folder {
	for i := range d.Folders {
		if d.Folders[i].ID == id {
			return &d.Folders[i]
		}
	}
	return nil
}

// FindFile returns a pointer into Files for the given id, or nil.
func (d *Document) FindFile(id string) *File {
	for i := range d.Files {
		if d.Files[i].ID == id {
			return &d.Files[i]
		}
	}
	return nil
}
