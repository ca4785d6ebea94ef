package handler

import (
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"fileshelf/internal/domain/services"
	"fileshelf/internal/httputil"
	"fileshelf/internal/mimetypes"
)

// FileHandler handles file HTTP requests
type FileHandler struct {
	fileService    services.FileService
	mimeRegistry   *mimetypes.Registry
	maxUploadBytes int64
	logger         *slog.Logger
}

// NewFileHandler creates a new file handler
func NewFileHandler(fileService services.FileService, mimeRegistry *mimetypes.Registry, maxUploadBytes int64, logger *slog.Logger) *FileHandler {
	return &FileHandler{
		fileService:    fileService,
		mimeRegistry:   mimeRegistry,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// UploadFiles accepts a multipart upload of one or more files
// POST /api/files
//
// Form fields:
//   - files: one or more file parts
//   - folder_id: optional target folder (absent or empty = root)
func (h *FileHandler) UploadFiles(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}
	defer r.MultipartForm.RemoveAll()

	var folderID *string
	if v := r.FormValue("folder_id"); v != "" {
		folderID = &v
	}

	req := services.UploadFilesRequest{FolderID: folderID}
	var closers []io.Closer
	defer func() {
		for _, c := range closers {
			c.Close()
		}
	}()

	for _, fh := range r.MultipartForm.File["files"] {
		f, err := fh.Open()
		if err != nil {
			httputil.RespondError(w, http.StatusBadRequest, fmt.Sprintf("unreadable file part %q", fh.Filename))
			return
		}
		closers = append(closers, f)
		req.Uploads = append(req.Uploads, services.Upload{
			Name:   fh.Filename,
			Size:   fh.Size,
			Reader: f,
		})
	}

	files, err := h.fileService.UploadFiles(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, files)
}

// GetContent streams a file's bytes
// GET /api/files/{id}/content?download=true
//
// The download flag switches the disposition from inline to attachment.
func (h *FileHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "file id is required")
		return
	}

	file, rc, err := h.fileService.GetContent(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}
	defer rc.Close()

	disposition := "inline"
	if r.URL.Query().Get("download") == "true" {
		disposition = "attachment"
	}

	w.Header().Set("Content-Type", h.mimeRegistry.Lookup(file.Type))
	w.Header().Set("Content-Length", strconv.FormatInt(file.Size, 10))
	w.Header().Set("Content-Disposition", mime.FormatMediaType(disposition, map[string]string{"filename": file.Name}))

	if _, err := io.Copy(w, rc); err != nil {
		// Headers are gone; nothing left to do but log.
		h.logger.Warn("content stream interrupted", "id", id, "error", err)
	}
}

// updateFileRequest carries PATCH semantics for files: an absent
// folder_id leaves the folder alone, an explicit null moves to root.
type updateFileRequest struct {
	Name     *string                 `json:"name"`
	FolderID httputil.OptionalString `json:"folder_id"`
}

// UpdateFile updates a file (rename or move)
// PATCH /api/files/{id}
func (h *FileHandler) UpdateFile(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "file id is required")
		return
	}

	var req updateFileRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	file, err := h.fileService.UpdateFile(r.Context(), id, &services.UpdateFileRequest{
		Name:      req.Name,
		FolderID:  req.FolderID.Value,
		SetFolder: req.FolderID.Present,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, file)
}

// DeleteFile deletes a file and its content
// DELETE /api/files/{id}
func (h *FileHandler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "file id is required")
		return
	}

	if err := h.fileService.DeleteFile(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
