package handler

import (
	"log/slog"
	"net/http"

	"fileshelf/internal/domain/services"
	"fileshelf/internal/httputil"
)

// StructureHandler serves the full tree and the health check
type StructureHandler struct {
	structureService services.StructureService
	logger           *slog.Logger
}

// NewStructureHandler creates a new structure handler
func NewStructureHandler(structureService services.StructureService, logger *slog.Logger) *StructureHandler {
	return &StructureHandler{
		structureService: structureService,
		logger:           logger,
	}
}

// GetStructure returns the complete folder/file tree
// GET /api/structure
func (h *StructureHandler) GetStructure(w http.ResponseWriter, r *http.Request) {
	doc, err := h.structureService.GetStructure(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, doc)
}

// HealthCheck reports liveness
// GET /health
func (h *StructureHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
