package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"projectmate.net/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
	logger         *zap.Logger
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{projectService: ps, logger: logger}
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects := h.projectService.GetAll()
	if tag := r.URL.Query().Get("tag"); tag != "" {
		projects = h.projectService.ByTag(tag)
	}
	respondJSON(w, h.logger, http.StatusOK, projects)
}

// GetProject handles GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	project, err := h.projectService.GetByID(id)
	if err != nil {
		respondError(w, h.logger, http.StatusNotFound, "Project not found")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, project)
}
