package handlers

import (
	"bytes"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"projectmate.net/internal/models"
	"projectmate.net/internal/services"
	"projectmate.net/internal/view"
)

// PageHandler renders HTML pages
type PageHandler struct {
	projectService *services.ProjectService
	renderer       *view.Renderer
	toasts         *ToastStore
	logger         *zap.Logger
	now            func() time.Time
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(ps *services.ProjectService, renderer *view.Renderer, toasts *ToastStore, logger *zap.Logger) *PageHandler {
	return &PageHandler{projectService: ps, renderer: renderer, toasts: toasts, logger: logger, now: time.Now}
}

// Projects handles GET /
func (h *PageHandler) Projects(w http.ResponseWriter, r *http.Request) {
	projects := h.projectService.GetAll()
	heading := ""
	if tag := r.URL.Query().Get("tag"); tag != "" {
		projects = h.projectService.ByTag(tag)
		heading = "#" + tag
	}
	h.render(w, r, view.DefaultLayout("Projects"), heading, projects)
}

// Profile handles GET /profile/{username}
func (h *PageHandler) Profile(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	projects := h.projectService.ByUsername(username)
	h.render(w, r, view.DefaultLayout(username), username, projects)
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, layout view.Layout, heading string, projects []models.Project) {
	page := view.NewProjectsPage(layout, heading, projects, h.now())
	toast, err := h.toasts.Pop(w, r)
	if err != nil {
		h.logger.Warn("clear toast", zap.Error(err))
	}
	page.Toast = toast

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, page); err != nil {
		h.logger.Error("render page", zap.String("path", r.URL.Path), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Debug("write page", zap.Error(err))
	}
}
