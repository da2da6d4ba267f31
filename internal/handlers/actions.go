package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"projectmate.net/internal/links"
	"projectmate.net/internal/models"
	"projectmate.net/internal/services"
)

// ActionHandler serves the project card actions. Each request adapts the
// browser to the links collaborators: navigation becomes a redirect, a
// notification becomes a toast on the projects page, and sharing returns
// the share request as JSON
type ActionHandler struct {
	projectService *services.ProjectService
	toasts         *ToastStore
	logger         *zap.Logger
}

// NewActionHandler creates a new ActionHandler
func NewActionHandler(ps *services.ProjectService, toasts *ToastStore, logger *zap.Logger) *ActionHandler {
	return &ActionHandler{projectService: ps, toasts: toasts, logger: logger}
}

// exchange records whether a collaborator answered the request
type exchange struct {
	w        http.ResponseWriter
	r        *http.Request
	toasts   *ToastStore
	logger   *zap.Logger
	written  bool
	notified bool
}

func (e *exchange) actions() *links.Actions {
	nav := links.NavigatorFunc(func(url string) {
		e.written = true
		http.Redirect(e.w, e.r, url, http.StatusFound)
	})
	note := links.NotifierFunc(func(n links.Notification) {
		e.written = true
		e.notified = true
		if err := e.toasts.Set(e.w, e.r, n); err != nil {
			e.logger.Warn("save toast", zap.Error(err))
		}
		http.Redirect(e.w, e.r, "/", http.StatusSeeOther)
	})
	share := links.ShareModalFunc(func(req models.ShareRequest) {
		e.written = true
		respondJSON(e.w, e.logger, http.StatusOK, req)
	})
	return links.NewActions(nav, note, share)
}

// finish answers requests no collaborator handled
func (e *exchange) finish() {
	if !e.written {
		e.w.WriteHeader(http.StatusNoContent)
	}
}

func (h *ActionHandler) dispatch(w http.ResponseWriter, r *http.Request, name string, act func(a *links.Actions, p *models.Project)) {
	id := chi.URLParam(r, "id")
	project, err := h.projectService.GetByID(id)
	if err != nil {
		respondError(w, h.logger, http.StatusNotFound, "Project not found")
		return
	}

	e := &exchange{w: w, r: r, toasts: h.toasts, logger: h.logger}
	act(e.actions(), project)
	if e.notified {
		h.logger.Debug("card action notified", zap.String("action", name), zap.String("project", id))
	}
	if !e.written {
		h.logger.Debug("card action was a no-op", zap.String("action", name), zap.String("project", id))
	}
	e.finish()
}

// Stats handles GET /projects/{id}/stats
func (h *ActionHandler) Stats(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, "stats", (*links.Actions).Stats)
}

// Contribute handles GET /projects/{id}/contribute
func (h *ActionHandler) Contribute(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, "contribute", (*links.Actions).Contribute)
}

// Live handles GET /projects/{id}/live
func (h *ActionHandler) Live(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, "live", (*links.Actions).Live)
}

// Share handles GET /projects/{id}/share
func (h *ActionHandler) Share(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, "share", (*links.Actions).Share)
}
