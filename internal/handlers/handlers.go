package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"projectmate.net/internal/middleware"
	"projectmate.net/internal/models"
	"projectmate.net/internal/services"
	"projectmate.net/internal/view"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(projects *models.ProjectList, sessionKey []byte, logger *zap.Logger) (http.Handler, error) {
	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("setup routes: %w", err)
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))

	// Initialize services
	projectService := services.NewProjectService(projects)
	toasts := NewToastStore(sessionKey)

	// Initialize handlers
	projectHandler := NewProjectHandler(projectService, logger)
	pageHandler := NewPageHandler(projectService, renderer, toasts, logger)
	actionHandler := NewActionHandler(projectService, toasts, logger)

	// Pages
	r.Get("/", pageHandler.Projects)
	r.Get("/profile/{username}", pageHandler.Profile)

	// Card actions
	r.Route("/projects/{id}", func(r chi.Router) {
		r.Get("/stats", actionHandler.Stats)
		r.Get("/contribute", actionHandler.Contribute)
		r.Get("/live", actionHandler.Live)
		r.Get("/share", actionHandler.Share)
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{id}", projectHandler.GetProject)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, logger, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Static files
	fileServer := http.FileServer(http.Dir("./static"))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	return r, nil
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Warn("encode json response", zap.Error(err))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, logger *zap.Logger, status int, message string) {
	respondJSON(w, logger, status, map[string]string{"error": message})
}
