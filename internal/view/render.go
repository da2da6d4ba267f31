package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"projectmate.net/internal/links"
	"projectmate.net/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page is the data handed to the layout template
type Page struct {
	Layout  Layout
	Heading string
	Cards   []Card
	Toast   *links.Notification
}

// NewProjectsPage builds a page listing the given projects
func NewProjectsPage(layout Layout, heading string, projects []models.Project, now time.Time) Page {
	cards := make([]Card, 0, len(projects))
	for i := range projects {
		cards = append(cards, NewCard(&projects[i], now))
	}
	return Page{Layout: layout, Heading: heading, Cards: cards}
}

// Renderer executes the page templates
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the full page to w
func (r *Renderer) Render(w io.Writer, page Page) error {
	if err := r.tmpl.ExecuteTemplate(w, "layout", page); err != nil {
		return fmt.Errorf("render %q: %w", page.Layout.Title, err)
	}
	return nil
}
