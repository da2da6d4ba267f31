package services

import (
	"errors"
	"fmt"
	"slices"

	"projectmate.net/internal/links"
	"projectmate.net/internal/models"
)

// ErrProjectNotFound is returned when no project has the requested ID
var ErrProjectNotFound = errors.New("project not found")

// ProjectService handles project-related operations
type ProjectService struct {
	projects *models.ProjectList
}

// NewProjectService creates a new ProjectService
func NewProjectService(projects *models.ProjectList) *ProjectService {
	return &ProjectService{projects: projects}
}

// GetAll returns all projects
func (s *ProjectService) GetAll() []models.Project {
	return s.projects.Projects
}

// GetByID returns a specific project by ID
func (s *ProjectService) GetByID(id string) (*models.Project, error) {
	for i := range s.projects.Projects {
		if s.projects.Projects[i].ID == id {
			return &s.projects.Projects[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
}

// ByTag returns the projects carrying tag, in listing order
func (s *ProjectService) ByTag(tag string) []models.Project {
	return s.filter(func(p *models.Project) bool {
		return slices.Contains(p.Tags, tag)
	})
}

// ByUsername returns the projects owned by username
func (s *ProjectService) ByUsername(username string) []models.Project {
	return s.filter(func(p *models.Project) bool {
		return p.Username == username
	})
}

func (s *ProjectService) filter(keep func(p *models.Project) bool) []models.Project {
	out := []models.Project{}
	for i := range s.projects.Projects {
		if keep(&s.projects.Projects[i]) {
			out = append(out, s.projects.Projects[i])
		}
	}
	return out
}

// RepositoryIssue is a project whose repository URL the stats action rejects
type RepositoryIssue struct {
	ProjectID string
	Title     string
	URL       string
}

// AuditRepositories lists projects with a present but malformed repository URL.
// Projects without a repository are not reported
func (s *ProjectService) AuditRepositories() []RepositoryIssue {
	var issues []RepositoryIssue
	for _, p := range s.projects.Projects {
		raw, ok := models.Present(p.GithubRepository)
		if !ok {
			continue
		}
		if _, err := links.ParseRepository(raw); err != nil {
			issues = append(issues, RepositoryIssue{ProjectID: p.ID, Title: p.Title, URL: raw})
		}
	}
	return issues
}
