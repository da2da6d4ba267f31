package models

import "time"

// Project represents a showcased developer project
type Project struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Tags             []string  `json:"tags"`
	Author           string    `json:"author"`
	AuthorImage      *string   `json:"authorImage"`
	CreatedAt        time.Time `json:"createdAt"`
	Username         string    `json:"username"`
	GithubRepository *string   `json:"githubRepository"`
	LiveURL          *string   `json:"liveUrl"`
}

// ProjectList wraps the array of projects
type ProjectList struct {
	Projects []Project `json:"projects"`
}

// ShareRequest is handed to the share modal. URL is nil when the project
// has no repository and is encoded as null rather than omitted
type ShareRequest struct {
	Title string  `json:"title"`
	URL   *string `json:"url"`
}

// Present reports whether an optional field carries a non-empty value
func Present(s *string) (string, bool) {
	if s == nil || *s == "" {
		return "", false
	}
	return *s, true
}

// Ptr returns a pointer to s
func Ptr(s string) *string {
	return &s
}
