package view

import (
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"projectmate.net/internal/models"
)

// Card is the render model of a single project list item
type Card struct {
	ID          string
	Title       string
	Description string
	Tags        []string
	Author      string
	Initials    string
	AuthorImage string
	ProfileURL  string
	CreatedISO  string
	CreatedAgo  string
	HasRepo     bool
	HasLive     bool
}

// NewCard builds the render model of p relative to now
func NewCard(p *models.Project, now time.Time) Card {
	image, _ := models.Present(p.AuthorImage)
	_, hasRepo := models.Present(p.GithubRepository)
	_, hasLive := models.Present(p.LiveURL)

	return Card{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Tags:        p.Tags,
		Author:      p.Author,
		Initials:    Initials(p.Author),
		AuthorImage: image,
		ProfileURL:  "/profile/" + url.PathEscape(p.Username),
		CreatedISO:  p.CreatedAt.UTC().Format(time.RFC3339),
		CreatedAgo:  humanize.RelTime(p.CreatedAt, now, "ago", "from now"),
		HasRepo:     hasRepo,
		HasLive:     hasLive,
	}
}

// Initials takes the first character of every space separated word.
// Consecutive spaces contribute nothing
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Split(name, " ") {
		if r, _ := utf8.DecodeRuneInString(word); r != utf8.RuneError {
			b.WriteRune(r)
		}
	}
	return b.String()
}
