package links

import "projectmate.net/internal/models"

// Variant selects how a notification is styled
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// GenericErrorTitle is the only message the card ever surfaces
const GenericErrorTitle = "Something went wrong!"

// Notification is a transient message shown to the user
type Notification struct {
	Title   string  `json:"title"`
	Variant Variant `json:"variant"`
}

// Navigator opens a destination in a new browsing context. Fire-and-forget
type Navigator interface {
	Open(url string)
}

// Notifier displays a notification
type Notifier interface {
	Notify(n Notification)
}

// ShareModal presents sharing UI for a project
type ShareModal interface {
	Open(req models.ShareRequest)
}

// NavigatorFunc adapts a function to Navigator
type NavigatorFunc func(url string)

func (f NavigatorFunc) Open(url string) { f(url) }

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(n Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

// ShareModalFunc adapts a function to ShareModal
type ShareModalFunc func(req models.ShareRequest)

func (f ShareModalFunc) Open(req models.ShareRequest) { f(req) }

// Actions dispatches the card actions for projects
type Actions struct {
	nav   Navigator
	note  Notifier
	share ShareModal
}

// NewActions creates Actions over the given collaborators
func NewActions(nav Navigator, note Notifier, share ShareModal) *Actions {
	return &Actions{nav: nav, note: note, share: share}
}

// Stats opens the analytics page for the project's repository, or raises a
// destructive notification when the repository URL is malformed
func (a *Actions) Stats(p *models.Project) {
	raw, ok := models.Present(p.GithubRepository)
	if !ok {
		return
	}

	repo, err := ParseRepository(raw)
	if err != nil {
		a.note.Notify(Notification{Title: GenericErrorTitle, Variant: VariantDestructive})
		return
	}
	a.nav.Open(repo.StatsURL())
}

// Contribute opens the repository with the referral tag
func (a *Actions) Contribute(p *models.Project) {
	if raw, ok := models.Present(p.GithubRepository); ok {
		a.nav.Open(WithReferral(raw))
	}
}

// Live opens the live site with the referral tag
func (a *Actions) Live(p *models.Project) {
	if raw, ok := models.Present(p.LiveURL); ok {
		a.nav.Open(WithReferral(raw))
	}
}

// Share forwards the title and repository URL, absent or not
func (a *Actions) Share(p *models.Project) {
	a.share.Open(models.ShareRequest{Title: p.Title, URL: p.GithubRepository})
}
