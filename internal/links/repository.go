// Package links resolves the external destinations behind a project card's
// actions and dispatches them through injected collaborators
package links

import (
	"errors"
	"regexp"
)

const (
	// InsightsBase is the analytics service the stats action points at
	InsightsBase = "https://analyzemyrepo.com/analyze"

	// ReferralQuery is appended to contribute and live destinations
	ReferralQuery = "?ref=projectmate.net"
)

// ErrNotRepositoryURL is returned when a URL is not exactly
// https://github.com/<account>/<repo>
var ErrNotRepositoryURL = errors.New("not a github repository url")

var repositoryPattern = regexp.MustCompile(`^https://github\.com/([^/]+)/([^/]+)$`)

// Repository identifies a GitHub repository by account and name
type Repository struct {
	Account string
	Name    string
}

// ParseRepository extracts the account and repository name from rawURL.
// Trailing slashes, extra path segments and other hosts are rejected
// rather than partially parsed
func ParseRepository(rawURL string) (Repository, error) {
	m := repositoryPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return Repository{}, ErrNotRepositoryURL
	}
	return Repository{Account: m[1], Name: m[2]}, nil
}

// StatsURL is the analytics destination for the repository
func (r Repository) StatsURL() string {
	return InsightsBase + "/" + r.Account + "/" + r.Name
}

// WithReferral appends the referral tag to an outbound URL
func WithReferral(u string) string {
	return u + "/" + ReferralQuery
}
