// Package view renders the projects page: a layout shell wrapping a list of
// project cards
package view

// SiteName is appended to every page title
const SiteName = "Projectmate"

// Layout describes which regions of the page shell are shown
type Layout struct {
	Title        string
	LeftSidebar  bool
	RightSidebar bool
}

// DefaultLayout shows the left sidebar and hides the right one
func DefaultLayout(title string) Layout {
	return Layout{Title: title, LeftSidebar: true}
}

// PageTitle is the document title
func (l Layout) PageTitle() string {
	return l.Title + " | " + SiteName
}

// MainClass is the class list of the main content region; it narrows to
// two grid columns on large screens when the left sidebar takes one
func (l Layout) MainClass() string {
	span := "lg:col-span-4"
	if l.LeftSidebar {
		span = "lg:col-span-2"
	}
	return "col-span-4 mx-auto w-full max-w-2xl " + span
}
