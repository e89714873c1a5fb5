package tui

import (
	"github.com/prembandhan/matchclient/models"
)

// NavigateTo routes the root model to another page. Payload, when set, is
// delivered to the target page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload any
}

type profilesLoadedMsg struct {
	profiles []models.Profile
	err      error
}

type featuredLoadedMsg struct {
	profiles []models.Profile
	err      error
}

type favoritesLoadedMsg struct {
	profiles []models.Profile
	err      error
}

type profileLoadedMsg struct {
	profile models.Profile
	err     error
}

type likeDoneMsg struct {
	profile models.Profile
	err     error
}

type favoriteRemovedMsg struct {
	profileID int64
	err       error
}

type tokenSavedMsg struct {
	err error
}

// savedStatusMsg reports whether a local favorite snapshot exists for the
// profile currently shown in the detail view. Check failures are ignored:
// the marker is informational only.
type savedStatusMsg struct {
	profileID int64
	saved     bool
}

type copiedMsg struct{}

type clearStatusMsg struct{}

// openDetailMsg carries the profile to show when navigating to the detail
// page.
type openDetailMsg struct {
	profile models.Profile
}

// loginNoticeMsg carries the reason the login page was opened.
type loginNoticeMsg struct {
	notice string
}
