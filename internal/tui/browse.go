// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/prembandhan/matchclient/internal/filter"
	"github.com/prembandhan/matchclient/internal/service"
	"github.com/prembandhan/matchclient/internal/session"
	"github.com/prembandhan/matchclient/models"
)

type browseMode int

const (
	browseModeList browseMode = iota
	browseModeSearch
	browseModeFilter
)

// order of the filter form inputs
const (
	filterFieldGender = iota
	filterFieldAgeFrom
	filterFieldAgeTo
	filterFieldReligion
	filterFieldCaste
	filterFieldEducation
	filterFieldOccupation
	filterFieldIncome
	filterFieldState
	filterFieldDistrict
	filterFieldMinHeight
	filterFieldMaxHeight
	filterFieldMinWeight
	filterFieldMaxWeight
	filterFieldCount
)

var filterFieldLabels = [filterFieldCount]string{
	"Gender (male/female)",
	"Age from",
	"Age to",
	"Religion",
	"Caste",
	"Education",
	"Occupation",
	"Income",
	"State",
	"District",
	"Min height (cm)",
	"Max height (cm)",
	"Min weight (kg)",
	"Max weight (kg)",
}

// BrowseModel is the main profile listing page: fetches via the browse
// service, renders the result list, and owns the search term input and the
// structured filter form.
type BrowseModel struct {
	ctx       context.Context
	services  *service.Services
	session   session.Session
	webOrigin string

	filter   models.FilterState
	profiles []models.Profile
	idx      int
	loading  bool
	status   string
	errMsg   string
	mode     browseMode

	searchInput  textinput.Model
	filterInputs []textinput.Model
	filterFocus  int
	featuredOnly bool
}

func NewBrowseModel(ctx context.Context, services *service.Services, sess session.Session, webOrigin string, initial models.FilterState) *BrowseModel {
	search := textinput.New()
	search.Placeholder = "name, occupation, education..."
	search.Width = 40

	return &BrowseModel{
		ctx:         ctx,
		services:    services,
		session:     sess,
		webOrigin:   webOrigin,
		filter:      initial,
		searchInput: search,
		loading:     true,
	}
}

func (m *BrowseModel) Init() tea.Cmd {
	if !m.session.Authenticated() {
		// browsing is members-only; route to the sign-in notice instead
		// of firing a fetch
		return func() tea.Msg {
			return NavigateTo{
				Page:    pageLogin,
				Payload: loginNoticeMsg{notice: "Sign in to browse profiles"},
			}
		}
	}

	m.loading = true
	return m.cmdBrowse()
}

func (m *BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profilesLoadedMsg:
		if errors.Is(msg.err, service.ErrSuperseded) {
			// a newer fetch is still running, keep waiting for its result
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.profiles = nil
			m.idx = 0
			if errors.Is(msg.err, service.ErrAuthRequired) {
				return m, navigateToLogin("Your session has expired, sign in again")
			}
			m.errMsg = humanizeServiceError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.profiles = msg.profiles
		if m.idx >= len(m.profiles) {
			m.idx = len(m.profiles) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil

	case likeDoneMsg:
		return m.applyLikeResult(msg)

	case copiedMsg:
		m.status = "Share link copied to clipboard"
		return m, clearStatusAfter(2 * time.Second)

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case browseModeSearch:
			return m.updateSearch(msg)
		case browseModeFilter:
			return m.updateFilterForm(msg)
		default:
			return m.updateList(msg)
		}
	}

	return m, nil
}

func (m *BrowseModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.profiles)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		if p, ok := m.selected(); ok {
			return m, navigateToDetail(p)
		}
	case key.Matches(msg, keys.search):
		m.mode = browseModeSearch
		m.searchInput.SetValue(m.filter.Term)
		m.searchInput.Focus()
	case key.Matches(msg, keys.filter):
		m.openFilterForm()
	case key.Matches(msg, keys.clear):
		m.filter.Clear()
		m.loading = true
		return m, m.cmdBrowse()
	case key.Matches(msg, keys.like):
		if p, ok := m.selected(); ok {
			return m, m.cmdLike(p)
		}
	case key.Matches(msg, keys.share):
		return m, m.cmdCopyShareLink()
	case key.Matches(msg, keys.refresh):
		m.loading = true
		return m, m.cmdBrowse()
	case key.Matches(msg, keys.featured):
		return m, navigateTo(pageFeatured)
	case key.Matches(msg, keys.saved):
		return m, navigateTo(pageFavorites)
	case key.Matches(msg, keys.login):
		return m, navigateToLogin("")
	case key.Matches(msg, keys.logout):
		_ = m.session.Clear()
		return m, navigateToLogin("Signed out")
	}

	return m, nil
}

func (m *BrowseModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = browseModeList
		m.searchInput.Blur()
		return m, nil
	case "enter":
		m.filter.Term = strings.TrimSpace(m.searchInput.Value())
		m.mode = browseModeList
		m.searchInput.Blur()
		m.loading = true
		return m, m.cmdBrowse()
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m *BrowseModel) openFilterForm() {
	m.filterInputs = make([]textinput.Model, filterFieldCount)
	values := [filterFieldCount]string{
		m.filter.Gender,
		m.filter.AgeFrom,
		m.filter.AgeTo,
		m.filter.Religion,
		m.filter.Caste,
		m.filter.Education,
		m.filter.Occupation,
		m.filter.Income,
		m.filter.State,
		m.filter.District,
		m.filter.MinHeight,
		m.filter.MaxHeight,
		m.filter.MinWeight,
		m.filter.MaxWeight,
	}

	for i := range m.filterInputs {
		in := textinput.New()
		in.Placeholder = filterFieldLabels[i]
		in.Width = 30
		in.SetValue(values[i])
		m.filterInputs[i] = in
	}

	m.filterFocus = 0
	m.filterInputs[0].Focus()
	m.featuredOnly = m.filter.Featured
	m.mode = browseModeFilter
}

func (m *BrowseModel) updateFilterForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = browseModeList
		return m, nil
	case "tab", "down":
		m.moveFilterFocus(1)
		return m, nil
	case "shift+tab", "up":
		m.moveFilterFocus(-1)
		return m, nil
	case "ctrl+f":
		m.featuredOnly = !m.featuredOnly
		return m, nil
	case "enter":
		m.applyFilterForm()
		m.mode = browseModeList
		m.loading = true
		return m, m.cmdBrowse()
	}

	var cmd tea.Cmd
	m.filterInputs[m.filterFocus], cmd = m.filterInputs[m.filterFocus].Update(msg)
	return m, cmd
}

func (m *BrowseModel) moveFilterFocus(delta int) {
	m.filterInputs[m.filterFocus].Blur()
	m.filterFocus = (m.filterFocus + delta + filterFieldCount) % filterFieldCount
	m.filterInputs[m.filterFocus].Focus()
}

func (m *BrowseModel) applyFilterForm() {
	get := func(i int) string { return strings.TrimSpace(m.filterInputs[i].Value()) }

	m.filter.Gender = get(filterFieldGender)
	m.filter.AgeFrom = get(filterFieldAgeFrom)
	m.filter.AgeTo = get(filterFieldAgeTo)
	m.filter.Religion = get(filterFieldReligion)
	m.filter.Caste = get(filterFieldCaste)
	m.filter.Education = get(filterFieldEducation)
	m.filter.Occupation = get(filterFieldOccupation)
	m.filter.Income = get(filterFieldIncome)
	m.filter.State = get(filterFieldState)
	m.filter.District = get(filterFieldDistrict)
	m.filter.MinHeight = get(filterFieldMinHeight)
	m.filter.MaxHeight = get(filterFieldMaxHeight)
	m.filter.MinWeight = get(filterFieldMinWeight)
	m.filter.MaxWeight = get(filterFieldMaxWeight)
	m.filter.Featured = m.featuredOnly
	m.filter.Search = m.filter.HasCriteria()
}

func (m *BrowseModel) applyLikeResult(msg likeDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if errors.Is(msg.err, service.ErrAuthRequired) {
			return m, navigateToLogin("Sign in to like profiles")
		}
		m.errMsg = humanizeServiceError(msg.err)
		return m, nil
	}

	// only the liked profile's record changes
	for i := range m.profiles {
		if m.profiles[i].ID == msg.profile.ID {
			m.profiles[i] = msg.profile
			break
		}
	}
	m.errMsg = ""
	m.status = fmt.Sprintf("You liked %s", msg.profile.Name)
	return m, clearStatusAfter(2 * time.Second)
}

func (m *BrowseModel) selected() (models.Profile, bool) {
	if len(m.profiles) == 0 || m.idx < 0 || m.idx >= len(m.profiles) {
		return models.Profile{}, false
	}
	return m.profiles[m.idx], true
}

func (m *BrowseModel) cmdBrowse() tea.Cmd {
	ctx := m.ctx
	svc := m.services.BrowseService
	f := m.filter

	return func() tea.Msg {
		profiles, err := svc.Browse(ctx, f)
		return profilesLoadedMsg{profiles: profiles, err: err}
	}
}

func (m *BrowseModel) cmdLike(p models.Profile) tea.Cmd {
	ctx := m.ctx
	svc := m.services.LikeService

	return func() tea.Msg {
		liked, err := svc.Like(ctx, p)
		return likeDoneMsg{profile: liked, err: err}
	}
}

func (m *BrowseModel) cmdCopyShareLink() tea.Cmd {
	link := filter.ShareLink(m.webOrigin, m.filter)

	return func() tea.Msg {
		if err := clipboard.WriteAll(link); err != nil {
			return clearStatusMsg{}
		}
		return copiedMsg{}
	}
}

func (m *BrowseModel) View() string {
	switch m.mode {
	case browseModeSearch:
		return renderPage("Search",
			m.searchInput.View(),
			"enter: apply · esc: cancel")
	case browseModeFilter:
		return m.viewFilterForm()
	default:
		return m.viewList()
	}
}

func (m *BrowseModel) viewList() string {
	title := "Browse profiles"
	if m.filter.HasCriteria() || m.filter.Term != "" {
		title += fmt.Sprintf(" · %d filters", m.filter.Active())
	}

	var b strings.Builder
	switch {
	case m.loading:
		b.WriteString("Loading profiles...")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render(m.errMsg))
	case len(m.profiles) == 0:
		b.WriteString("No profiles match your criteria")
	default:
		for i, p := range m.profiles {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(cursor + profileLine(p) + "\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.status)
	}

	return renderPage(title, b.String(),
		"enter: view · L: like · /: search · f: filters · x: clear · c: share · r: reload · 2: featured · 3: saved")
}

func (m *BrowseModel) viewFilterForm() string {
	var b strings.Builder
	for i, in := range m.filterInputs {
		marker := "  "
		if i == m.filterFocus {
			marker = "> "
		}
		b.WriteString(fmt.Sprintf("%s%-22s %s\n", marker, filterFieldLabels[i]+":", in.View()))
	}

	featured := "no"
	if m.featuredOnly {
		featured = "yes"
	}
	b.WriteString(fmt.Sprintf("\n  Featured only: %s (ctrl+f to toggle)", featured))

	return renderPage("Filters", b.String(),
		"tab: next field · enter: apply · esc: cancel")
}

func profileLine(p models.Profile) string {
	parts := []string{fitText(p.Name, 24)}

	if age, ok := profileAge(p); ok {
		parts = append(parts, fmt.Sprintf("%d", age))
	}
	if p.Caste != "" {
		parts = append(parts, p.Caste)
	}
	if p.Occupation != nil && *p.Occupation != "" {
		parts = append(parts, *p.Occupation)
	}

	line := strings.Join(parts, " · ")
	if p.Featured {
		line += " " + featuredStyle.Render("[featured]")
	}
	if p.IsLiked {
		line += " " + likedStyle.Render("♥")
	}
	return line
}

func profileAge(p models.Profile) (int, bool) {
	if p.DateOfBirth == nil {
		return 0, false
	}
	return filter.AgeAt(*p.DateOfBirth, time.Now())
}

func navigateTo(page string) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page} }
}

func navigateToDetail(p models.Profile) tea.Cmd {
	return func() tea.Msg {
		return NavigateTo{Page: pageDetail, Payload: openDetailMsg{profile: p}}
	}
}

func navigateToLogin(notice string) tea.Cmd {
	return func() tea.Msg {
		return NavigateTo{Page: pageLogin, Payload: loginNoticeMsg{notice: notice}}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
