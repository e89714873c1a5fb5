package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/prembandhan/matchclient/internal/service"
	"github.com/prembandhan/matchclient/models"
)

// DetailModel shows one full profile record with image navigation. It is
// opened with an openDetailMsg carrying the list snapshot, then refreshes
// the record from the server.
type DetailModel struct {
	ctx       context.Context
	services  *service.Services
	webOrigin string

	profile models.Profile
	saved   bool
	imgIdx  int
	loading bool
	status  string
	errMsg  string
	back    string
}

func NewDetailModel(ctx context.Context, services *service.Services, webOrigin string) *DetailModel {
	return &DetailModel{
		ctx:       ctx,
		services:  services,
		webOrigin: webOrigin,
		back:      pageBrowse,
	}
}

func (m *DetailModel) Init() tea.Cmd {
	return nil
}

func (m *DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openDetailMsg:
		m.profile = msg.profile
		m.saved = false
		m.imgIdx = 0
		m.errMsg = ""
		m.status = ""
		m.loading = true
		return m, tea.Batch(m.cmdLoadProfile(msg.profile.ID), m.cmdCheckSaved(msg.profile.ID))

	case savedStatusMsg:
		if msg.profileID == m.profile.ID {
			m.saved = msg.saved
		}
		return m, nil

	case profileLoadedMsg:
		m.loading = false
		if msg.err != nil {
			// the list snapshot is still usable, just note the failure
			m.errMsg = humanizeServiceError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.profile = msg.profile
		if m.imgIdx >= len(m.profile.Images) {
			m.imgIdx = 0
		}
		return m, nil

	case likeDoneMsg:
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrAuthRequired) {
				return m, navigateToLogin("Sign in to like profiles")
			}
			m.errMsg = humanizeServiceError(msg.err)
			return m, nil
		}
		m.profile = msg.profile
		m.saved = true // the like flow snapshots the profile locally
		m.status = fmt.Sprintf("You liked %s", msg.profile.Name)
		return m, clearStatusAfter(2 * time.Second)

	case copiedMsg:
		m.status = "Profile link copied to clipboard"
		return m, clearStatusAfter(2 * time.Second)

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "1":
			return m, navigateTo(pageBrowse)
		case "left", "h":
			if m.imgIdx > 0 {
				m.imgIdx--
			}
		case "right", "l":
			if m.imgIdx < len(m.profile.Images)-1 {
				m.imgIdx++
			}
		case "L", " ":
			p := m.profile
			ctx := m.ctx
			svc := m.services.LikeService
			return m, func() tea.Msg {
				liked, err := svc.Like(ctx, p)
				return likeDoneMsg{profile: liked, err: err}
			}
		case "c":
			link := fmt.Sprintf("%s/profiles/%d", strings.TrimRight(m.webOrigin, "/"), m.profile.ID)
			return m, func() tea.Msg {
				if err := clipboard.WriteAll(link); err != nil {
					return clearStatusMsg{}
				}
				return copiedMsg{}
			}
		case "r":
			m.loading = true
			return m, m.cmdLoadProfile(m.profile.ID)
		}
	}

	return m, nil
}

func (m *DetailModel) cmdLoadProfile(id int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.BrowseService

	return func() tea.Msg {
		profile, err := svc.Profile(ctx, id)
		return profileLoadedMsg{profile: profile, err: err}
	}
}

func (m *DetailModel) cmdCheckSaved(id int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.FavoritesService

	return func() tea.Msg {
		saved, err := svc.Saved(ctx, id)
		if err != nil {
			return savedStatusMsg{profileID: id, saved: false}
		}
		return savedStatusMsg{profileID: id, saved: saved}
	}
}

func (m *DetailModel) View() string {
	p := m.profile

	var b strings.Builder
	line := profileLine(p)
	if m.saved {
		line += " " + likedStyle.Render("[saved]")
	}
	b.WriteString(line + "\n\n")

	rows := []struct{ label, value string }{
		{"Religion", p.Religion},
		{"Caste", p.Caste},
		{"Gotra", valueOrDash(p.Gotra)},
		{"Manglik", valueOrDash(p.Manglik)},
		{"Education", p.Education},
		{"Occupation", valueOrDash(p.Occupation)},
		{"Income", p.Income},
		{"Height (cm)", numberOrDash(p.Height)},
		{"Weight (kg)", numberOrDash(p.Weight)},
		{"State", valueOrDash(p.State)},
		{"District", valueOrDash(p.District)},
	}
	for _, row := range rows {
		value := row.value
		if value == "" {
			value = "-"
		}
		b.WriteString(fmt.Sprintf("%-14s %s\n", row.label+":", value))
	}

	if len(p.Images) > 0 {
		b.WriteString(fmt.Sprintf("\nPhoto %d of %d: %s\n",
			m.imgIdx+1, len(p.Images), fitText(p.Images[m.imgIdx].URL, 50)))
	}

	if m.loading {
		b.WriteString("\nRefreshing...")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg))
	}
	if m.status != "" {
		b.WriteString("\n" + m.status)
	}

	return renderPage("Profile", b.String(),
		"←/→: photos · L: like · c: copy link · r: reload · esc: back")
}
