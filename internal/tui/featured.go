package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/prembandhan/matchclient/internal/service"
	"github.com/prembandhan/matchclient/models"
)

// FeaturedModel renders the promoted profiles backed by the warm cache.
// The page is public: it works with or without a signed-in session.
type FeaturedModel struct {
	ctx      context.Context
	services *service.Services

	profiles []models.Profile
	idx      int
	loading  bool
	status   string
	errMsg   string
}

func NewFeaturedModel(ctx context.Context, services *service.Services) *FeaturedModel {
	return &FeaturedModel{
		ctx:      ctx,
		services: services,
		loading:  true,
	}
}

func (m *FeaturedModel) Init() tea.Cmd {
	m.loading = true
	return m.cmdLoadFeatured(false)
}

func (m *FeaturedModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case featuredLoadedMsg:
		m.loading = false
		if msg.err != nil {
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
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrAuthRequired) {
				return m, navigateToLogin("Sign in to like profiles")
			}
			m.errMsg = humanizeServiceError(msg.err)
			return m, nil
		}
		for i := range m.profiles {
			if m.profiles[i].ID == msg.profile.ID {
				m.profiles[i] = msg.profile
				break
			}
		}
		m.status = fmt.Sprintf("You liked %s", msg.profile.Name)
		return m, clearStatusAfter(2 * time.Second)

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.idx > 0 {
				m.idx--
			}
		case "down", "j":
			if m.idx < len(m.profiles)-1 {
				m.idx++
			}
		case "enter":
			if len(m.profiles) > 0 {
				return m, navigateToDetail(m.profiles[m.idx])
			}
		case "L", " ":
			if len(m.profiles) > 0 {
				p := m.profiles[m.idx]
				ctx := m.ctx
				svc := m.services.LikeService
				return m, func() tea.Msg {
					liked, err := svc.Like(ctx, p)
					return likeDoneMsg{profile: liked, err: err}
				}
			}
		case "r":
			m.loading = true
			return m, m.cmdLoadFeatured(true)
		case "1":
			return m, navigateTo(pageBrowse)
		case "3":
			return m, navigateTo(pageFavorites)
		case "t":
			return m, navigateToLogin("")
		}
	}

	return m, nil
}

// cmdLoadFeatured loads the featured set; force bypasses the cache.
func (m *FeaturedModel) cmdLoadFeatured(force bool) tea.Cmd {
	ctx := m.ctx
	svc := m.services.FeaturedService

	return func() tea.Msg {
		var (
			profiles []models.Profile
			err      error
		)
		if force {
			profiles, err = svc.Refresh(ctx)
		} else {
			profiles, err = svc.Featured(ctx)
		}
		return featuredLoadedMsg{profiles: profiles, err: err}
	}
}

func (m *FeaturedModel) View() string {
	var b strings.Builder
	switch {
	case m.loading:
		b.WriteString("Loading featured profiles...")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render(m.errMsg))
	case len(m.profiles) == 0:
		b.WriteString("No featured profiles right now")
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

	return renderPage("Featured profiles", b.String(),
		"enter: view · L: like · r: refresh · 1: browse · 3: saved")
}
