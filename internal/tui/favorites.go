package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/prembandhan/matchclient/internal/service"
	"github.com/prembandhan/matchclient/models"
)

// FavoritesModel lists the locally saved liked profiles. Works fully
// offline.
type FavoritesModel struct {
	ctx      context.Context
	services *service.Services

	profiles []models.Profile
	idx      int
	loading  bool
	status   string
	errMsg   string
}

func NewFavoritesModel(ctx context.Context, services *service.Services) *FavoritesModel {
	return &FavoritesModel{
		ctx:      ctx,
		services: services,
		loading:  true,
	}
}

func (m *FavoritesModel) Init() tea.Cmd {
	m.loading = true
	return m.cmdLoadFavorites()
}

func (m *FavoritesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case favoritesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
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

	case favoriteRemovedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.status = "Removed from saved profiles"
		m.loading = true
		return m, tea.Batch(m.cmdLoadFavorites(), clearStatusAfter(2*time.Second))

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
		case "d":
			if len(m.profiles) > 0 {
				return m, m.cmdRemoveFavorite(m.profiles[m.idx].ID)
			}
		case "r":
			m.loading = true
			return m, m.cmdLoadFavorites()
		case "1":
			return m, navigateTo(pageBrowse)
		case "2":
			return m, navigateTo(pageFeatured)
		}
	}

	return m, nil
}

func (m *FavoritesModel) cmdLoadFavorites() tea.Cmd {
	ctx := m.ctx
	svc := m.services.FavoritesService

	return func() tea.Msg {
		profiles, err := svc.List(ctx)
		return favoritesLoadedMsg{profiles: profiles, err: err}
	}
}

func (m *FavoritesModel) cmdRemoveFavorite(id int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.FavoritesService

	return func() tea.Msg {
		err := svc.Remove(ctx, id)
		return favoriteRemovedMsg{profileID: id, err: err}
	}
}

func (m *FavoritesModel) View() string {
	var b strings.Builder
	switch {
	case m.loading:
		b.WriteString("Loading saved profiles...")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render(m.errMsg))
	case len(m.profiles) == 0:
		b.WriteString("You have not liked any profiles yet")
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

	title := fmt.Sprintf("Saved profiles (%d)", len(m.profiles))
	return renderPage(title, b.String(),
		"enter: view · d: remove · r: reload · 1: browse · 2: featured")
}
