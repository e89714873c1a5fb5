package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/prembandhan/matchclient/internal/config"
	"github.com/prembandhan/matchclient/internal/filter"
	"github.com/prembandhan/matchclient/internal/logger"
	"github.com/prembandhan/matchclient/internal/service"
	"github.com/prembandhan/matchclient/internal/session"
)

var ErrUserQuit = errors.New("user quit the application")

type TUI struct {
	services *service.Services
	session  session.Session
	cfg      *config.ClientConfig
}

func New(services *service.Services, sess session.Session, cfg *config.ClientConfig, _ *logger.Logger) (*TUI, error) {
	return &TUI{
		services: services,
		session:  sess,
		cfg:      cfg,
	}, nil
}

// Run drives the whole terminal session: it restores the deep-link filter
// state, registers the pages, and blocks until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	initial := filter.ParseQuery(t.cfg.Browse.Query)

	pages := map[string]tea.Model{
		pageBrowse:    NewBrowseModel(ctx, t.services, t.session, t.cfg.App.WebOrigin, initial),
		pageFeatured:  NewFeaturedModel(ctx, t.services),
		pageFavorites: NewFavoritesModel(ctx, t.services),
		pageDetail:    NewDetailModel(ctx, t.services, t.cfg.App.WebOrigin),
		pageLogin:     NewLoginModel(t.session),
	}

	// a restored deep link lands straight on browse; otherwise start on
	// the public featured view
	startPage := pageFeatured
	if !initial.IsZero() {
		startPage = pageBrowse
	}

	root := NewRootModel(pages, startPage)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
