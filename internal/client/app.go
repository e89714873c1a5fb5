package client

import (
	"context"
	"errors"

	"github.com/prembandhan/matchclient/internal/adapter"
	"github.com/prembandhan/matchclient/internal/config"
	"github.com/prembandhan/matchclient/internal/logger"
	"github.com/prembandhan/matchclient/internal/service"
	"github.com/prembandhan/matchclient/internal/session"
	"github.com/prembandhan/matchclient/internal/tui"
	"github.com/prembandhan/matchclient/internal/workers"
)

type App struct {
	services *service.Services
	source   adapter.ProfileSource
	session  session.Session
	ui       *tui.TUI
	cfg      *config.ClientConfig
	logger   *logger.Logger
}

func NewApp(services *service.Services, source adapter.ProfileSource, sess session.Session, ui *tui.TUI, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	return &App{
		services: services,
		source:   source,
		session:  sess,
		ui:       ui,
		cfg:      cfg,
		logger:   log,
	}, nil
}

func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// keep the transport's bearer token in lockstep with the session,
	// now and on every later login/logout
	a.source.SetToken(a.session.Token())
	a.session.Subscribe(a.source.SetToken)

	background := workers.NewWorkers(
		workers.NewFeaturedRefreshWorker(ctx, a.services.RefreshJob, a.cfg.Workers.RefreshInterval),
	)
	background.Run()
	defer a.services.RefreshJob.Stop()

	if err := a.ui.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			a.logger.Info().Msg("user quit")
			return nil
		}
		return err
	}

	return nil
}
