package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/tinytelemetry/boardroom/internal/carousel"
	"github.com/tinytelemetry/boardroom/internal/charts"
	"github.com/tinytelemetry/boardroom/internal/dashboard"
	"github.com/tinytelemetry/boardroom/internal/logging"
	"github.com/tinytelemetry/boardroom/internal/model"
	"github.com/tinytelemetry/boardroom/internal/prefs"
	"github.com/tinytelemetry/boardroom/internal/theme"
	"github.com/tinytelemetry/boardroom/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func runTUI(ctx context.Context, cfg appConfig) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stdout.Fd()) {
		return errors.New("TUI requires a real terminal")
	}

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	store, err := prefs.Open(cfg.PrefsBackend, cfg.PrefsPath)
	if err != nil {
		return fmt.Errorf("opening preferences: %w", err)
	}
	defer store.Close()

	dash, err := buildDashboard(ctx, cfg, store, logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(tui.NewDashboardApp(dash), tea.WithAltScreen(), tea.WithContext(ctx))

	// Use errgroup for the program and the preference watcher; quitting the
	// program stops the watcher.
	g, gctx := errgroup.WithContext(ctx)

	if prefs.Watchable(cfg.PrefsBackend) {
		w := prefs.NewWatcher(store, cfg.PrefsPath, model.ThemeKey, logger)
		g.Go(func() error {
			err := w.Run(gctx, func(v string) {
				if st, ok := theme.ParseState(v); ok {
					p.Send(tui.ThemeChangedMsg{State: st})
				}
			})
			if err != nil {
				// The dashboard works without live updates.
				logger.Warn("preference watcher stopped", zap.Error(err))
			}
			return nil
		})
	}

	g.Go(func() error {
		defer cancel()
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("error running TUI: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// buildDashboard constructs every chart, registers and themes them, then
// binds the carousel sections. Chart and section failures become status
// line diagnostics rather than errors.
func buildDashboard(ctx context.Context, cfg appConfig, store theme.Persister, logger *zap.Logger) (*tui.DashboardModel, error) {
	d, err := dashboard.Load(cfg.Dashboard)
	if err != nil {
		return nil, err
	}

	reg, diagnostics := charts.Build(d.Charts, logger)
	sync := theme.NewSynchronizer(ctx, store, reg, cfg.fallbackTheme(), cfg.ThemeTransition, logger)

	ctrl := carousel.NewController(carousel.Options{
		SwipeThreshold: cfg.SwipeThreshold,
		Wrap:           cfg.WrapNavigation,
	}, logger)
	for _, err := range tui.BindSections(ctrl, *d, reg) {
		logger.Error("section not initialized", zap.Error(err))
		diagnostics = append(diagnostics, err)
	}

	logger.Info("dashboard ready",
		zap.Int("charts", reg.Len()),
		zap.Int("sections", len(ctrl.Sections())),
		zap.Stringer("theme", sync.State()),
		zap.Int("diagnostics", len(diagnostics)))

	return tui.NewDashboardModel(tui.Config{
		Context:        ctx,
		Dashboard:      *d,
		Registry:       reg,
		Carousel:       ctrl,
		Theme:          sync,
		Diagnostics:    diagnostics,
		CellWidthPx:    cfg.CellWidthPx,
		RevealDuration: cfg.RevealDuration,
		Mouse:          cfg.Mouse,
		Logger:         logger,
	}), nil
}
