package app

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/atomicstack/hovermenu/internal/backend"
	"github.com/atomicstack/hovermenu/internal/i18n"
	"github.com/atomicstack/hovermenu/internal/logging"
	"github.com/atomicstack/hovermenu/internal/logging/events"
	"github.com/atomicstack/hovermenu/internal/menu"
	"github.com/atomicstack/hovermenu/internal/navigate"
	"github.com/atomicstack/hovermenu/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	MenuPath   string
	LabelsPath string
	Locale     string
	Current    string

	OpenDelay      time.Duration
	ReloadInterval time.Duration

	Width      int
	Height     int
	ShowFooter bool
}

// Run bootstraps and executes the Bubble Tea program. Chosen targets are
// printed to stdout once the terminal has been restored.
func Run(cfg Config) error {
	return run(context.Background(), cfg, os.Stdout, func(m tea.Model) error {
		program := tea.NewProgram(m,
			tea.WithAltScreen(),
			tea.WithMouseAllMotion(),
			tea.WithReportFocus(),
		)
		_, err := program.Run()
		return err
	})
}

func run(ctx context.Context, cfg Config, out io.Writer, runProgram func(tea.Model) error) error {
	rec := &navigate.Recorder{}
	opts := buildOptions(cfg, rec)
	if opts.Watcher != nil {
		defer opts.Watcher.Stop()
	}

	err := runProgram(ui.NewModel(opts))
	if errors.Is(err, tea.ErrProgramKilled) {
		events.App.Exit("killed")
		return nil
	}
	if err != nil {
		events.App.Exit(err.Error())
		return err
	}
	events.App.Exit("done")
	return rec.Replay(ctx, navigate.Writer{Out: out})
}

// buildOptions loads the menu and label files named by cfg. A menu that
// fails to load is replaced by an empty bar and the error is surfaced in
// the status line, so the reload watcher can still pick up a fixed file.
func buildOptions(cfg Config, nav navigate.Navigator) ui.Options {
	opts := ui.Options{
		Locale:     cfg.Locale,
		Current:    cfg.Current,
		OpenDelay:  cfg.OpenDelay,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Navigator:  nav,
	}

	tree, err := loadTree(cfg.MenuPath)
	if err != nil {
		logging.Error(err)
		opts.StartupErr = err
		tree = menu.MustNew("")
	}
	opts.Tree = tree

	catalog, err := loadCatalog(cfg.LabelsPath)
	if err != nil {
		logging.Error(err)
		if opts.StartupErr == nil {
			opts.StartupErr = err
		}
		catalog = i18n.Default()
	}
	opts.Catalog = catalog

	if cfg.ReloadInterval > 0 && (cfg.MenuPath != "" || cfg.LabelsPath != "") {
		opts.Watcher = backend.NewWatcher(cfg.MenuPath, cfg.LabelsPath, cfg.ReloadInterval)
	}
	return opts
}

func loadTree(path string) (*menu.Tree, error) {
	if path == "" {
		return menu.Default(), nil
	}
	return menu.ReadFile(path)
}

func loadCatalog(path string) (*i18n.Catalog, error) {
	if path == "" {
		return i18n.Default(), nil
	}
	return i18n.ReadCatalog(path, i18n.FallbackLocale)
}
