// Command horizon is a terminal client for the GameHorizon recommendation API.
//
// Usage:
//
//	horizon                       Run with ./horizon.yaml or defaults
//	horizon -config path.yaml     Use a specific config file
//	horizon -api http://host:5000 Override the API base URL
//	horizon -data ~/.horizon      Override the data directory
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/abelbrown/horizon/internal/api"
	"github.com/abelbrown/horizon/internal/config"
	"github.com/abelbrown/horizon/internal/favorites"
	"github.com/abelbrown/horizon/internal/history"
	"github.com/abelbrown/horizon/internal/locale"
	"github.com/abelbrown/horizon/internal/logging"
	"github.com/abelbrown/horizon/internal/prefs"
	"github.com/abelbrown/horizon/internal/store"
	"github.com/abelbrown/horizon/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "horizon: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "config file (default $HORIZON_CONFIG or ./horizon.yaml)")
	apiURL := flag.String("api", "", "API base URL")
	dataDir := flag.String("data", "", "data directory")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *apiURL != "" {
		cfg.API.BaseURL = *apiURL
	}
	if *dataDir != "" {
		cfg.Storage.DataDir = *dataDir
	}

	if err := os.MkdirAll(cfg.Storage.DataDir, 0755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	if err := logging.Init(cfg.Storage.DataDir, cfg.Log.Level); err != nil {
		return err
	}
	defer logging.Close()

	st, err := store.Open(cfg.DBPath())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer st.Close()

	p := prefs.New(st)

	client, err := api.New(api.OptionsFrom(cfg.API))
	if err != nil {
		return err
	}

	lang, ok := p.Language()
	if !ok {
		lang = locale.Negotiate(os.Getenv("LANG"), locale.Lang(cfg.UI.DefaultLang))
	}
	theme, ok := p.Theme()
	if !ok {
		theme = prefs.Light
		if lipgloss.HasDarkBackground() {
			theme = prefs.Dark
		}
	}
	logging.Info("starting", "api", client.BaseURL(), "lang", lang, "theme", theme)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app := ui.New(ui.Config{
		Context:         ctx,
		Backend:         client,
		Settings:        p,
		History:         history.New(p, cfg.UI.HistoryLimit),
		Favorites:       favorites.New(p),
		Lang:            lang,
		Theme:           theme,
		ShowInfo:        !p.InfoDismissed(),
		Debounce:        cfg.UI.Debounce,
		ChartDelay:      cfg.UI.ChartDelay,
		ToastDuration:   cfg.UI.ToastDuration,
		ShelfSize:       cfg.UI.FallbackShelf,
		MaxCommentRunes: cfg.UI.MaxCommentRune,
	})

	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(app, opts...).Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
