package tui

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/roomatch/roomatch-cli/internal/client/api"
	"github.com/roomatch/roomatch-cli/internal/client/config"
	"github.com/roomatch/roomatch-cli/internal/client/db"
	"github.com/roomatch/roomatch-cli/internal/client/session"
	"github.com/roomatch/roomatch-cli/internal/logging"
)

// App wires the client together: config, log file, local database, session
// store, API client, and the terminal program itself.
type App struct {
	cfg     *config.Config
	log     logging.Logger
	logFile *os.File
	db      *sql.DB
	store   *session.Store
	api     api.Client
}

// NewApp builds the client. The persisted session is rehydrated here,
// before the UI starts, so the first screen is already the right one and a
// restored token is attached to the API client.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logFile, err := os.OpenFile(cfg.LogFilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(logFile, nil)))

	database, err := db.Open(ctx, cfg.DatabasePath)
	if err != nil {
		_ = logFile.Close()
		return nil, fmt.Errorf("open client database: %w", err)
	}

	store := session.NewStore(database, log)
	if err := store.Rehydrate(ctx); err != nil {
		_ = database.Close()
		_ = logFile.Close()
		return nil, err
	}

	apiClient := api.NewHTTPClient(cfg.APIBaseURL, log)
	if sess := store.Current(); sess.IsAuthenticated {
		apiClient.SetToken(sess.Token)
	}

	return &App{
		cfg:     cfg,
		log:     log,
		logFile: logFile,
		db:      database,
		store:   store,
		api:     apiClient,
	}, nil
}

// Run blocks until the user quits the program.
func (a *App) Run(ctx context.Context) error {
	model := NewModel(ctx, a.cfg, a.log, a.api, a.store)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (a *App) Close() error {
	err := a.db.Close()
	if cerr := a.logFile.Close(); err == nil {
		err = cerr
	}
	return err
}
