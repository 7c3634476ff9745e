package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ksolomon/jobtrack/internal/config"
	"github.com/ksolomon/jobtrack/internal/extractor"
	"github.com/ksolomon/jobtrack/internal/fetcher"
	"github.com/ksolomon/jobtrack/internal/logging"
	"github.com/ksolomon/jobtrack/internal/sheets"
	"github.com/ksolomon/jobtrack/internal/tracker"
)

// App is the dependency container for the CLI application
type App struct {
	Config    *config.Config
	Store     sheets.RowStore
	Tracker   *tracker.Tracker
	Fetcher   *fetcher.Fetcher
	Extractor *extractor.Client

	logFile *os.File
}

// NewApp initializes and returns a new App instance. A missing OpenAI key or
// unusable spreadsheet credentials fail here, before the shell ever starts.
func NewApp(ctx context.Context) (*App, error) {
	if err := config.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}
	cfg := config.AppConfig

	logFile, err := logging.Setup(cfg.LogFile)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	if cfg.OpenAIKey == "" {
		return nil, fmt.Errorf("OpenAI key not found, add OPENAI_API_KEY to your .env file")
	}
	slog.Info("OpenAI API key loaded", "key", mask(cfg.OpenAIKey))

	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet_id not set, edit %s", config.GetConfigPath())
	}

	store, err := sheets.NewClient(ctx, cfg.CredentialsFile, cfg.SpreadsheetID, cfg.Worksheet)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Google Sheets: %w", err)
	}

	return &App{
		Config:    cfg,
		Store:     store,
		Tracker:   tracker.New(store),
		Fetcher:   fetcher.New(),
		Extractor: extractor.NewClient(cfg.OpenAIKey, cfg.Model),
		logFile:   logFile,
	}, nil
}

// Close closes all resources
func (a *App) Close() error {
	if a.logFile != nil {
		return a.logFile.Close()
	}
	return nil
}

func mask(s string) string {
	if len(s) <= 10 {
		return "****"
	}
	return s[:4] + "…" + s[len(s)-4:]
}
