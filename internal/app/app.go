package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/plangraph/internal/planhcl"
)

// PlanLoader loads a plan from one or more paths.
type PlanLoader interface {
	Load(ctx context.Context, paths ...string) (*planhcl.Plan, error)
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader PlanLoader
}

// NewApp is the constructor for the main application. The report goes to
// outW and logs go to logW, through a logger owned by this instance.
func NewApp(outW, logW io.Writer, cfg *Config, loader PlanLoader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	if loader == nil {
		loader = planhcl.NewLoader()
	}

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		loader: loader,
	}
}
