package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/meshgridgo/internal/config"
	"github.com/vk/meshgridgo/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	model  *config.Model
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and the
// loaded mesh model.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, appConfig.MeshPath)
	if err != nil {
		// A failure to load the mesh definition is a fatal startup error.
		panic(fmt.Errorf("failed to load mesh definition: %w", err))
	}
	logger.Debug("Mesh definition loaded into unified model.", "nodes", len(model.Nodes))

	return &App{
		outW:   outW,
		logger: logger,
		config: appConfig,
		model:  model,
	}
}

// Model returns the loaded mesh model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
