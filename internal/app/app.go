package app

import (
	"context"
	"fmt"
	"log/slog"

	"zoteroconv/internal/config"
	"zoteroconv/internal/infrastructure/report"
	"zoteroconv/internal/infrastructure/writer"
	"zoteroconv/internal/locator"
	"zoteroconv/internal/logging"
	"zoteroconv/internal/usecase"
)

// Application wires configuration to the conversion pipeline.
type Application struct {
	cfg      config.Config
	pipeline *usecase.Pipeline
	logger   *slog.Logger
}

// New builds a runnable application instance for one conversion run.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	registry := locator.NewRegistry()
	registry.Register(report.NewZoteroLocator(baseLogger.With("component", "locator.zotero")))

	loc, err := registry.Resolve(cfg.Format)
	if err != nil {
		return nil, fmt.Errorf("resolve report format: %w", err)
	}

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Locator: loc,
		Writer:  writer.NewJSONFile(cfg.Output),
		Logger:  baseLogger.With("component", "pipeline"),
	})

	return &Application{cfg: cfg, pipeline: pipeline, logger: baseLogger}, nil
}

// Run performs a single pipeline execution.
func (a *Application) Run(ctx context.Context) error {
	count, err := a.pipeline.Convert(ctx, a.cfg.Input)
	if err != nil {
		return err
	}

	a.logger.Info("report converted", "entries", count, "output", a.cfg.Output)
	return nil
}
