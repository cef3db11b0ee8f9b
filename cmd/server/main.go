// Command server serves the project board: the HTML board with its drag and
// drop lists, the project form, and the JSON API boardctl talks to.
//
// APP_PROFILE selects the config profile (local, dev, prod). The process
// stops on SIGINT or SIGTERM after draining in-flight requests.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/project-board/internal/adapters/http"
	"github.com/jsamuelsen11/project-board/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/project-board/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/project-board/internal/adapters/http/views"
	"github.com/jsamuelsen11/project-board/internal/app"
	"github.com/jsamuelsen11/project-board/internal/app/state"
	"github.com/jsamuelsen11/project-board/internal/platform/config"
	"github.com/jsamuelsen11/project-board/internal/platform/health"
	"github.com/jsamuelsen11/project-board/internal/platform/logging"
	"github.com/jsamuelsen11/project-board/internal/platform/telemetry"
	"github.com/jsamuelsen11/project-board/internal/ports"
)

const drainTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "board: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE is required (local, dev or prod)")
	}
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := telemetry.Init(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)
	provideBoard(injector, cfg, logger)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("wiring board: %w", err)
	}
	watchBoard(injector)

	logger.Info("board ready", slog.String("title", cfg.Board.Title), slog.String("profile", profile))

	served := make(chan error, 1)
	go func() { served <- server.Start() }()

	select {
	case <-ctx.Done():
		logger.Info("shutting down board")
	case err := <-served:
		return fmt.Errorf("serving board: %w", err)
	}

	drainCtx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()
	errs := []error{server.Shutdown(drainCtx)}
	<-served
	errs = append(errs, otel.Shutdown(drainCtx))
	if err := errors.Join(errs...); err != nil {
		logger.Error("board shutdown incomplete", slog.Any("error", err))
	}
	return nil
}

// watchBoard registers the readiness checks: the board state must not be
// stuck behind a listener, and the lists must have rendered at least once.
func watchBoard(i do.Injector) {
	registry := do.MustInvoke[ports.HealthRegistry](i)
	board := do.MustInvoke[*views.Board](i)
	registry.Register(do.MustInvoke[*state.ProjectState](i))
	registry.Register(health.NewCheck("board-views", func(context.Context) error {
		if !board.Rendered() {
			return errors.New("board views not rendered")
		}
		return nil
	}))
}

func provideBoard(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	// Lists subscribe to the state as the board is built, before any
	// project can be added.
	do.Provide(injector, func(do.Injector) (*state.ProjectState, error) {
		return state.New(), nil
	})
	do.Provide(injector, func(i do.Injector) (*views.Board, error) {
		return views.NewBoard(cfg.Board.Title, do.MustInvoke[*state.ProjectState](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.ProjectService, error) {
		return app.NewProjectService(
			do.MustInvoke[*state.ProjectState](i),
			do.MustInvoke[*telemetry.Metrics](i),
			logger,
		), nil
	})
	do.Provide(injector, func(do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		svc := do.MustInvoke[ports.ProjectService](i)
		return adapthttp.NewRouter(
			handlers.NewBoardHandler(svc, do.MustInvoke[*views.Board](i)),
			handlers.NewProjectHandler(svc),
			handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(do.MustInvoke[*telemetry.Metrics](i)),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})
	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[nethttp.Handler](i), logger), nil
	})
}
