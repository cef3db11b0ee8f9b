// Package main is the entry point for boardctl, the project board's command
// line client. It loads the same layered config as the server and talks to
// the board through the instrumented HTTP client.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/project-board/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/project-board/internal/cli"
	"github.com/jsamuelsen11/project-board/internal/platform/config"
	"github.com/jsamuelsen11/project-board/internal/platform/httpclient"
	"github.com/jsamuelsen11/project-board/internal/platform/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Every call one invocation makes shares a correlation id, so a bulk
	// move reads as one thread in the board's logs.
	ctx = httpclient.WithCorrelationID(ctx, uuid.NewString())

	if err := cli.NewRootCmd(connect).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// connect loads config for the selected profile, applies the flag
// overrides and builds the board client.
func connect(opts cli.Options) (*cli.App, error) {
	cfg, err := config.Load(opts.Profile, config.WithConfigDir(opts.ConfigDir))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if opts.URL != "" {
		cfg.Client.BaseURL = opts.URL
	}
	if opts.Timeout > 0 {
		cfg.Client.Timeout = opts.Timeout
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	client := httpclient.New(&cfg.Client, "board-api", nil, logger)

	return &cli.App{
		Board:       acl.NewBoardClient(client, logger),
		MoveWorkers: cfg.Board.MoveWorkers,
	}, nil
}
