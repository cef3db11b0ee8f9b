// Package cli implements boardctl, a command line client for a running
// project board.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/project-board/internal/ports"
)

// App holds what the subcommands need once the root flags are resolved.
type App struct {
	Board ports.BoardClient

	// MoveWorkers bounds how many drops move sends at once.
	MoveWorkers int
}

// Options are the root command's persistent flags.
type Options struct {
	Profile   string
	ConfigDir string
	URL       string
	Timeout   time.Duration
}

// Connector builds the App from the resolved flags. It runs once, before
// any subcommand.
type Connector func(opts Options) (*App, error)

// session carries the connected App from the root's pre-run hook to the
// subcommand that runs.
type session struct {
	opts    Options
	connect Connector
	app     *App
}

// NewRootCmd creates the top-level "boardctl" command.
func NewRootCmd(connect Connector) *cobra.Command {
	s := &session{connect: connect}

	root := &cobra.Command{
		Use:           "boardctl",
		Short:         "Inspect and rearrange a running project board",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			app, err := s.connect(s.opts)
			if err != nil {
				return fmt.Errorf("connecting to board: %w", err)
			}
			s.app = app
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&s.opts.Profile, "profile", "local", "Config profile to load")
	flags.StringVar(&s.opts.ConfigDir, "config-dir", "configs", "Directory holding the config YAML files")
	flags.StringVar(&s.opts.URL, "url", "", "Board base URL (overrides client.base_url)")
	flags.DurationVar(&s.opts.Timeout, "timeout", 0, "Per-request timeout (overrides client.timeout)")

	root.AddCommand(
		newListCmd(s),
		newAddCmd(s),
		newMoveCmd(s),
	)

	return root
}
