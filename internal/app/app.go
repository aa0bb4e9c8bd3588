// Package app wires configuration, logging and the SDK client together for
// the CLI commands.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/boxtools/box-client/internal/config"
	"github.com/boxtools/box-client/internal/logger"
	"github.com/boxtools/box-client/pkg/box"
)

// ErrNotLoggedIn means no usable token is on disk; the user has to run
// `box-client auth login` first.
var ErrNotLoggedIn = errors.New("not logged in, run 'box-client auth login'")

// App carries everything a command needs to talk to the service.
type App struct {
	Config *config.Configuration
	Client *box.Client
	Logger logger.Logger
}

// NewApp loads configuration and builds an authenticated client. Refreshed
// tokens are persisted back to the config file automatically.
func NewApp(cmd *cobra.Command) (*App, error) {
	cfg, err := config.LoadOrCreate()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.Debug = true
	}
	log := logger.NewDefaultLogger(cfg.Debug)

	if cfg.Token.AccessToken == "" && cfg.Token.RefreshToken == "" {
		return nil, ErrNotLoggedIn
	}

	client := box.NewClient(context.Background(), &cfg.Token, cfg.UpdateToken, log)

	return &App{
		Config: cfg,
		Client: client,
		Logger: log,
	}, nil
}
