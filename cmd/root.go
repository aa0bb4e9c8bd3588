// Package cmd defines the box-client command tree.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/boxtools/box-client/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "box-client",
	Short: "A CLI client for the Box file-storage service",
	Long: `box-client is a command-line tool for the Box v2 API.

It covers authentication, folder and file management, uploads and
downloads, search, collaborations and the event stream.`,
	// Commands other than the auth group need a token on disk; fail early
	// with a friendly message instead of on the first request.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Parent() != nil && cmd.Parent().Name() == "auth" {
			return nil
		}
		if cmd.Name() == "help" || cmd.Name() == cmd.Root().Name() {
			return nil
		}
		if _, err := app.NewApp(cmd); err != nil {
			if errors.Is(err, app.ErrNotLoggedIn) {
				return err
			}
			return fmt.Errorf("initializing: %w", err)
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		errorColor.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
}
