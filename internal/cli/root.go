// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev" // semantic version (e.g., "v1.2.3")
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version.
// Typically called from main with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the arbor CLI with ctx and returns the first command error.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand builds the root command with every subcommand registered.
//
// PersistentPreRunE loads the optional TOML config, resolves the log level
// (config, then --verbose) and attaches both logger and config to the
// command context.
func NewRootCommand() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)
	flags := &renderFlags{}

	root := &cobra.Command{
		Use:           appName,
		Short:         "arbor builds and prints ordered forests",
		Long:          `arbor builds ordered trees (forests under a hidden pseudo-root) and prints them as indented text, Graphviz DOT or SVG.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			level, err := log.ParseLevel(cfg.Log.Level)
			if err != nil {
				return fmt.Errorf("config: log.level: %w", err)
			}
			if verbose {
				level = log.DebugLevel
			}
			rc, err := flags.overlay(cmd.Flags(), cfg.Render)
			if err != nil {
				return err
			}
			cfg.Render = rc

			logger := newLogger(cmd.ErrOrStderr(), level)
			ctx := withLogger(cmd.Context(), logger)
			cmd.SetContext(withConfig(ctx, cfg))
			logger.Debug("configured", "config", configPath, "format", rc.Format, "output", rc.Output)

			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("%s {{.Version}}\ncommit: %s\nbuilt: %s\n", appName, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "TOML configuration file")
	flags.bind(root.PersistentFlags())

	root.AddCommand(newDemoCmd())
	root.AddCommand(newBuildCmd())

	return root
}
