// Command ghconnect runs the GitHub connection API, the disconnect cleanup
// worker and the database migrations.
//
// Configuration is read from --config, CONFIG_PATH or ./config.yaml, and the
// environment. Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/ghconnect/internal/app"
	"github.com/heartmarshall/ghconnect/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "ghconnect",
		Short:         "GitHub account linking service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML configuration file (overrides CONFIG_PATH)")

	load := func() (*config.Config, error) {
		if configPath != "" {
			return config.LoadFile(configPath, true)
		}
		return config.Load()
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, err := load()
				if err != nil {
					return err
				}
				return app.Run(cmd.Context(), cfg)
			},
		},
		&cobra.Command{
			Use:   "worker",
			Short: "Consume disconnect cleanup jobs",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, err := load()
				if err != nil {
					return err
				}
				return app.RunWorker(cmd.Context(), cfg)
			},
		},
		newMigrateCmd(load),
		&cobra.Command{
			Use:   "version",
			Short: "Print build information",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion())
			},
		},
	)

	return root
}

func newMigrateCmd(load func() (*config.Config, error)) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Apply, roll back or inspect database migrations",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "status"},
		RunE: func(cmd *cobra.Command, args []string) error {
			command := "up"
			if len(args) == 1 {
				command = args[0]
			}
			cfg, err := load()
			if err != nil {
				return err
			}
			return app.Migrate(cmd.Context(), cfg, dir, command)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "migrations", "directory containing goose migrations")

	return cmd
}
