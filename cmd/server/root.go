package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmynk/mvptracker/internal/config"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// rootOptions holds flags shared by every command.
type rootOptions struct {
	configPath string
	envPath    string
}

func (o *rootOptions) load() (*config.Config, error) {
	return config.Load(o.configPath, o.envPath)
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "mvptracker",
		Short:         "MVP tracker backend",
		Long:          "Tracks use cases organized into phases and releases, served over Connect RPC.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&opts.envPath, "env-file", ".env", "path to a .env file (ignored if missing)")

	cmd.AddCommand(newServeCommand(opts))
	cmd.AddCommand(newTokenCommand(opts))
	cmd.AddCommand(newVersionCommand())

	return cmd
}

var errNoSecret = errors.New("auth.secret is required (set TRACKER_AUTH_SECRET)")

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the server version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
