package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmynk/mvptracker/internal/auth"
)

type tokenOptions struct {
	*rootOptions
	identity string
	ttl      time.Duration
}

// newTokenCommand issues principal tokens. Identity is not verified by the
// server; whoever holds the secret decides who callers are.
func newTokenCommand(rootOpts *rootOptions) *cobra.Command {
	opts := &tokenOptions{rootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for an identity",
		Long: `Issue a signed bearer token whose subject is the given identity.

Example:
  mvptracker token --identity alice
  mvptracker token --identity ops --ttl 1h`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if cfg.Auth.Secret == "" {
				return errNoSecret
			}
			ttl := cfg.Auth.TokenTTL
			if opts.ttl > 0 {
				ttl = opts.ttl
			}

			token, err := auth.NewJWTManager(cfg.Auth.Secret, ttl).Generate(opts.identity, false)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.identity, "identity", "", "caller identity (required)")
	cmd.Flags().DurationVar(&opts.ttl, "ttl", 0, "token lifetime (default auth.token_ttl)")
	_ = cmd.MarkFlagRequired("identity")

	return cmd
}
