package main

import (
	"fmt"
	"os"
	"time"

	"loki/internal/domain/entities"
	"loki/internal/infrastructure/auth"
	"loki/internal/infrastructure/config"

	"github.com/spf13/cobra"
)

type tokenOptions struct {
	subject string
	role    string
	ttl     time.Duration
	secret  string
}

func newRootCmd() *cobra.Command {
	opts := tokenOptions{}

	cmd := &cobra.Command{
		Use:   "devtoken",
		Short: "Issue a signed bearer token for the LOKI API",
		Example: `  devtoken --sub 7f7c... --role owner
  devtoken --sub admin-1 --role admin --ttl 1h`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, err := issueToken(opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = config.DevJWTSecret
	}

	cmd.Flags().StringVar(&opts.subject, "sub", "", "user id placed in the sub claim")
	cmd.Flags().StringVar(&opts.role, "role", string(entities.RoleTenant), "tenant, owner or admin")
	cmd.Flags().DurationVar(&opts.ttl, "ttl", 24*time.Hour, "token lifetime")
	cmd.Flags().StringVar(&opts.secret, "secret", secret, "HS256 signing secret (defaults to JWT_SECRET)")
	_ = cmd.MarkFlagRequired("sub")

	return cmd
}

func issueToken(opts tokenOptions) (string, error) {
	role := entities.Role(opts.role)
	if !role.Valid() {
		return "", fmt.Errorf("unknown role %q", opts.role)
	}
	if opts.ttl <= 0 {
		return "", fmt.Errorf("ttl must be positive")
	}
	v, err := auth.NewVerifier(opts.secret)
	if err != nil {
		return "", err
	}
	return v.Issue(opts.subject, role, opts.ttl)
}
