package main

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/insight-calendar/internal/config"
)

// envCmd needs no loaded configuration, so it replaces the root pre-run.
func envCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "env",
		Short:             "List the environment variables the server and jobs read",
		Args:              cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			return config.Describe(cmd.OutOrStdout())
		},
	}
}
