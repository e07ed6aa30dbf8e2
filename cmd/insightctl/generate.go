package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/insight-calendar/internal/service/insight"
)

func generateTodayCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "generate-today",
		Short: "Create today's (KST) insight unless it already exists",
		Long: `Runs the same daily job as POST /api/insights/generate.

Intended for schedulers that prefer a process over an HTTP call. A failed
generation exits with status 1 and stores nothing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), e.cfg.Generation.Timeout)
			defer cancel()

			c, err := e.container(ctx)
			if err != nil {
				return err
			}
			defer c.Close()

			res := c.Insights.RunDaily(ctx)
			out := cmd.OutOrStdout()

			switch res.Status {
			case insight.StatusSkipped:
				fmt.Fprintf(out, "%s: insight already exists\n", res.Date)
			case insight.StatusCreated:
				fmt.Fprintf(out, "%s: created %q (%s)\n", res.Date, res.Insight.Preview(60), res.Duration.Round(time.Millisecond))
			default:
				return fmt.Errorf("%s: generation failed: %w", res.Date, res.Err)
			}
			return nil
		},
	}
}
