package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/insight-calendar/internal/service/insight"
)

func seedCmd(e *env) *cobra.Command {
	var in insight.SeedInput

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill past dates with sample insights",
		Long: `Writes catalog samples for the given number of KST days ending today,
or for a single --date. Dates that already have an insight are left alone.

Examples:
  insightctl seed --days 30
  insightctl seed --date 2026-02-17`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := e.container(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Close()

			report, err := c.Insights.Seed(cmd.Context(), in)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range report.Results {
				if r.Message != "" {
					fmt.Fprintf(out, "%s\t%s\t%s\n", r.Date, r.Status, r.Message)
					continue
				}
				fmt.Fprintf(out, "%s\t%s\n", r.Date, r.Status)
			}
			s := report.Summary
			fmt.Fprintf(out, "total=%d created=%d exists=%d errors=%d\n", s.Total, s.Created, s.Exists, s.Errors)

			if s.Errors > 0 {
				return fmt.Errorf("seed finished with %d errors", s.Errors)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&in.Days, "days", insight.DefaultSeedDays, "number of days ending today")
	cmd.Flags().StringVar(&in.Date, "date", "", "seed a single YYYY-MM-DD date instead")
	return cmd
}
