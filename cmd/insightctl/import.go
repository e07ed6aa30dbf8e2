package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/insight-calendar/internal/app"
)

func importCmd(e *env) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Upsert curated insights from a YAML file",
		Long: `Reads a YAML list of insights, each with a date plus the usual
insight_text, keywords, context and question fields. All entries are
validated first and then written in one transaction; existing dates are
overwritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if file == "" {
				return errors.New("--file is required")
			}

			items, err := app.ReadImportFile(file)
			if err != nil {
				return err
			}

			c, err := e.container(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Close()

			n, err := c.Insights.Import(cmd.Context(), items)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "imported %d insights into %s store\n", n, c.Store.Mode)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "path to the YAML file")
	return cmd
}
