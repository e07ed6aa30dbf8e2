// Command insightctl runs insight maintenance jobs outside the HTTP server:
// the scheduled daily generation, sample seeding, bulk import and schema
// migrations.
//
// Every subcommand reads the same configuration as the server. Use
// --config to point at a YAML file instead of CONFIG_PATH.
//
// Exit codes: 0 = success, 1 = error (including a failed daily generation).
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/insight-calendar/internal/app"
	"github.com/heartmarshall/insight-calendar/internal/config"
	"github.com/heartmarshall/insight-calendar/pkg/ctxutil"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// env is filled by the root PersistentPreRunE before any subcommand runs.
type env struct {
	configPath string
	cfg        *config.Config
	log        *slog.Logger
}

func newRootCmd() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:           "insightctl",
		Short:         "Maintenance jobs for the insight calendar",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadFrom(e.configPath)
			if err != nil {
				return err
			}
			e.cfg = cfg
			e.log = app.NewLogger(cfg.Log)
			cmd.SetContext(ctxutil.WithTrigger(cmd.Context(), ctxutil.TriggerCLI))
			return nil
		},
	}
	root.PersistentFlags().StringVar(&e.configPath, "config", os.Getenv("CONFIG_PATH"), "path to config YAML")

	root.AddCommand(
		generateTodayCmd(e),
		seedCmd(e),
		importCmd(e),
		migrateCmd(e),
		envCmd(),
	)
	return root
}

// container wires the services the way the server does.
func (e *env) container(ctx context.Context) (*app.Container, error) {
	return app.NewContainer(ctx, e.cfg, e.log)
}
