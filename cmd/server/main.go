// Command server runs the insight calendar HTTP API.
//
// Configuration comes from the environment (see internal/config) with an
// optional YAML file named by CONFIG_PATH.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/insight-calendar/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		slog.Error("server stopped", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}
}
