package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/roomatch/roomatch-cli/internal/buildinfo"
	"github.com/roomatch/roomatch-cli/internal/client/config"
	"github.com/roomatch/roomatch-cli/internal/client/tui"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()

	app, err := tui.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}
	defer app.Close()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("client exited with error: %v", err)
	}
}
