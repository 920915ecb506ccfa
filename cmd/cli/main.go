package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/skillswap/skillswap-cli/internal/buildinfo"
	"github.com/skillswap/skillswap-cli/internal/client/cli"
	"github.com/skillswap/skillswap-cli/internal/client/config"
	"github.com/skillswap/skillswap-cli/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	go app.StartOnlineStatusWatcher(ctx, cfg.OnlineCheckInterval)

	app.Run(ctx)
}
