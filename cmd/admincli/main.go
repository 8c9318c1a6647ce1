package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/medichannel/admincli/internal/console/cli"
	"github.com/medichannel/admincli/internal/console/config"
	"github.com/medichannel/admincli/internal/logging"
)

func main() {

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("%v", err)
		return
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
