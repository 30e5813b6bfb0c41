package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/voxcast/voxcast/config"
	"github.com/voxcast/voxcast/pkg/otel"
	"github.com/voxcast/voxcast/server"
)

var version string = "dev"

func main() {
	configFlag := flag.String("config", "config.yaml", "configuration file")
	addressFlag := flag.String("address", "", "listen address")

	flag.Parse()

	ctx := context.Background()

	if err := otel.Setup(ctx, "voxcast", version); err != nil {
		slog.ErrorContext(ctx, "unable to set up telemetry", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Parse(*configFlag)

	if err != nil {
		slog.ErrorContext(ctx, "unable to parse configuration", "error", err)
		os.Exit(1)
	}

	if *addressFlag != "" {
		cfg.Address = *addressFlag
	}

	s, err := server.New(cfg)

	if err != nil {
		slog.ErrorContext(ctx, "unable to create server", "error", err)
		os.Exit(1)
	}

	slog.InfoContext(ctx, "server starting", "address", cfg.Address)

	if err := s.ListenAndServe(); err != nil {
		slog.ErrorContext(ctx, "server stopped", "error", err)
		os.Exit(1)
	}
}
