package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"

	"github.com/astronerd/neowatch/internal/config"
	"github.com/astronerd/neowatch/internal/neows"
	"github.com/astronerd/neowatch/internal/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	initLogger(cfg.LogLevel)

	client := neows.New(cfg)
	reporter := report.New(client, os.Stdout)
	ctx := context.Background()

	// Asteroids approaching between Oct 31 and Nov 2 2019 (inclusive).
	if err := reporter.ListAsteroids(ctx, "2019-10-31", "2019-11-02"); err != nil {
		log.Error("asteroid listing failed", "error", err)
		os.Exit(1)
	}

	// Velocity statistics for Sep 10 through Sep 17 2020 (inclusive).
	if err := reporter.AnalyzeVelocities(ctx, "2020-09-10", "2020-09-17"); err != nil {
		log.Error("velocity analysis failed", "error", err)
		os.Exit(1)
	}

	// The three most recent potentially hazardous close approaches.
	if err := reporter.ScanRecentHazardous(ctx); err != nil {
		log.Error("hazard scan failed", "error", err)
		os.Exit(1)
	}
}

func initLogger(level string) {
	log.SetOutput(os.Stderr)
	log.SetReportTimestamp(true)
	log.SetTimeFormat("2006-01-02 15:04:05.000")
	switch level {
	case "Debug":
		log.SetLevel(log.DebugLevel)
	case "Info":
		log.SetLevel(log.InfoLevel)
	case "Warn":
		log.SetLevel(log.WarnLevel)
	case "Error":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}
