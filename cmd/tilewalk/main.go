// Package main is the entry point for tilewalk.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/samdwyer/tilewalk/internal/game"
	"github.com/samdwyer/tilewalk/internal/gamedata"
	"github.com/samdwyer/tilewalk/internal/prefs"
	"github.com/samdwyer/tilewalk/internal/telemetry"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	// The terminal belongs to the game, so logs go to a file when asked.
	if path := os.Getenv("TILEWALK_LOG"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	setupOTelEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Running without tracing")
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	worldCfg, err := gamedata.LoadWorldConfig(os.Getenv("TILEWALK_CONFIG"))
	if err != nil {
		log.Fatalf("Failed to load world: %v", err)
	}

	store, err := prefs.Open()
	if err != nil {
		log.Printf("Note: preferences will not be saved: %v", err)
	}

	g, err := game.New(ctx, game.Config{FrameRate: envInt("TILEWALK_FPS")}, worldCfg, store)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// setupOTelEnv maps TILEWALK_OTLP_* variables onto the standard OTEL ones
// without overriding anything already set.
func setupOTelEnv() {
	endpoint := os.Getenv("TILEWALK_OTLP_ENDPOINT")
	if endpoint != "" && os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", endpoint)
	}

	apiKey := os.Getenv("TILEWALK_OTLP_API_KEY")
	if apiKey != "" && os.Getenv("OTEL_EXPORTER_OTLP_HEADERS") == "" {
		dataset := os.Getenv("TILEWALK_OTLP_DATASET")
		if dataset == "" {
			dataset = "tilewalk"
		}
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}

func envInt(name string) int {
	v := os.Getenv(name)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Warning: ignoring %s=%q: %v", name, v, err)
		return 0
	}
	return n
}
