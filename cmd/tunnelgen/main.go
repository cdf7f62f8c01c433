// Package main is the entry point for tunnelgen.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/samdwyer/tunnelgen/internal/export"
	"github.com/samdwyer/tunnelgen/internal/gen"
	"github.com/samdwyer/tunnelgen/internal/preset"
	"github.com/samdwyer/tunnelgen/internal/rng"
	"github.com/samdwyer/tunnelgen/internal/telemetry"
	"github.com/samdwyer/tunnelgen/internal/ui"
)

func main() {
	seed := flag.Uint64("seed", 0, "generation seed (0 picks a time-based seed)")
	seedText := flag.String("seed-text", "", "text seed, hashed to a numeric seed (overrides -seed)")
	presetID := flag.String("preset", "classic", "generation preset name")
	width := flag.Int("width", 300, "map width in tiles")
	height := flag.Int("height", 300, "map height in tiles")
	preview := flag.Bool("preview", false, "open the terminal viewer instead of printing to stdout")
	flag.Parse()

	// Load .env file for local development
	// This makes HONEYCOMB_TUNNELGEN_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	ctx := context.Background()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Generation will run without observability")
		// Continue without telemetry - the generator still works
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	registry := preset.MustLoadRegistry()
	def := registry.Get(*presetID)
	if def == nil {
		log.Fatalf("Unknown preset %q (available: %s)", *presetID, strings.Join(registry.Names(), ", "))
	}

	resolvedSeed := *seed
	if *seedText != "" {
		resolvedSeed = rng.SeedFromString(*seedText)
	} else if resolvedSeed == 0 {
		resolvedSeed = uint64(time.Now().UnixNano())
	}

	session, err := gen.NewSession(def.Config(*width, *height), resolvedSeed)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	res, err := session.Run(ctx)
	if err != nil {
		if errors.Is(err, gen.ErrGenerationExhausted) {
			log.Fatalf("No valid map for seed %d with preset %q: %v", resolvedSeed, *presetID, err)
		}
		log.Fatalf("Generation error: %v", err)
	}

	if *preview {
		status := fmt.Sprintf("seed %d  preset %s  attempts %d", res.Seed, *presetID, res.Attempts)
		viewer, err := ui.NewViewer(res.Grid, status)
		if err != nil {
			log.Fatalf("Failed to open viewer: %v", err)
		}
		if err := viewer.Run(); err != nil {
			log.Fatalf("Viewer error: %v", err)
		}
		return
	}

	if err := export.NewTextWriter(os.Stdout).Write(res); err != nil {
		log.Fatalf("Failed to write map: %v", err)
	}
	log.Printf("map %s: seed=%d attempts=%d path=%d tiles", res.ID, res.Seed, res.Attempts, len(res.Path))
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// Always set headers from our API key - the .env file may have an unexpanded
	// variable reference that doesn't work, so we construct it properly here
	apiKey := os.Getenv("HONEYCOMB_TUNNELGEN_API_KEY")
	dataset := os.Getenv("HONEYCOMB_TUNNELGEN_DATASET")
	if dataset == "" {
		dataset = "tunnelgen" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
