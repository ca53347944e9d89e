package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/ColfrozenlIquid/wave-function-collapse/internal/config"
	"github.com/ColfrozenlIquid/wave-function-collapse/internal/logger"
	"github.com/ColfrozenlIquid/wave-function-collapse/internal/render"
	"github.com/ColfrozenlIquid/wave-function-collapse/internal/wfc"
)

func main() {
	configFile := flag.String("config", "data/terrain.yaml", "Path to generator config YAML file")
	loggingConfig := flag.String("logging", "data/logging.yaml", "Path to logging config YAML file")
	seed := flag.Int64("seed", 0, "Generation seed (default: config value, or random based on current time)")
	size := flag.Int("size", 0, "Map edge length including the border (default: config value)")
	outputFile := flag.String("output", "", "Output file (empty for stdout)")
	showLegend := flag.Bool("legend", true, "Show legend")
	sprites := flag.Bool("sprites", false, "Print sprite placements (column row sprite x y) instead of the glyph map")
	flag.Parse()

	logConfig, err := logger.LoadConfig(*loggingConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading logging config: %v\n", err)
	}
	if err := logger.Initialize(logConfig); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Close()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		logger.Warning("Failed to load generator config, using defaults", "path", *configFile, "error", err)
	}

	if *size > 0 {
		cfg.Generation.Size = *size
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	mapSeed := *seed
	if mapSeed == 0 {
		mapSeed = cfg.Generation.Seed
	}
	if mapSeed == 0 {
		mapSeed = time.Now().UnixNano()
		logger.Info("Map seed selected", "seed", mapSeed, "random", true)
	} else {
		logger.Info("Map seed selected", "seed", mapSeed, "random", false)
	}

	mapConfig, err := cfg.Generation.MapConfig(mapSeed)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	generated, err := wfc.NewGenerator(mapConfig).Generate()
	if err != nil {
		logger.Error("Terrain generation failed", "seed", mapSeed, "error", err)
		os.Exit(1)
	}

	toFile := *outputFile != ""
	colored := cfg.Render.Color && !toFile && term.IsTerminal(int(os.Stdout.Fd()))

	var output strings.Builder
	output.WriteString(fmt.Sprintf("Terrain Map (Seed: %d, Size: %dx%d, Attempts: %d)\n",
		generated.Seed, generated.Grid.Columns, generated.Grid.Rows, generated.Attempts))
	if !generated.Result.Complete {
		output.WriteString(fmt.Sprintf("Incomplete: %d cells unresolved after %d iterations\n",
			generated.Result.Unresolved, generated.Result.Iterations))
	}
	output.WriteString(strings.Repeat("=", generated.Grid.Columns) + "\n")

	if *sprites {
		for _, p := range render.Placements(generated.Grid, cfg.Render.TileSize, render.DefaultOrigin) {
			output.WriteString(fmt.Sprintf("%d %d %d %.0f %.0f\n", p.Column, p.Row, p.Sprite, p.X, p.Y))
		}
	} else {
		if err := render.Text(&output, generated.Grid, render.Options{
			Color:  colored,
			Legend: *showLegend && cfg.Render.Legend,
		}); err != nil {
			log.Fatalf("Failed to render map: %v", err)
		}
		output.WriteString("\n" + render.Summary(generated.Grid) + "\n")
	}

	if toFile {
		if err := os.WriteFile(*outputFile, []byte(output.String()), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Map written to %s\n", *outputFile)
	} else {
		fmt.Print(output.String())
	}
}
