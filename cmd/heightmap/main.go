package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/OCharnyshevich/heightmap/internal/config"
	"github.com/OCharnyshevich/heightmap/internal/scenario"
	"github.com/OCharnyshevich/heightmap/internal/storage"
	"github.com/OCharnyshevich/heightmap/pkg/world/gen"
	"github.com/OCharnyshevich/heightmap/pkg/world/heightmap"
)

func main() {
	cfg := config.DefaultConfig()

	flag.StringVar(&cfg.Scenario, "scenario", "", "scenario file: local path or any go-getter source")
	flag.StringVar(&cfg.Generation.Strategy, "strategy", cfg.Generation.Strategy, "generation strategy")
	flag.Int64Var(&cfg.Generation.Seed, "seed", cfg.Generation.Seed, "random seed")
	flag.IntVar(&cfg.Generation.Iterations, "iterations", cfg.Generation.Iterations, "fault iterations (octaves for simplex)")
	flag.Var((*thresholdsFlag)(&cfg.Generation.Thresholds), "thresholds", "comma-separated class percentiles in (0,1)")
	flag.IntVar(&cfg.Generation.Width, "width", cfg.Generation.Width, "map width in tiles")
	flag.IntVar(&cfg.Generation.Height, "height", cfg.Generation.Height, "map height in tiles")
	flag.IntVar(&cfg.Generation.Erosion, "erosion", cfg.Generation.Erosion, "erosion passes")
	flag.IntVar(&cfg.Generation.Workers, "workers", cfg.Generation.Workers, "concurrent row bands per erosion pass")
	flag.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "directory for run artifacts")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, explicitFlags(), log); err != nil {
		log.Error("heightmap failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, explicit map[string]bool, log *slog.Logger) error {
	if cfg.Scenario != "" {
		data, err := scenario.Fetch(ctx, cfg.Scenario)
		if err != nil {
			return err
		}
		fromFile, err := config.Parse(data)
		if err != nil {
			return err
		}
		config.Merge(cfg, fromFile, explicit)
		log.Info("loaded scenario", "source", cfg.Scenario)
	}

	reg := gen.DefaultRegistry()
	if err := cfg.Validate(reg); err != nil {
		return err
	}

	res, err := heightmap.New(reg, log).Run(cfg.Generation)
	if err != nil {
		return err
	}

	store, err := storage.New(cfg.DataDir, log)
	if err != nil {
		return err
	}
	rd, err := store.SaveRun(cfg, res)
	if err != nil {
		return err
	}

	log.Info("heightmap generated",
		"id", rd.ID,
		"strategy", cfg.Generation.Strategy,
		"seed", cfg.Generation.Seed,
		"width", res.Width,
		"height", res.Height,
		"classes", res.ClassCount,
		"histogram", rd.Histogram,
	)
	return nil
}

// explicitFlags returns the names of flags set on the command line.
func explicitFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}
