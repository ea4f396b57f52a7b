package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/PoE2Craft_Go/internal/catalog"
	"github.com/osse101/PoE2Craft_Go/internal/config"
	"github.com/osse101/PoE2Craft_Go/internal/crafting"
	"github.com/osse101/PoE2Craft_Go/internal/rng"
	"github.com/osse101/PoE2Craft_Go/internal/simulate"
)

// Engine bundles the read-only catalog with the services built on it
type Engine struct {
	Catalog   *catalog.Catalog
	Crafting  crafting.Service
	Simulator simulate.Runner
}

// BuildEngine loads the catalog and constructs the crafting service and simulation runner.
// Any catalog problem aborts startup.
func BuildEngine(ctx context.Context, cfg *config.Config) (*Engine, error) {
	cat, err := catalog.NewLoader(cfg.SchemaDir).Load(ctx, cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	engineCfg := crafting.Config{
		CacheSize: cfg.CacheSize,
		CacheTTL:  cfg.CacheTTL,
	}
	if cfg.DefaultSeed != nil {
		// Requests share the source, so it must be safe for concurrent use
		engineCfg.Rand = rng.NewLocked(rng.NewSeeded(*cfg.DefaultSeed))
		slog.Info(LogMsgSeededSource, "seed", *cfg.DefaultSeed)
	}

	svc, err := crafting.NewService(cat, engineCfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedBuildEngine, err)
	}

	runner := simulate.NewRunner(svc, simulate.Config{
		MaxTrials: cfg.SimMaxTrials,
		Workers:   cfg.SimWorkers,
	})

	slog.Info(LogMsgEngineReady,
		"data_dir", cfg.DataDir,
		"catalog_version", svc.CatalogVersion(),
		"currencies", len(svc.ListCurrencies()))

	return &Engine{Catalog: cat, Crafting: svc, Simulator: runner}, nil
}
