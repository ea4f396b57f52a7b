package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/PoE2Craft_Go/internal/bootstrap"
	"github.com/osse101/PoE2Craft_Go/internal/config"
	"github.com/osse101/PoE2Craft_Go/internal/database"
)

// app builds the engine or the database pool on first use so that commands
// pay only for what they touch
type app struct {
	cfg *config.Config
	eng *bootstrap.Engine
}

func newApp(cfg *config.Config) *app {
	return &app{cfg: cfg}
}

func (a *app) engine(ctx context.Context) (*bootstrap.Engine, error) {
	if a.eng == nil {
		eng, err := bootstrap.BuildEngine(ctx, a.cfg)
		if err != nil {
			return nil, err
		}
		a.eng = eng
	}
	return a.eng, nil
}

func (a *app) pool(ctx context.Context) (*pgxpool.Pool, error) {
	if !a.cfg.HistoryEnabled() {
		return nil, fmt.Errorf("%s is not set", config.EnvDatabaseURL)
	}
	return database.NewPool(ctx, a.cfg.PoolConfig())
}
