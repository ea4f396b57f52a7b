package main

import (
	"context"
	"flag"

	"github.com/osse101/PoE2Craft_Go/internal/database"
)

type MigrateCommand struct {
	app *app
}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Apply craft-history migrations to DATABASE_URL"
}

func (c *MigrateCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx := context.Background()
	pool, err := c.app.pool(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	version, err := database.Migrate(ctx, pool)
	if err != nil {
		return err
	}
	PrintSuccess("Schema at version %d", version)
	return nil
}
