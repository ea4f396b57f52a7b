package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/osse101/PoE2Craft_Go/internal/database/postgres"
	"github.com/osse101/PoE2Craft_Go/internal/history"
)

type HistoryCommand struct {
	app *app
}

func (c *HistoryCommand) Name() string {
	return "history"
}

func (c *HistoryCommand) Description() string {
	return "Show recent craft attempts recorded by the service"
}

func (c *HistoryCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	limit := fs.Int("limit", history.DefaultRecentLimit, "entries to show")
	asJSON := fs.Bool("json", false, "print entries as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx := context.Background()
	pool, err := c.app.pool(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	entries, err := postgres.NewHistoryRepository(pool).Recent(ctx, history.ClampLimit(*limit))
	if err != nil {
		return err
	}

	if *asJSON {
		return writeJSON(os.Stdout, entries)
	}
	if len(entries) == 0 {
		PrintInfo("No craft history yet")
		return nil
	}
	for _, e := range entries {
		status := colorGreen + "ok  " + colorReset
		if !e.Success {
			status = colorRed + "fail" + colorReset
		}
		fmt.Printf("%s %s %-28s %v %s\n", e.CreatedAt.Format("2006-01-02 15:04:05"), status, e.Currency, e.Omens, e.Message)
	}
	return nil
}
