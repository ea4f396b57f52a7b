package main

import (
	"context"
	"flag"
	"os"

	"github.com/osse101/PoE2Craft_Go/internal/catalog"
	"github.com/osse101/PoE2Craft_Go/internal/crafting"
)

type ApplyCommand struct {
	app *app
}

func (c *ApplyCommand) Name() string {
	return "apply"
}

func (c *ApplyCommand) Description() string {
	return "Apply one currency (and omens) to an item file"
}

func (c *ApplyCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	itemPath := fs.String("item", "", "item spec JSON file, - for stdin")
	currency := fs.String("currency", "", "currency name")
	asJSON := fs.Bool("json", false, "print the resulting item spec as JSON, suitable for the next -item")
	var omens multiFlag
	var seed seedFlag
	fs.Var(&omens, "omen", "omen name (repeatable)")
	fs.Var(&seed, "seed", "seed for a reproducible result")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx := context.Background()
	eng, err := c.app.engine(ctx)
	if err != nil {
		return err
	}
	spec, err := readItemSpec(*itemPath)
	if err != nil {
		return err
	}
	item, err := eng.Catalog.BuildItem(spec)
	if err != nil {
		return err
	}

	result, err := eng.Crafting.Apply(ctx, crafting.ApplyRequest{
		Item:     item,
		Currency: *currency,
		Omens:    omens,
		Seed:     seed.value,
	})
	if err != nil {
		return err
	}

	if *asJSON {
		return writeJSON(os.Stdout, struct {
			Success bool              `json:"success"`
			Message string            `json:"message"`
			Item    *catalog.ItemSpec `json:"item,omitempty"`
		}{result.Success, result.Message, catalog.SpecFromItem(result.ResultItem)})
	}

	if !result.Success {
		PrintWarning("%s", result.Message)
		return nil
	}
	PrintSuccess("%s", result.Message)
	os.Stdout.WriteString(formatItem(result.ResultItem))
	return nil
}
