package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/osse101/PoE2Craft_Go/internal/crafting"
)

type ModsCommand struct {
	app *app
}

func (c *ModsCommand) Name() string {
	return "mods"
}

func (c *ModsCommand) Description() string {
	return "Show the modifiers and currencies available for an item file"
}

func (c *ModsCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	itemPath := fs.String("item", "", "item spec JSON file, - for stdin")
	asJSON := fs.Bool("json", false, "print the breakdown as JSON")
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

	breakdown, err := eng.Crafting.AvailableMods(ctx, item)
	if err != nil {
		return err
	}
	applicable, err := eng.Crafting.ApplicableCurrencies(ctx, item)
	if err != nil {
		return err
	}

	if *asJSON {
		return writeJSON(os.Stdout, struct {
			Mods       *crafting.ModBreakdown `json:"mods"`
			Currencies []string               `json:"currencies"`
		}{breakdown, applicable})
	}

	os.Stdout.WriteString(formatItem(item))
	printSplit("Prefixes", breakdown.Prefixes)
	printSplit("Suffixes", breakdown.Suffixes)
	printSplit("Essence prefixes", breakdown.Essence.Prefixes)
	printSplit("Essence suffixes", breakdown.Essence.Suffixes)
	printSplit("Desecrated prefixes", breakdown.Desecrated.Prefixes)
	printSplit("Desecrated suffixes", breakdown.Desecrated.Suffixes)

	PrintHeader("Applicable currencies")
	for _, name := range applicable {
		fmt.Println("  " + name)
	}
	return nil
}

func printSplit(title string, mods []crafting.AvailableMod) {
	if len(mods) == 0 {
		return
	}
	PrintHeader(title)
	for _, m := range mods {
		fmt.Printf("  %6.2f%%  T%d %-24s %s\n", m.Probability*100, m.Tier, m.Name, m.Text)
	}
}
