package main

import (
	"context"
	"flag"
	"fmt"
)

type ListCommand struct {
	app *app
}

func (c *ListCommand) Name() string {
	return "list"
}

func (c *ListCommand) Description() string {
	return "List currencies, or the omens compatible with -currency"
}

func (c *ListCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	currency := fs.String("currency", "", "list omens compatible with this currency")
	if err := fs.Parse(args); err != nil {
		return err
	}

	eng, err := c.app.engine(context.Background())
	if err != nil {
		return err
	}

	if *currency == "" {
		PrintHeader(fmt.Sprintf("Currencies (catalog %s)", eng.Crafting.CatalogVersion()))
		for _, name := range eng.Crafting.ListCurrencies() {
			fmt.Println("  " + name)
		}
		return nil
	}

	omens, err := eng.Crafting.CompatibleOmens(*currency)
	if err != nil {
		return err
	}
	PrintHeader("Omens for " + *currency)
	if len(omens) == 0 {
		PrintInfo("No omen modifies %s", *currency)
	}
	for _, name := range omens {
		fmt.Println("  " + name)
	}
	return nil
}
