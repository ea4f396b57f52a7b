package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/osse101/PoE2Craft_Go/internal/simulate"
)

type SimulateCommand struct {
	app *app
}

func (c *SimulateCommand) Name() string {
	return "simulate"
}

func (c *SimulateCommand) Description() string {
	return "Apply a currency to many copies of an item and summarise the outcomes"
}

func (c *SimulateCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	itemPath := fs.String("item", "", "item spec JSON file, - for stdin")
	currency := fs.String("currency", "", "currency name")
	trials := fs.Int("trials", 1000, "number of trials")
	top := fs.Int("top", 10, "modifiers to show, 0 for all")
	asJSON := fs.Bool("json", false, "print the summary as JSON")
	var omens multiFlag
	var seed seedFlag
	fs.Var(&omens, "omen", "omen name (repeatable)")
	fs.Var(&seed, "seed", "base seed; reuse the printed seed to replay a run")
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

	summary, err := eng.Simulator.Run(ctx, simulate.Request{
		Item:     item,
		Currency: *currency,
		Omens:    omens,
		Trials:   *trials,
		Seed:     seed.value,
	})
	if err != nil {
		return err
	}

	if *asJSON {
		return writeJSON(os.Stdout, summary)
	}
	printSummary(summary, *top)
	return nil
}

func printSummary(s *simulate.Summary, top int) {
	PrintHeader(fmt.Sprintf("%s x%d (seed %d)", s.Currency, s.Trials, s.Seed))
	fmt.Printf("  success rate       %.2f%% (%d/%d)\n", s.SuccessRate*100, s.Successes, s.Trials)
	fmt.Printf("  avg explicit mods  %.2f\n", s.AverageExplicitMods)

	fmt.Println("  rarity:")
	for _, name := range sortedKeys(s.RarityCounts) {
		fmt.Printf("    %-8s %d\n", name, s.RarityCounts[name])
	}

	mods := make([]string, 0, len(s.ModifierFrequency))
	for name := range s.ModifierFrequency {
		mods = append(mods, name)
	}
	sort.Slice(mods, func(i, j int) bool {
		fi, fj := s.ModifierFrequency[mods[i]], s.ModifierFrequency[mods[j]]
		if fi != fj {
			return fi > fj
		}
		return mods[i] < mods[j]
	})
	if top > 0 && len(mods) > top {
		mods = mods[:top]
	}
	if len(mods) > 0 {
		fmt.Println("  modifiers:")
	}
	for _, name := range mods {
		fmt.Printf("    %6.2f%%  %s\n", s.ModifierFrequency[name]*100, name)
	}

	if len(s.Failures) > 0 {
		fmt.Println("  failures:")
		for _, msg := range sortedKeys(s.Failures) {
			fmt.Printf("    %5d  %s\n", s.Failures[msg], msg)
		}
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
