package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/osse101/PoE2Craft_Go/internal/domain"
)

const (
	colorGreen  = "\033[0;32m"
	colorRed    = "\033[0;31m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorReset  = "\033[0m"
)

// UI helpers

func PrintInfo(format string, a ...interface{}) {
	fmt.Printf(colorBlue+"ℹ "+format+colorReset+"\n", a...)
}

func PrintSuccess(format string, a ...interface{}) {
	fmt.Printf(colorGreen+"✓ "+format+colorReset+"\n", a...)
}

func PrintWarning(format string, a ...interface{}) {
	fmt.Printf(colorYellow+"⚠ "+format+colorReset+"\n", a...)
}

func PrintError(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, colorRed+"✗ "+format+colorReset+"\n", a...)
}

func PrintHeader(title string) {
	fmt.Printf("\n"+colorYellow+"=== %s ==="+colorReset+"\n", title)
}

// writeJSON prints v as indented JSON
func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// formatItem renders an item the way the game tooltip lists it
func formatItem(item *domain.Item) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s (%s, ilvl %d", item.Rarity, item.BaseName, item.Category, item.ItemLevel)
	if item.Quality > 0 {
		fmt.Fprintf(&b, ", quality %d%%", item.Quality)
	}
	b.WriteString(")\n")
	if item.Corrupted {
		b.WriteString("  Corrupted\n")
	}

	write := func(label string, mods []domain.ItemModifier) {
		for i := range mods {
			m := &mods[i]
			marks := ""
			if m.Fractured {
				marks += " [fractured]"
			}
			if m.DesecratedOnly {
				marks += " [desecrated]"
			}
			fmt.Fprintf(&b, "  %-8s %s (%s, T%d)%s\n", label, m.Text(), m.Name, m.Tier, marks)
		}
	}
	write("implicit", item.Implicits)
	write("prefix", item.Prefixes)
	write("suffix", item.Suffixes)
	return b.String()
}
