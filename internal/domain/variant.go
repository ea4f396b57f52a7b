package domain

import (
	"strings"

	"golang.org/x/text/cases"
)

// FoldName normalises a currency or omen name for comparison.
// A Caser is stateful, so each call builds its own.
func FoldName(name string) string {
	return strings.Join(strings.Fields(cases.Fold().String(name)), " ")
}

// MatchesVariant reports whether currency is base or one of its variants.
// "Exalted Orb" matches "Greater Exalted Orb" and "Perfect Exalted Orb" but
// "Orb" alone does not match "Orbit Stone": the base must appear as whole words.
func MatchesVariant(base, currency string) bool {
	b, c := FoldName(base), FoldName(currency)
	if b == "" {
		return false
	}
	if b == c {
		return true
	}
	padded := " " + c + " "
	return strings.Contains(padded, " "+b+" ")
}
