package modpool

import (
	"sort"

	"github.com/osse101/PoE2Craft_Go/internal/domain"
	"github.com/osse101/PoE2Craft_Go/internal/rng"
)

// Pick draws one candidate with probability weight(m) / sum(weights).
// Candidates with non-positive weight never win. Returns nil for an empty set.
func Pick(candidates []*domain.Modifier, src rng.Source) *domain.Modifier {
	cumul := make([]int, 0, len(candidates))
	entries := make([]*domain.Modifier, 0, len(candidates))
	total := 0
	for _, m := range candidates {
		if m.Weight <= 0 {
			continue
		}
		total += m.Weight
		cumul = append(cumul, total)
		entries = append(entries, m)
	}
	if total == 0 {
		return nil
	}

	roll := src.IntN(total)
	idx := sort.Search(len(cumul), func(i int) bool { return cumul[i] > roll })
	return entries[idx]
}

// Probabilities returns each candidate's selection probability under Pick
func Probabilities(candidates []*domain.Modifier) map[string]float64 {
	total := 0
	for _, m := range candidates {
		if m.Weight > 0 {
			total += m.Weight
		}
	}
	out := make(map[string]float64, len(candidates))
	if total == 0 {
		return out
	}
	for _, m := range candidates {
		if m.Weight > 0 {
			out[m.Name] = float64(m.Weight) / float64(total)
		}
	}
	return out
}
