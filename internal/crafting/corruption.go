package crafting

import (
	"fmt"

	"github.com/osse101/PoE2Craft_Go/internal/domain"
	"github.com/osse101/PoE2Craft_Go/internal/modpool"
	"github.com/osse101/PoE2Craft_Go/internal/rng"
)

// vaal corrupts an item. One outcome is drawn uniformly from those that can
// apply to the item, then the item is marked corrupted whichever fired.
type vaal struct {
	def *domain.CurrencyDef
	effectSet
}

func (m *vaal) check(item *domain.Item, _ *RollOptions) (bool, string) {
	if item.Corrupted {
		return false, fmt.Sprintf(MsgFmtAlreadyCorrupted, m.def.Name)
	}
	if item.Rarity == domain.RarityUnique {
		return false, fmt.Sprintf(MsgFmtVaalUnique, m.def.Name)
	}
	return true, ""
}

func (m *vaal) apply(item *domain.Item, roll *Roll, _ *RollOptions) (*domain.CraftResult, error) {
	out := item.Clone()
	implicits := corruptionImplicits(roll.Pool, out)
	outcomes := activeVaalOutcomes(out, len(implicits) > 0)

	var detail string
	switch outcomes[roll.Rand.IntN(len(outcomes))] {
	case VaalImplicit:
		mod := modpool.Pick(implicits, roll.Rand)
		im := domain.NewItemModifier(mod, rng.IntBetween(roll.Rand, mod.Min, mod.Max))
		out.Implicits = append(out.Implicits, im)
		detail = fmt.Sprintf(MsgFmtVaalImplicit, im.Text())
	case VaalQuality:
		out.Quality = shiftQuality(out.Quality, roll.Rand)
		detail = fmt.Sprintf(MsgFmtVaalQuality, out.Quality)
	case VaalRerollValues:
		rerollValues(out, roll.Rand, true)
		detail = MsgVaalReroll
	default:
		detail = MsgVaalNoChange
	}

	out.Corrupted = true
	return domain.Succeeded(fmt.Sprintf(MsgFmtVaal, detail), out), nil
}

// activeVaalOutcomes lists the outcomes that would change something, plus no_change
func activeVaalOutcomes(item *domain.Item, implicitAvailable bool) []VaalOutcome {
	outcomes := []VaalOutcome{VaalNoChange}
	if implicitAvailable {
		outcomes = append(outcomes, VaalImplicit)
	}
	outcomes = append(outcomes, VaalQuality)
	if rerollable(item, true) > 0 {
		outcomes = append(outcomes, VaalRerollValues)
	}
	return outcomes
}

// corruptionImplicits returns corruption implicits the item can still gain
func corruptionImplicits(pool *modpool.Pool, item *domain.Item) []*domain.Modifier {
	present := make(map[string]bool, len(item.Implicits))
	for _, m := range item.Implicits {
		present[m.Group] = true
	}
	return pool.Eligible(modpool.Filter{
		Type:           domain.ModTypeImplicit,
		Category:       item.Category,
		ItemLevel:      item.ItemLevel,
		ExcludedGroups: present,
		RequiredTags:   []string{CorruptionImplicitTag},
	})
}

// shiftQuality moves quality by a non-zero amount up to VaalQualityChange
// either way. Corrupted items may exceed the normal cap but never go negative.
func shiftQuality(quality int, src rng.Source) int {
	delta := rng.IntBetween(src, -VaalQualityChange, VaalQualityChange-1)
	if delta >= 0 {
		delta++
	}
	if quality+delta < 0 {
		return 0
	}
	return quality + delta
}
