package crafting

import (
	"fmt"

	"github.com/osse101/PoE2Craft_Go/internal/domain"
	"github.com/osse101/PoE2Craft_Go/internal/modpool"
)

// desecration adds a modifier from the desecrated-only pool to a Rare item.
// A full item loses one random modifier first.
type desecration struct {
	def *domain.CurrencyDef
	effectSet
}

func (m *desecration) check(item *domain.Item, opts *RollOptions) (bool, string) {
	if item.Rarity != domain.RarityRare {
		return false, fmt.Sprintf(MsgFmtNeedsRare, m.def.Name)
	}
	if m.def.MaxItemLevel > 0 && item.ItemLevel > m.def.MaxItemLevel {
		return false, fmt.Sprintf(MsgFmtMaxItemLevel, m.def.Name, m.def.MaxItemLevel)
	}
	if item.HasDesecratedMod() {
		return false, fmt.Sprintf(MsgFmtAlreadyDesecrated, m.def.Name)
	}
	if needsRoom(item, opts.ForceType) && len(removableSlots(item, opts.ForceType)) == 0 {
		return false, fmt.Sprintf(MsgFmtNeedsRemovable, m.def.Name, typeLabel(opts.ForceType))
	}
	return true, ""
}

// needsRoom reports whether an addition of type t (any type when empty) has no slot
func needsRoom(item *domain.Item, t domain.ModType) bool {
	if t == "" {
		return item.TotalOpenSlots() == 0
	}
	return item.OpenSlots(t) == 0
}

func (m *desecration) apply(item *domain.Item, roll *Roll, opts *RollOptions) (*domain.CraftResult, error) {
	out := item.Clone()

	var removed *domain.ItemModifier
	if needsRoom(out, opts.ForceType) {
		mod, _ := roll.removeOne(out, opts.ForceType, false)
		removed = &mod
	}

	spec := specFor(m.def, opts)
	spec.source = modpool.SourceDesecrated
	spec.tags = opts.BossTags
	added, reason := roll.addRandom(out, spec)
	if added == nil {
		return domain.Failure(reason), nil
	}

	if removed != nil {
		return domain.Succeeded(fmt.Sprintf(MsgFmtDesecratedSwap, removed.Text(), added.Text()), out), nil
	}
	return domain.Succeeded(fmt.Sprintf(MsgFmtDesecrated, added.Text()), out), nil
}
