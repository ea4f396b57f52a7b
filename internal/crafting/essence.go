package crafting

import (
	"fmt"

	"github.com/osse101/PoE2Craft_Go/internal/domain"
	"github.com/osse101/PoE2Craft_Go/internal/exclusion"
	"github.com/osse101/PoE2Craft_Go/internal/modpool"
	"github.com/osse101/PoE2Craft_Go/internal/rng"
)

// essence guarantees a fixed modifier instead of rolling one.
// Lesser, normal and greater essences upgrade a Magic item to Rare.
// Perfect and corrupted essences remove a modifier from a Rare item first.
type essence struct {
	def        *domain.CurrencyDef
	essence    *domain.EssenceDef
	pool       *modpool.Pool
	exclusions exclusion.Service
	effectSet
}

// guaranteed looks up the essence modifier for the item category.
// ok is false when the essence does nothing for the category.
func (m *essence) guaranteed(category string) (mod *domain.Modifier, name string, ok bool) {
	name, ok = m.essence.ModNameFor(category)
	if !ok {
		return nil, "", false
	}
	return m.pool.FindModByName(name), name, true
}

func (m *essence) check(item *domain.Item, opts *RollOptions) (bool, string) {
	mod, _, ok := m.guaranteed(item.Category)
	if !ok {
		return false, fmt.Sprintf(MsgFmtEssenceCategory, m.def.Name, item.Category)
	}

	if m.essence.RemovesBeforeAdding() {
		return m.checkReplace(item, mod, opts)
	}

	if item.Rarity != domain.RarityMagic {
		return false, fmt.Sprintf(MsgFmtNeedsMagic, m.def.Name)
	}
	if mod == nil {
		// reported as an integrity error by apply
		return true, ""
	}
	if item.Groups()[mod.Group] {
		return false, fmt.Sprintf(MsgFmtEssenceGroupTaken, m.def.Name, mod.Name)
	}
	if ok, reason := m.exclusions.CanAddMod(mod, item.Explicits(), item.Category); !ok {
		return false, fmt.Sprintf(MsgFmtEssenceBlocked, m.def.Name, mod.Name, reason)
	}
	return true, ""
}

func (m *essence) checkReplace(item *domain.Item, mod *domain.Modifier, opts *RollOptions) (bool, string) {
	if item.Rarity != domain.RarityRare {
		return false, fmt.Sprintf(MsgFmtNeedsRare, m.def.Name)
	}
	if len(removableSlots(item, opts.RemoveType)) == 0 {
		if opts.RemoveType != "" {
			return false, fmt.Sprintf(MsgFmtNeedsRemovable, opts.source(opts.removeEffect()), opts.RemoveType)
		}
		return false, fmt.Sprintf(MsgFmtNeedsRareWithMod, m.def.Name)
	}
	if mod == nil {
		return true, ""
	}
	if _, err := m.removalSlot(item, mod, opts); err != "" {
		return false, err
	}
	return true, ""
}

// removalSlot lists the modifiers that may make way for the essence modifier.
// A modifier sharing the essence group must go. Otherwise the omen-forced type,
// then the essence type when it is full. A non-empty reason means no legal
// slot exists.
func (m *essence) removalSlot(item *domain.Item, mod *domain.Modifier, opts *RollOptions) ([]slot, string) {
	for _, t := range []domain.ModType{domain.ModTypePrefix, domain.ModTypeSuffix} {
		for i, existing := range item.Affixes(t) {
			if existing.Group != mod.Group {
				continue
			}
			if existing.Fractured {
				return nil, fmt.Sprintf(MsgFmtEssenceFractured, m.def.Name, existing.Name)
			}
			if opts.RemoveType != "" && opts.RemoveType != t {
				return nil, fmt.Sprintf(MsgFmtEssenceNoRoom, m.def.Name, mod.Name)
			}
			return []slot{{t: t, idx: i}}, ""
		}
	}

	removeFrom := opts.RemoveType
	if removeFrom == "" && item.OpenSlots(mod.Type) == 0 {
		removeFrom = mod.Type
	}
	if removeFrom != mod.Type && item.OpenSlots(mod.Type) == 0 {
		return nil, fmt.Sprintf(MsgFmtEssenceNoRoom, m.def.Name, mod.Name)
	}
	slots := removableSlots(item, removeFrom)
	if len(slots) == 0 {
		return nil, fmt.Sprintf(MsgFmtEssenceNoRoom, m.def.Name, mod.Name)
	}
	return slots, ""
}

func (m *essence) apply(item *domain.Item, roll *Roll, opts *RollOptions) (*domain.CraftResult, error) {
	mod, name, _ := m.guaranteed(item.Category)
	if mod == nil {
		return nil, fmt.Errorf(ErrFmtEssenceModMissing, domain.ErrCatalogIntegrity, m.essence.Name, name)
	}

	out := item.Clone()
	if !m.essence.RemovesBeforeAdding() {
		out.Rarity = domain.RarityRare
		im := domain.NewItemModifier(mod, rng.IntBetween(roll.Rand, mod.Min, mod.Max))
		out.AddMod(im)
		return domain.Succeeded(fmt.Sprintf(MsgFmtEssenceUpgrade, im.Text()), out), nil
	}

	slots, reason := m.removalSlot(out, mod, opts)
	if reason != "" {
		return domain.Failure(reason), nil
	}
	chosen := slots[roll.Rand.IntN(len(slots))]
	removed := out.RemoveMod(chosen.t, chosen.idx)

	if ok, why := m.exclusions.CanAddMod(mod, out.Explicits(), out.Category); !ok {
		return domain.Failure(fmt.Sprintf(MsgFmtEssenceBlocked, m.def.Name, mod.Name, why)), nil
	}
	im := domain.NewItemModifier(mod, rng.IntBetween(roll.Rand, mod.Min, mod.Max))
	out.AddMod(im)
	return domain.Succeeded(fmt.Sprintf(MsgFmtEssenceReplace, removed.Text(), im.Text()), out), nil
}
