package crafting

import (
	"fmt"

	"github.com/osse101/PoE2Craft_Go/internal/domain"
)

// transmutation upgrades a Normal item to Magic with one modifier
type transmutation struct {
	def *domain.CurrencyDef
	effectSet
}

func (m *transmutation) check(item *domain.Item, _ *RollOptions) (bool, string) {
	if item.Rarity != domain.RarityNormal {
		return false, fmt.Sprintf(MsgFmtNeedsNormal, m.def.Name)
	}
	return true, ""
}

func (m *transmutation) apply(item *domain.Item, roll *Roll, opts *RollOptions) (*domain.CraftResult, error) {
	out := item.Clone()
	out.Rarity = domain.RarityMagic
	added, reason := roll.addRandom(out, specFor(m.def, opts))
	if added == nil {
		return domain.Failure(reason), nil
	}
	return domain.Succeeded(fmt.Sprintf(MsgFmtTransmuted, added.Text()), out), nil
}

// augmentation adds a modifier to a Magic item with room
type augmentation struct {
	def *domain.CurrencyDef
	effectSet
}

func (m *augmentation) check(item *domain.Item, _ *RollOptions) (bool, string) {
	if item.Rarity != domain.RarityMagic || item.TotalOpenSlots() == 0 {
		return false, fmt.Sprintf(MsgFmtNeedsMagicOpenSlot, m.def.Name)
	}
	return true, ""
}

func (m *augmentation) apply(item *domain.Item, roll *Roll, opts *RollOptions) (*domain.CraftResult, error) {
	out := item.Clone()
	added, reason := roll.addRandom(out, specFor(m.def, opts))
	if added == nil {
		return domain.Failure(reason), nil
	}
	return domain.Succeeded(fmt.Sprintf(MsgFmtAugmented, added.Text()), out), nil
}

// alchemy upgrades a Normal item to Rare with AlchemyModCount modifiers
type alchemy struct {
	def *domain.CurrencyDef
	effectSet
}

func (m *alchemy) check(item *domain.Item, _ *RollOptions) (bool, string) {
	if item.Rarity != domain.RarityNormal {
		return false, fmt.Sprintf(MsgFmtNeedsNormal, m.def.Name)
	}
	return true, ""
}

// apply fills the forced affix type first when an omen asks for it. A roll
// that finds nothing for the forced type retries across every open type, so
// group and exclusion conflicts narrow the choice rather than fail the craft.
func (m *alchemy) apply(item *domain.Item, roll *Roll, opts *RollOptions) (*domain.CraftResult, error) {
	out := item.Clone()
	out.Rarity = domain.RarityRare

	var added []domain.ItemModifier
	for len(added) < AlchemyModCount {
		spec := specFor(m.def, &RollOptions{})
		var mod *domain.ItemModifier
		if opts.ForceType != "" && out.OpenSlots(opts.ForceType) > 0 {
			forced := specFor(m.def, opts)
			mod, _ = roll.addRandom(out, forced)
		}
		if mod == nil {
			var reason string
			mod, reason = roll.addRandom(out, spec)
			if mod == nil {
				if len(added) == 0 {
					return domain.Failure(reason), nil
				}
				return domain.Failure(fmt.Sprintf(MsgFmtAlchemyShort, m.def.Name, len(added), AlchemyModCount)), nil
			}
		}
		added = append(added, *mod)
	}
	return domain.Succeeded(fmt.Sprintf(MsgFmtAlchemised, describe(added...)), out), nil
}

// regal upgrades a Magic item to Rare and adds one modifier
type regal struct {
	def *domain.CurrencyDef
	effectSet
}

func (m *regal) check(item *domain.Item, _ *RollOptions) (bool, string) {
	if item.Rarity != domain.RarityMagic {
		return false, fmt.Sprintf(MsgFmtNeedsMagic, m.def.Name)
	}
	return true, ""
}

func (m *regal) apply(item *domain.Item, roll *Roll, opts *RollOptions) (*domain.CraftResult, error) {
	out := item.Clone()
	out.Rarity = domain.RarityRare
	added, reason := roll.addRandom(out, specFor(m.def, opts))
	if added == nil {
		return domain.Failure(reason), nil
	}
	return domain.Succeeded(fmt.Sprintf(MsgFmtRegal, added.Text()), out), nil
}

// exalted adds one modifier to a Rare item, or two under a doubling omen
type exalted struct {
	def *domain.CurrencyDef
	effectSet
}

// check requires room for every roll before anything is rolled: a doubling
// omen with one open slot fails outright instead of adding a single modifier
func (m *exalted) check(item *domain.Item, opts *RollOptions) (bool, string) {
	if item.Rarity != domain.RarityRare || item.TotalOpenSlots() == 0 {
		return false, fmt.Sprintf(MsgFmtNeedsRareOpenSlot, m.def.Name)
	}

	count := opts.count()
	open := item.TotalOpenSlots()
	if opts.ForceType != "" {
		open = item.OpenSlots(opts.ForceType)
	}
	if open >= count {
		return true, ""
	}
	if count > 1 {
		return false, fmt.Sprintf(MsgFmtNeedsOpenSlots, opts.source(domain.EffectDouble), count, typeLabel(opts.ForceType))
	}
	return false, fmt.Sprintf(MsgFmtNeedsOpenSlot, opts.source(opts.forceEffect()), typeLabel(opts.ForceType))
}

func (m *exalted) apply(item *domain.Item, roll *Roll, opts *RollOptions) (*domain.CraftResult, error) {
	out := item.Clone()
	spec := specFor(m.def, opts)

	added := make([]domain.ItemModifier, 0, opts.count())
	for i := 0; i < opts.count(); i++ {
		mod, reason := roll.addRandom(out, spec)
		if mod == nil {
			return domain.Failure(reason), nil
		}
		added = append(added, *mod)
	}
	return domain.Succeeded(fmt.Sprintf(MsgFmtExalted, describe(added...)), out), nil
}
