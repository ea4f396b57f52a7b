package crafting

import (
	"fmt"

	"github.com/osse101/PoE2Craft_Go/internal/domain"
)

// chaos removes one modifier from a Rare item and then adds one.
// The two steps draw independently and the removed group is free again
// before the addition.
type chaos struct {
	def *domain.CurrencyDef
	effectSet
}

func (m *chaos) check(item *domain.Item, opts *RollOptions) (bool, string) {
	if item.Rarity != domain.RarityRare || len(removableSlots(item, "")) == 0 {
		return false, fmt.Sprintf(MsgFmtNeedsRareWithMod, m.def.Name)
	}
	if opts.RemoveType != "" && len(removableSlots(item, opts.RemoveType)) == 0 {
		return false, fmt.Sprintf(MsgFmtNeedsRemovable, opts.source(opts.removeEffect()), opts.RemoveType)
	}
	return true, ""
}

func (m *chaos) apply(item *domain.Item, roll *Roll, opts *RollOptions) (*domain.CraftResult, error) {
	out := item.Clone()
	removed, _ := roll.removeOne(out, opts.RemoveType, opts.Whittle)

	added, reason := roll.addRandom(out, specFor(m.def, &RollOptions{}))
	if added == nil {
		return domain.Failure(reason), nil
	}
	return domain.Succeeded(fmt.Sprintf(MsgFmtChaos, removed.Text(), added.Text()), out), nil
}

// divine rerolls the values of every modifier without changing which are present
type divine struct {
	def *domain.CurrencyDef
	effectSet
}

func (m *divine) check(item *domain.Item, _ *RollOptions) (bool, string) {
	if item.Rarity == domain.RarityNormal || rerollable(item, true) == 0 {
		return false, fmt.Sprintf(MsgFmtNeedsRerollable, m.def.Name)
	}
	return true, ""
}

func (m *divine) apply(item *domain.Item, roll *Roll, _ *RollOptions) (*domain.CraftResult, error) {
	out := item.Clone()
	rerollValues(out, roll.Rand, true)
	return domain.Succeeded(MsgDivine, out), nil
}

// annulment removes one modifier, or two under a doubling omen
type annulment struct {
	def *domain.CurrencyDef
	effectSet
}

func (m *annulment) check(item *domain.Item, opts *RollOptions) (bool, string) {
	if (item.Rarity != domain.RarityMagic && item.Rarity != domain.RarityRare) || len(removableSlots(item, "")) == 0 {
		return false, fmt.Sprintf(MsgFmtNeedsModToRemove, m.def.Name)
	}
	available := len(removableSlots(item, opts.RemoveType))
	if opts.RemoveType != "" && available == 0 {
		return false, fmt.Sprintf(MsgFmtNeedsRemovable, opts.source(opts.removeEffect()), opts.RemoveType)
	}
	if count := opts.count(); available < count {
		return false, fmt.Sprintf(MsgFmtNeedsRemovableN, opts.source(domain.EffectDouble), count)
	}
	return true, ""
}

func (m *annulment) apply(item *domain.Item, roll *Roll, opts *RollOptions) (*domain.CraftResult, error) {
	out := item.Clone()
	removed := make([]domain.ItemModifier, 0, opts.count())
	for i := 0; i < opts.count(); i++ {
		mod, ok := roll.removeOne(out, opts.RemoveType, false)
		if !ok {
			break
		}
		removed = append(removed, mod)
	}
	return domain.Succeeded(fmt.Sprintf(MsgFmtAnnulled, describe(removed...)), out), nil
}
