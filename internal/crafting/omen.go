package crafting

import (
	"fmt"
	"strings"

	"github.com/osse101/PoE2Craft_Go/internal/domain"
)

// omenPrecedence is the fixed order omen effects are folded into RollOptions.
// Affix forcing resolves before homogenising, so when both restrict the same
// roll the forced type is kept and the tag restriction yields.
var omenPrecedence = []domain.OmenEffect{
	domain.EffectForcePrefix,
	domain.EffectForceSuffix,
	domain.EffectRemovePrefix,
	domain.EffectRemoveSuffix,
	domain.EffectHomogenize,
	domain.EffectDouble,
	domain.EffectWhittle,
	domain.EffectBossTags,
}

// ResolveOmens folds the omens' effects into RollOptions in omenPrecedence order.
// A non-empty message means the omens conflict with each other.
func ResolveOmens(omens []domain.OmenDef) (RollOptions, string) {
	byEffect := make(map[domain.OmenEffect][]*domain.OmenDef)
	for i := range omens {
		for _, eff := range omens[i].Effects {
			byEffect[eff] = append(byEffect[eff], &omens[i])
		}
	}

	opts := RollOptions{sources: make(map[domain.OmenEffect]string)}
	for _, eff := range omenPrecedence {
		set := byEffect[eff]
		if len(set) == 0 {
			continue
		}
		if len(set) > 1 {
			return RollOptions{}, fmt.Sprintf(MsgFmtConflictingOmens, set[0].Name, set[1].Name)
		}
		omen := set[0]

		switch eff {
		case domain.EffectForcePrefix, domain.EffectForceSuffix:
			if opts.ForceType != "" {
				return RollOptions{}, fmt.Sprintf(MsgFmtConflictingOmens, opts.sources[opts.forceEffect()], omen.Name)
			}
			opts.ForceType = forcedType(eff)
		case domain.EffectRemovePrefix, domain.EffectRemoveSuffix:
			if opts.RemoveType != "" {
				return RollOptions{}, fmt.Sprintf(MsgFmtConflictingOmens, opts.sources[opts.removeEffect()], omen.Name)
			}
			opts.RemoveType = forcedType(eff)
		case domain.EffectHomogenize:
			opts.Homogenize = true
		case domain.EffectDouble:
			opts.Count = DoubleRollCount
		case domain.EffectWhittle:
			opts.Whittle = true
		case domain.EffectBossTags:
			opts.BossTags = omen.Tags
		}
		opts.sources[eff] = omen.Name
	}
	return opts, ""
}

func forcedType(eff domain.OmenEffect) domain.ModType {
	switch eff {
	case domain.EffectForcePrefix, domain.EffectRemovePrefix:
		return domain.ModTypePrefix
	default:
		return domain.ModTypeSuffix
	}
}

// OmenCompatible reports whether the omen targets the currency or one of its variants
func OmenCompatible(omen *domain.OmenDef, currency string) bool {
	for _, base := range omen.Currencies {
		if domain.MatchesVariant(base, currency) {
			return true
		}
	}
	return false
}

// omenMechanic wraps a currency with active omens. It delegates everything to
// the base mechanic, passing the resolved options in place of the defaults.
type omenMechanic struct {
	base  *Currency
	omens []domain.OmenDef
	opts  RollOptions
}

// WithOmens wraps base with omens. It fails, with a player-facing message,
// when an omen targets another currency, repeats, or conflicts with another.
func WithOmens(base *Currency, omens []domain.OmenDef) (Mechanic, string) {
	if len(omens) == 0 {
		return base, ""
	}

	seen := make(map[string]bool, len(omens))
	for i := range omens {
		omen := &omens[i]
		if seen[omen.Name] {
			return nil, fmt.Sprintf(MsgFmtDuplicateOmen, omen.Name)
		}
		seen[omen.Name] = true

		if !OmenCompatible(omen, base.Name()) {
			return nil, fmt.Sprintf(MsgFmtIncompatibleOmen, omen.Name, base.Name())
		}
		for _, eff := range omen.Effects {
			if !base.Supports(eff) {
				return nil, fmt.Sprintf(MsgFmtIncompatibleOmen, omen.Name, base.Name())
			}
		}
	}

	opts, reason := ResolveOmens(omens)
	if reason != "" {
		return nil, reason
	}
	return &omenMechanic{base: base, omens: omens, opts: opts}, ""
}

func (o *omenMechanic) Name() string {
	names := make([]string, len(o.omens))
	for i := range o.omens {
		names[i] = o.omens[i].Name
	}
	return o.base.Name() + " with " + strings.Join(names, ", ")
}

func (o *omenMechanic) CanApply(item *domain.Item) (bool, string) {
	return o.base.canApplyWith(item, &o.opts)
}

func (o *omenMechanic) Apply(item *domain.Item, roll *Roll) (*domain.CraftResult, error) {
	return o.base.applyWith(item, roll, &o.opts)
}
