// Package crafting implements currency mechanics, the omen layer and the
// engine that applies them to items.
package crafting

import (
	"fmt"

	"github.com/osse101/PoE2Craft_Go/internal/domain"
	"github.com/osse101/PoE2Craft_Go/internal/exclusion"
	"github.com/osse101/PoE2Craft_Go/internal/modpool"
	"github.com/osse101/PoE2Craft_Go/internal/rng"
)

// Mechanic is one currency's behaviour.
// CanApply never fails with an error; a false result carries a player-facing reason.
// Apply works on a clone and never mutates item. It returns an error only when
// the catalog contradicts itself.
type Mechanic interface {
	Name() string
	CanApply(item *domain.Item) (bool, string)
	Apply(item *domain.Item, roll *Roll) (*domain.CraftResult, error)
}

// Roll is what a single application draws on
type Roll struct {
	Pool       *modpool.Pool
	Exclusions exclusion.Service
	Rand       rng.Source
}

// RollOptions are the overrides omens place on a mechanic. The zero value is
// the unmodified currency.
type RollOptions struct {
	ForceType  domain.ModType // restrict added modifiers to one affix type
	RemoveType domain.ModType // restrict removed modifiers to one affix type
	Homogenize bool           // added modifiers share a tag with the item
	Count      int            // rolls or removals; 0 means 1
	Whittle    bool           // remove per WhittlingTarget instead of at random
	BossTags   []string       // desecrated modifiers must carry one of these

	sources map[domain.OmenEffect]string // omen that set each effect, for messages
}

func (o *RollOptions) count() int {
	if o.Count <= 0 {
		return 1
	}
	return o.Count
}

// source names the omen that set effect, for failure messages
func (o *RollOptions) source(effect domain.OmenEffect) string {
	return o.sources[effect]
}

// forceEffect is the effect that set ForceType
func (o *RollOptions) forceEffect() domain.OmenEffect {
	if o.ForceType == domain.ModTypePrefix {
		return domain.EffectForcePrefix
	}
	return domain.EffectForceSuffix
}

// removeEffect is the effect that set RemoveType
func (o *RollOptions) removeEffect() domain.OmenEffect {
	if o.RemoveType == domain.ModTypePrefix {
		return domain.EffectRemovePrefix
	}
	return domain.EffectRemoveSuffix
}

// strategy is the per-mechanic implementation behind a Currency
type strategy interface {
	check(item *domain.Item, opts *RollOptions) (bool, string)
	apply(item *domain.Item, roll *Roll, opts *RollOptions) (*domain.CraftResult, error)
	supports(effect domain.OmenEffect) bool
}

// Currency is a registered currency bound to its mechanic
type Currency struct {
	def   domain.CurrencyDef
	strat strategy
}

// Name returns the currency name
func (c *Currency) Name() string { return c.def.Name }

// Def returns the currency definition
func (c *Currency) Def() domain.CurrencyDef { return c.def }

// CanApply checks the currency without omens
func (c *Currency) CanApply(item *domain.Item) (bool, string) {
	return c.canApplyWith(item, &RollOptions{})
}

// Apply applies the currency without omens
func (c *Currency) Apply(item *domain.Item, roll *Roll) (*domain.CraftResult, error) {
	return c.applyWith(item, roll, &RollOptions{})
}

func (c *Currency) canApplyWith(item *domain.Item, opts *RollOptions) (bool, string) {
	if item.Corrupted && c.def.Mechanic != domain.MechanicVaal {
		return false, fmt.Sprintf(MsgFmtCorrupted, c.def.Name)
	}
	if !c.def.AppliesTo(item.Category) {
		return false, fmt.Sprintf(MsgFmtWrongCategory, c.def.Name, item.Category)
	}
	return c.strat.check(item, opts)
}

func (c *Currency) applyWith(item *domain.Item, roll *Roll, opts *RollOptions) (*domain.CraftResult, error) {
	if ok, reason := c.canApplyWith(item, opts); !ok {
		return domain.Failure(reason), nil
	}
	return c.strat.apply(item, roll, opts)
}

// Supports reports whether the mechanic honours an omen effect
func (c *Currency) Supports(effect domain.OmenEffect) bool {
	return c.strat.supports(effect)
}

// effectSet is a fixed set of supported omen effects
type effectSet map[domain.OmenEffect]bool

func (s effectSet) supports(effect domain.OmenEffect) bool { return s[effect] }

func effects(list ...domain.OmenEffect) effectSet {
	s := make(effectSet, len(list))
	for _, e := range list {
		s[e] = true
	}
	return s
}
