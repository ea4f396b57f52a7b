package crafting

import (
	"fmt"
	"strings"

	"github.com/osse101/PoE2Craft_Go/internal/domain"
	"github.com/osse101/PoE2Craft_Go/internal/modpool"
	"github.com/osse101/PoE2Craft_Go/internal/rng"
)

// addSpec describes one random modifier addition
type addSpec struct {
	currency    string
	types       []domain.ModType // candidate affix types; empty means every open type
	forced      bool             // types came from an affix-forcing omen
	minModLevel int
	homogenize  bool
	tags        []string // any-of restriction, used by boss omens
	source      modpool.Source
}

func specFor(def *domain.CurrencyDef, opts *RollOptions) addSpec {
	spec := addSpec{
		currency:    def.Name,
		minModLevel: def.MinModLevel,
		homogenize:  opts.Homogenize,
	}
	if opts.ForceType != "" {
		spec.types = []domain.ModType{opts.ForceType}
		spec.forced = true
	}
	return spec
}

// candidates returns the legal modifiers of type t for item
func (r *Roll) candidates(item *domain.Item, t domain.ModType, spec *addSpec, tags []string) []*domain.Modifier {
	if item.OpenSlots(t) == 0 {
		return nil
	}
	eligible := r.Pool.Eligible(modpool.Filter{
		Type:           t,
		Category:       item.Category,
		ItemLevel:      item.ItemLevel,
		MinModLevel:    spec.minModLevel,
		ExcludedGroups: item.Groups(),
		RequiredTags:   tags,
		Source:         spec.source,
	})
	if len(eligible) == 0 {
		return nil
	}
	return r.Exclusions.FilterAvailableMods(eligible, item.Explicits(), item.Category)
}

func (r *Roll) candidatesAcross(item *domain.Item, spec *addSpec, tags []string) []*domain.Modifier {
	types := spec.types
	if len(types) == 0 {
		types = item.OpenTypes()
	}
	var out []*domain.Modifier
	for _, t := range types {
		out = append(out, r.candidates(item, t, spec, tags)...)
	}
	return out
}

// addRandom rolls one modifier onto item, which must already be a clone.
// Affix type is pool-driven: candidates of every allowed type compete on weight.
// On failure it returns a player-facing reason and leaves item untouched.
func (r *Roll) addRandom(item *domain.Item, spec addSpec) (*domain.ItemModifier, string) {
	var pool []*domain.Modifier
	if spec.homogenize {
		if tags := item.ExplicitTags(); len(tags) > 0 {
			pool = r.candidatesAcross(item, &spec, tags)
		}
		if len(pool) == 0 {
			if !spec.forced {
				return nil, MsgFmtNoSharedTags
			}
			// affix forcing outranks homogenising: keep the type, drop the tags
			pool = r.candidatesAcross(item, &spec, spec.tags)
		}
	} else {
		pool = r.candidatesAcross(item, &spec, spec.tags)
	}

	if len(pool) == 0 {
		return nil, noEligibleMessage(spec.currency, spec.minModLevel, item.ItemLevel)
	}

	mod := modpool.Pick(pool, r.Rand)
	im := domain.NewItemModifier(mod, rng.IntBetween(r.Rand, mod.Min, mod.Max))
	item.AddMod(im)
	return &im, ""
}

func noEligibleMessage(currency string, minModLevel, itemLevel int) string {
	if minModLevel > itemLevel {
		return fmt.Sprintf(MsgFmtNoEligibleLevel, currency, minModLevel, itemLevel)
	}
	return fmt.Sprintf(MsgFmtNoEligible, currency)
}

// slot addresses one explicit modifier on an item
type slot struct {
	t   domain.ModType
	idx int
}

func (s slot) mod(item *domain.Item) *domain.ItemModifier {
	return &item.Affixes(s.t)[s.idx]
}

// removableSlots lists non-fractured explicit modifiers, restricted to t when set
func removableSlots(item *domain.Item, t domain.ModType) []slot {
	var out []slot
	for _, mt := range []domain.ModType{domain.ModTypePrefix, domain.ModTypeSuffix} {
		if t != "" && t != mt {
			continue
		}
		for i, m := range item.Affixes(mt) {
			if !m.Fractured {
				out = append(out, slot{t: mt, idx: i})
			}
		}
	}
	return out
}

// removeOne takes one removable modifier off item: uniformly at random, or by
// WhittlingTarget when whittle is set
func (r *Roll) removeOne(item *domain.Item, t domain.ModType, whittle bool) (domain.ItemModifier, bool) {
	slots := removableSlots(item, t)
	if len(slots) == 0 {
		return domain.ItemModifier{}, false
	}
	var chosen slot
	if whittle {
		chosen = whittleSlot(item, slots, WhittlingTarget)
	} else {
		chosen = slots[r.Rand.IntN(len(slots))]
	}
	return item.RemoveMod(chosen.t, chosen.idx), true
}

// whittleSlot picks the slot the whittling strategy targets.
// Remaining ties go to the earliest slot.
func whittleSlot(item *domain.Item, slots []slot, strategy WhittleStrategy) slot {
	best := slots[0]
	for _, s := range slots[1:] {
		if whittleBefore(s.mod(item), best.mod(item), strategy) {
			best = s
		}
	}
	return best
}

func whittleBefore(a, b *domain.ItemModifier, strategy WhittleStrategy) bool {
	switch strategy {
	case WhittleBestTier:
		if a.Tier != b.Tier {
			return a.Tier < b.Tier
		}
		return a.RequiredILvl > b.RequiredILvl
	default:
		if a.RequiredILvl != b.RequiredILvl {
			return a.RequiredILvl < b.RequiredILvl
		}
		return a.Tier > b.Tier
	}
}

// rerollValues rolls every non-fractured modifier again within its range and
// returns how many were rerolled
func rerollValues(item *domain.Item, src rng.Source, includeImplicits bool) int {
	n := 0
	lists := [][]domain.ItemModifier{item.Prefixes, item.Suffixes}
	if includeImplicits {
		lists = append(lists, item.Implicits)
	}
	for _, list := range lists {
		for i := range list {
			if list[i].Fractured {
				continue
			}
			list[i].Value = rng.IntBetween(src, list[i].Min, list[i].Max)
			n++
		}
	}
	return n
}

// rerollable counts modifiers a value reroll would touch
func rerollable(item *domain.Item, includeImplicits bool) int {
	n := 0
	mods := item.Explicits()
	if includeImplicits {
		mods = item.AllMods()
	}
	for _, m := range mods {
		if !m.Fractured {
			n++
		}
	}
	return n
}

func describe(mods ...domain.ItemModifier) string {
	parts := make([]string, len(mods))
	for i := range mods {
		parts[i] = mods[i].Text()
	}
	return strings.Join(parts, ", ")
}

func typeLabel(t domain.ModType) string {
	if t == "" {
		return "affix"
	}
	return string(t)
}
