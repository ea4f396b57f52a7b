// Package modpool holds the read-only modifier catalog and its weighted sampling.
package modpool

import (
	"fmt"
	"strings"

	"github.com/osse101/PoE2Craft_Go/internal/domain"
	"github.com/osse101/PoE2Craft_Go/internal/rng"
)

// Source selects which provenance sub-pool a query draws from
type Source int

const (
	// SourceRegular excludes essence-only and desecrated-only modifiers
	SourceRegular Source = iota
	// SourceDesecrated draws only from desecrated-only modifiers
	SourceDesecrated
	// SourceEssence draws only from essence-only modifiers
	SourceEssence
)

// Filter narrows the catalog for a roll
type Filter struct {
	Type           domain.ModType
	Category       string
	ItemLevel      int
	MinModLevel    int             // 0 disables the floor
	ExcludedGroups map[string]bool // groups already on the item
	RequiredTags   []string        // at least one must match; empty disables
	Source         Source
}

// Pool is the in-memory modifier catalog. It is built once and never mutated,
// so concurrent reads need no locking.
type Pool struct {
	mods       []*domain.Modifier
	byName     map[string]*domain.Modifier
	byGroup    map[string][]*domain.Modifier
	byType     map[domain.ModType][]*domain.Modifier
	categories Categories
}

// New validates the definitions, expands their categories and indexes them
func New(defs []domain.Modifier, categories Categories) (*Pool, error) {
	for group, members := range categories {
		for _, m := range members {
			if _, nested := categories[m]; nested {
				return nil, fmt.Errorf(ErrFmtCategoryGroupCycle, domain.ErrInvalidConfig, group)
			}
		}
	}

	p := &Pool{
		mods:       make([]*domain.Modifier, 0, len(defs)),
		byName:     make(map[string]*domain.Modifier, len(defs)),
		byGroup:    make(map[string][]*domain.Modifier),
		byType:     make(map[domain.ModType][]*domain.Modifier),
		categories: categories,
	}

	for i := range defs {
		mod := defs[i]
		if err := validateModifier(i, &mod); err != nil {
			return nil, err
		}
		if _, dup := p.byName[mod.Name]; dup {
			return nil, fmt.Errorf(ErrFmtDuplicateModifier, domain.ErrDuplicateName, mod.Name)
		}

		mod.Categories = categories.Expand(mod.Categories)
		if len(mod.Categories) == 0 {
			return nil, fmt.Errorf(ErrFmtNoCategories, domain.ErrInvalidConfig, mod.Name)
		}

		ptr := &mod
		p.mods = append(p.mods, ptr)
		p.byName[mod.Name] = ptr
		if mod.Group != "" {
			p.byGroup[mod.Group] = append(p.byGroup[mod.Group], ptr)
		}
		p.byType[mod.Type] = append(p.byType[mod.Type], ptr)
	}

	return p, nil
}

func validateModifier(index int, mod *domain.Modifier) error {
	switch {
	case mod.Name == "":
		return fmt.Errorf(ErrFmtEmptyModifierName, domain.ErrInvalidConfig, index)
	case !mod.Type.Valid():
		return fmt.Errorf(ErrFmtInvalidModType, domain.ErrInvalidConfig, mod.Name, mod.Type)
	case mod.Min > mod.Max:
		return fmt.Errorf(ErrFmtInvalidRange, domain.ErrInvalidConfig, mod.Name, mod.Min, mod.Max)
	case mod.Weight < 0:
		return fmt.Errorf(ErrFmtNegativeWeight, domain.ErrInvalidConfig, mod.Name, mod.Weight)
	case !strings.Contains(mod.StatText, domain.StatPlaceholder):
		return fmt.Errorf(ErrFmtMissingPlaceholder, domain.ErrInvalidConfig, mod.Name, mod.StatText)
	case mod.EssenceOnly && mod.DesecratedOnly:
		return fmt.Errorf(ErrFmtConflictingSources, domain.ErrInvalidConfig, mod.Name)
	case mod.RequiredILvl < domain.MinItemLevel || mod.RequiredILvl > domain.MaxItemLevel:
		return fmt.Errorf(ErrFmtInvalidRequiredILvl, domain.ErrInvalidConfig, mod.Name, mod.RequiredILvl)
	}
	return nil
}

// Len returns the number of catalog entries
func (p *Pool) Len() int {
	return len(p.mods)
}

// Categories returns the category grouping the pool was built with
func (p *Pool) Categories() Categories {
	return p.categories
}

// KnownCategory reports whether any modifier can spawn on category
func (p *Pool) KnownCategory(category string) bool {
	for _, m := range p.mods {
		if m.AppliesTo(category) {
			return true
		}
	}
	return false
}

// FindModByName returns the catalog entry with the exact name, or nil
func (p *Pool) FindModByName(name string) *domain.Modifier {
	return p.byName[name]
}

// ModsByGroup returns every tier of the mod group, in catalog order
func (p *Pool) ModsByGroup(group string) []*domain.Modifier {
	return append([]*domain.Modifier(nil), p.byGroup[group]...)
}

// Eligible returns every modifier passing the filter, in catalog order
func (p *Pool) Eligible(f Filter) []*domain.Modifier {
	var out []*domain.Modifier
	for _, m := range p.byType[f.Type] {
		if p.matches(m, f) {
			out = append(out, m)
		}
	}
	return out
}

func (p *Pool) matches(m *domain.Modifier, f Filter) bool {
	if m.Weight <= 0 {
		return false
	}
	if !sourceAllows(f.Source, m) {
		return false
	}
	if m.RequiredILvl > f.ItemLevel {
		return false
	}
	if f.MinModLevel > 0 && m.RequiredILvl < f.MinModLevel {
		return false
	}
	if m.Group != "" && f.ExcludedGroups[m.Group] {
		return false
	}
	if len(f.RequiredTags) > 0 && !m.HasAnyTag(f.RequiredTags) {
		return false
	}
	return m.AppliesTo(f.Category)
}

func sourceAllows(s Source, m *domain.Modifier) bool {
	switch s {
	case SourceDesecrated:
		return m.DesecratedOnly
	case SourceEssence:
		return m.EssenceOnly
	default:
		return !m.EssenceOnly && !m.DesecratedOnly
	}
}

// RollRandomModifier draws one modifier passing the filter, weighted by spawn weight.
// It returns nil when nothing is eligible; callers report that as a failed roll.
func (p *Pool) RollRandomModifier(f Filter, src rng.Source) *domain.Modifier {
	return Pick(p.Eligible(f), src)
}

// AllModsForCategory lists the modifiers of one type and provenance that could
// appear on an item of the category, for previews. It filters exactly as
// RollRandomModifier does for the same arguments.
func (p *Pool) AllModsForCategory(category string, itemLevel int, t domain.ModType, source Source, excludedGroups map[string]bool) []*domain.Modifier {
	return p.Eligible(Filter{
		Type:           t,
		Category:       category,
		ItemLevel:      itemLevel,
		ExcludedGroups: excludedGroups,
		Source:         source,
	})
}
