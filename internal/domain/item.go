package domain

import (
	"fmt"
)

// Item is the state of a craftable item. Mechanics never mutate an Item in place;
// they work on a Clone and return it.
type Item struct {
	BaseName  string         `json:"base_name" validate:"required,max=100"`
	Category  string         `json:"category" validate:"required,max=50"`
	Rarity    Rarity         `json:"rarity"`
	ItemLevel int            `json:"item_level" validate:"min=1,max=100"`
	Quality   int            `json:"quality" validate:"min=0,max=100"`
	Corrupted bool           `json:"corrupted"`
	Prefixes  []ItemModifier `json:"prefixes"`
	Suffixes  []ItemModifier `json:"suffixes"`
	Implicits []ItemModifier `json:"implicits"`
}

// Clone returns a deep copy of the item's mutable state.
// Tag and category slices inside modifiers are catalog-owned and shared.
func (i *Item) Clone() *Item {
	out := *i
	out.Prefixes = append([]ItemModifier(nil), i.Prefixes...)
	out.Suffixes = append([]ItemModifier(nil), i.Suffixes...)
	out.Implicits = append([]ItemModifier(nil), i.Implicits...)
	return &out
}

// ExplicitCount returns the number of prefixes plus suffixes
func (i *Item) ExplicitCount() int {
	return len(i.Prefixes) + len(i.Suffixes)
}

// Explicits returns prefixes followed by suffixes
func (i *Item) Explicits() []ItemModifier {
	out := make([]ItemModifier, 0, i.ExplicitCount())
	out = append(out, i.Prefixes...)
	out = append(out, i.Suffixes...)
	return out
}

// AllMods returns implicits followed by explicits
func (i *Item) AllMods() []ItemModifier {
	out := make([]ItemModifier, 0, len(i.Implicits)+i.ExplicitCount())
	out = append(out, i.Implicits...)
	out = append(out, i.Prefixes...)
	out = append(out, i.Suffixes...)
	return out
}

// Affixes returns the slice holding mods of the given explicit type
func (i *Item) Affixes(t ModType) []ItemModifier {
	if t == ModTypePrefix {
		return i.Prefixes
	}
	return i.Suffixes
}

// OpenSlots returns how many more mods of type t fit under the rarity cap
func (i *Item) OpenSlots(t ModType) int {
	limit := i.Rarity.MaxPrefixes()
	if limit < 0 {
		return 0
	}
	open := limit - len(i.Affixes(t))
	if open < 0 {
		return 0
	}
	return open
}

// TotalOpenSlots returns open prefix plus open suffix slots
func (i *Item) TotalOpenSlots() int {
	return i.OpenSlots(ModTypePrefix) + i.OpenSlots(ModTypeSuffix)
}

// OpenTypes returns the explicit affix types that still have room
func (i *Item) OpenTypes() []ModType {
	var types []ModType
	for _, t := range []ModType{ModTypePrefix, ModTypeSuffix} {
		if i.OpenSlots(t) > 0 {
			types = append(types, t)
		}
	}
	return types
}

// Groups returns the set of mod groups present among explicit mods
func (i *Item) Groups() map[string]bool {
	groups := make(map[string]bool, i.ExplicitCount())
	for _, m := range i.Prefixes {
		groups[m.Group] = true
	}
	for _, m := range i.Suffixes {
		groups[m.Group] = true
	}
	return groups
}

// ExplicitTags returns the union of tags over explicit mods, in first-seen order
func (i *Item) ExplicitTags() []string {
	seen := make(map[string]bool)
	var tags []string
	for _, m := range i.Explicits() {
		for _, t := range m.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	return tags
}

// HasDesecratedMod reports whether any explicit mod came from the desecrated pool
func (i *Item) HasDesecratedMod() bool {
	for _, m := range i.Explicits() {
		if m.DesecratedOnly {
			return true
		}
	}
	return false
}

// AddMod appends an explicit mod to the matching affix list
func (i *Item) AddMod(m ItemModifier) {
	if m.Type == ModTypePrefix {
		i.Prefixes = append(i.Prefixes, m)
		return
	}
	i.Suffixes = append(i.Suffixes, m)
}

// RemoveMod removes the explicit mod at index idx of type t and returns it
func (i *Item) RemoveMod(t ModType, idx int) ItemModifier {
	if t == ModTypePrefix {
		removed := i.Prefixes[idx]
		i.Prefixes = append(i.Prefixes[:idx:idx], i.Prefixes[idx+1:]...)
		return removed
	}
	removed := i.Suffixes[idx]
	i.Suffixes = append(i.Suffixes[:idx:idx], i.Suffixes[idx+1:]...)
	return removed
}

// Validate checks the structural invariants of the item:
// rarity-derived caps, one mod per group, sane level and quality, and value ranges.
func (i *Item) Validate() error {
	if i.BaseName == "" || i.Category == "" {
		return fmt.Errorf("%w: %s", ErrInvalidItem, ErrMsgItemMissingBase)
	}
	if !i.Rarity.Valid() {
		return fmt.Errorf("%w: unknown rarity %d", ErrInvalidItem, int(i.Rarity))
	}
	if i.ItemLevel < MinItemLevel || i.ItemLevel > MaxItemLevel {
		return fmt.Errorf("%w: item level %d outside [%d, %d]", ErrInvalidItem, i.ItemLevel, MinItemLevel, MaxItemLevel)
	}
	if i.Quality < 0 || (i.Quality > MaxQuality && !i.Corrupted) {
		return fmt.Errorf("%w: quality %d outside [0, %d]", ErrInvalidItem, i.Quality, MaxQuality)
	}

	if i.Rarity != RarityUnique {
		if len(i.Prefixes) > i.Rarity.MaxPrefixes() {
			return fmt.Errorf("%w: %d prefixes exceed the %s cap of %d", ErrInvalidItem, len(i.Prefixes), i.Rarity, i.Rarity.MaxPrefixes())
		}
		if len(i.Suffixes) > i.Rarity.MaxSuffixes() {
			return fmt.Errorf("%w: %d suffixes exceed the %s cap of %d", ErrInvalidItem, len(i.Suffixes), i.Rarity, i.Rarity.MaxSuffixes())
		}
	}

	groups := make(map[string]string)
	desecrated := 0
	for _, list := range [][]ItemModifier{i.Prefixes, i.Suffixes} {
		for _, m := range list {
			if m.Group != "" {
				if other, dup := groups[m.Group]; dup {
					return fmt.Errorf("%w: %q and %q share mod group %q", ErrInvalidItem, other, m.Name, m.Group)
				}
				groups[m.Group] = m.Name
			}
			if m.DesecratedOnly {
				desecrated++
			}
		}
	}
	if desecrated > MaxDesecratedMods {
		return fmt.Errorf("%w: %d desecrated modifiers, at most %d allowed", ErrInvalidItem, desecrated, MaxDesecratedMods)
	}

	for _, m := range i.Prefixes {
		if m.Type != ModTypePrefix {
			return fmt.Errorf("%w: %q is a %s in the prefix list", ErrInvalidItem, m.Name, m.Type)
		}
	}
	for _, m := range i.Suffixes {
		if m.Type != ModTypeSuffix {
			return fmt.Errorf("%w: %q is a %s in the suffix list", ErrInvalidItem, m.Name, m.Type)
		}
	}
	return nil
}
