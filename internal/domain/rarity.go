package domain

import (
	"fmt"
	"strings"
)

// Rarity is the ordered rarity tier of an item. Crafting never lowers it.
type Rarity int

const (
	RarityNormal Rarity = iota
	RarityMagic
	RarityRare
	RarityUnique
)

var rarityNames = map[Rarity]string{
	RarityNormal: "Normal",
	RarityMagic:  "Magic",
	RarityRare:   "Rare",
	RarityUnique: "Unique",
}

// String returns the display name of the rarity
func (r Rarity) String() string {
	if name, ok := rarityNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Rarity(%d)", int(r))
}

// Valid reports whether r is one of the known rarities
func (r Rarity) Valid() bool {
	_, ok := rarityNames[r]
	return ok
}

// MaxPrefixes returns the prefix cap for the rarity.
// Unique items carry a fixed mod list and report -1 (uncapped).
func (r Rarity) MaxPrefixes() int {
	switch r {
	case RarityMagic:
		return MaxMagicAffixesPerType
	case RarityRare:
		return MaxRareAffixesPerType
	case RarityUnique:
		return -1
	default:
		return 0
	}
}

// MaxSuffixes returns the suffix cap for the rarity
func (r Rarity) MaxSuffixes() int {
	return r.MaxPrefixes()
}

// MaxExplicitMods returns the total explicit modifier cap (2 Magic, 6 Rare, 0 Normal)
func (r Rarity) MaxExplicitMods() int {
	if r == RarityUnique {
		return -1
	}
	return r.MaxPrefixes() + r.MaxSuffixes()
}

// MarshalText encodes the rarity as its display name
func (r Rarity) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: unknown rarity %d", ErrInvalidItem, int(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText decodes a rarity name, case-insensitively
func (r *Rarity) UnmarshalText(text []byte) error {
	parsed, err := ParseRarity(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ParseRarity converts a rarity name to a Rarity
func ParseRarity(s string) (Rarity, error) {
	for rarity, name := range rarityNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return rarity, nil
		}
	}
	return RarityNormal, fmt.Errorf("%w: unknown rarity %q", ErrInvalidItem, s)
}
