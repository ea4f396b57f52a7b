package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ModType is the affix slot a modifier occupies
type ModType string

const (
	ModTypePrefix   ModType = "prefix"
	ModTypeSuffix   ModType = "suffix"
	ModTypeImplicit ModType = "implicit"
)

// Valid reports whether t is a known modifier type
func (t ModType) Valid() bool {
	switch t {
	case ModTypePrefix, ModTypeSuffix, ModTypeImplicit:
		return true
	}
	return false
}

// Opposite returns the other explicit affix type
func (t ModType) Opposite() ModType {
	if t == ModTypePrefix {
		return ModTypeSuffix
	}
	return ModTypePrefix
}

// Modifier is an immutable catalog entry.
// Categories are already expanded (e.g. "jewellery" -> ring, amulet, belt) once loaded.
type Modifier struct {
	Name           string   `json:"name" yaml:"name"`
	Type           ModType  `json:"type" yaml:"type"`
	Tier           int      `json:"tier" yaml:"tier"`
	StatText       string   `json:"stat_text" yaml:"stat_text"`
	Min            int      `json:"min" yaml:"min"`
	Max            int      `json:"max" yaml:"max"`
	RequiredILvl   int      `json:"required_ilvl" yaml:"required_ilvl"`
	Weight         int      `json:"weight" yaml:"weight"`
	Group          string   `json:"group" yaml:"group"`
	Tags           []string `json:"tags,omitempty" yaml:"tags"`
	Categories     []string `json:"categories,omitempty" yaml:"categories"`
	EssenceOnly    bool     `json:"essence_only,omitempty" yaml:"essence_only"`
	DesecratedOnly bool     `json:"desecrated_only,omitempty" yaml:"desecrated_only"`
}

// HasTag reports whether the modifier carries the tag
func (m *Modifier) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasAnyTag reports whether the modifier shares at least one tag with tags
func (m *Modifier) HasAnyTag(tags []string) bool {
	for _, tag := range tags {
		if m.HasTag(tag) {
			return true
		}
	}
	return false
}

// AppliesTo reports whether the modifier can spawn on the item category
func (m *Modifier) AppliesTo(category string) bool {
	for _, c := range m.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// RangeText renders the stat text with the roll range, e.g. "+(10-19) to maximum Life"
func (m *Modifier) RangeText() string {
	if m.Min == m.Max {
		return m.RenderValue(m.Min)
	}
	return strings.Replace(m.StatText, StatPlaceholder, fmt.Sprintf("(%d-%d)", m.Min, m.Max), 1)
}

// RenderValue renders the stat text with a concrete value, e.g. "+15 to maximum Life"
func (m *Modifier) RenderValue(value int) string {
	return strings.Replace(m.StatText, StatPlaceholder, strconv.Itoa(value), 1)
}

// ItemModifier is a modifier instance on an item with its rolled value
type ItemModifier struct {
	Modifier
	Value     int  `json:"value"`
	Fractured bool `json:"fractured,omitempty"`
}

// NewItemModifier creates an instance of mod with the given rolled value
func NewItemModifier(mod *Modifier, value int) ItemModifier {
	return ItemModifier{Modifier: *mod, Value: value}
}

// Text renders the instance with its current value
func (im *ItemModifier) Text() string {
	return im.RenderValue(im.Value)
}

// InRange reports whether the current value lies within [Min, Max]
func (im *ItemModifier) InRange() bool {
	return im.Value >= im.Min && im.Value <= im.Max
}
