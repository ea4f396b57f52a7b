package catalog

import (
	"fmt"

	"github.com/osse101/PoE2Craft_Go/internal/domain"
)

// ModSpec names a catalog modifier on an item. A nil Value rolls the maximum.
type ModSpec struct {
	Name      string `json:"name" validate:"required,max=100"`
	Value     *int   `json:"value,omitempty"`
	Fractured bool   `json:"fractured,omitempty"`
}

// ItemSpec is the external description of an item: modifiers are referenced
// by catalog name instead of carrying their full definition.
type ItemSpec struct {
	BaseName  string    `json:"base_name" validate:"required,max=100"`
	Category  string    `json:"category" validate:"required,max=50"`
	Rarity    string    `json:"rarity" validate:"required"`
	ItemLevel int       `json:"item_level" validate:"min=1,max=100"`
	Quality   int       `json:"quality" validate:"min=0,max=100"`
	Corrupted bool      `json:"corrupted,omitempty"`
	Prefixes  []ModSpec `json:"prefixes,omitempty" validate:"max=6,dive"`
	Suffixes  []ModSpec `json:"suffixes,omitempty" validate:"max=6,dive"`
	Implicits []ModSpec `json:"implicits,omitempty" validate:"max=6,dive"`
}

// BuildItem resolves a spec against the catalog and validates the result.
// Every error wraps domain.ErrInvalidItem.
func (c *Catalog) BuildItem(spec *ItemSpec) (*domain.Item, error) {
	if spec == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidItem, ErrMsgSpecMissing)
	}
	rarity, err := domain.ParseRarity(spec.Rarity)
	if err != nil {
		return nil, err
	}
	if !c.Pool.KnownCategory(spec.Category) {
		return nil, fmt.Errorf(ErrFmtSpecUnknownCategory, domain.ErrInvalidItem, domain.ErrUnknownCategory, spec.Category)
	}

	item := &domain.Item{
		BaseName:  spec.BaseName,
		Category:  spec.Category,
		Rarity:    rarity,
		ItemLevel: spec.ItemLevel,
		Quality:   spec.Quality,
		Corrupted: spec.Corrupted,
	}
	slots := []struct {
		t     domain.ModType
		specs []ModSpec
		dst   *[]domain.ItemModifier
	}{
		{domain.ModTypePrefix, spec.Prefixes, &item.Prefixes},
		{domain.ModTypeSuffix, spec.Suffixes, &item.Suffixes},
		{domain.ModTypeImplicit, spec.Implicits, &item.Implicits},
	}
	for _, slot := range slots {
		for _, ms := range slot.specs {
			m, err := c.resolveMod(ms, slot.t)
			if err != nil {
				return nil, err
			}
			*slot.dst = append(*slot.dst, m)
		}
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}
	return item, nil
}

func (c *Catalog) resolveMod(ms ModSpec, slot domain.ModType) (domain.ItemModifier, error) {
	def := c.Pool.FindModByName(ms.Name)
	if def == nil {
		return domain.ItemModifier{}, fmt.Errorf(ErrFmtSpecUnknownMod, domain.ErrInvalidItem, domain.ErrModifierNotFound, ms.Name)
	}
	if def.Type != slot {
		return domain.ItemModifier{}, fmt.Errorf(ErrFmtSpecWrongSlot, domain.ErrInvalidItem, ms.Name, def.Type, slot)
	}
	value := def.Max
	if ms.Value != nil {
		value = *ms.Value
	}
	if value < def.Min || value > def.Max {
		return domain.ItemModifier{}, fmt.Errorf(ErrFmtSpecValueRange, domain.ErrInvalidItem, ms.Name, value, def.Min, def.Max)
	}
	m := domain.NewItemModifier(def, value)
	m.Fractured = ms.Fractured
	return m, nil
}

// SpecFromItem is the inverse of BuildItem
func SpecFromItem(item *domain.Item) *ItemSpec {
	if item == nil {
		return nil
	}
	spec := &ItemSpec{
		BaseName:  item.BaseName,
		Category:  item.Category,
		Rarity:    item.Rarity.String(),
		ItemLevel: item.ItemLevel,
		Quality:   item.Quality,
		Corrupted: item.Corrupted,
		Prefixes:  modSpecs(item.Prefixes),
		Suffixes:  modSpecs(item.Suffixes),
		Implicits: modSpecs(item.Implicits),
	}
	return spec
}

func modSpecs(mods []domain.ItemModifier) []ModSpec {
	if len(mods) == 0 {
		return nil
	}
	out := make([]ModSpec, len(mods))
	for i := range mods {
		v := mods[i].Value
		out[i] = ModSpec{Name: mods[i].Name, Value: &v, Fractured: mods[i].Fractured}
	}
	return out
}
