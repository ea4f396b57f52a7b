package crafting

import (
	"fmt"

	"github.com/osse101/PoE2Craft_Go/internal/catalog"
	"github.com/osse101/PoE2Craft_Go/internal/domain"
)

// Registry maps currency and omen names to their definitions.
// It is built once from the catalog and only read afterwards.
type Registry struct {
	currencies map[string]*Currency
	order      []string
	omens      map[string]domain.OmenDef
	omenOrder  []string
}

// NewRegistry binds every currency and essence in the catalog to its mechanic
// and checks that every omen effect is honoured by the currencies it targets
func NewRegistry(cat *catalog.Catalog) (*Registry, error) {
	r := &Registry{
		currencies: make(map[string]*Currency, len(cat.Currencies)+len(cat.Essences)),
		omens:      make(map[string]domain.OmenDef, len(cat.Omens)),
	}

	for i := range cat.Currencies {
		c := &Currency{def: cat.Currencies[i]}
		strat, err := newStrategy(&c.def)
		if err != nil {
			return nil, err
		}
		c.strat = strat
		if err := r.add(c); err != nil {
			return nil, err
		}
	}

	for i := range cat.Essences {
		ess := &cat.Essences[i]
		c := &Currency{def: domain.CurrencyDef{Name: ess.Name, Mechanic: domain.MechanicEssence, Tier: ess.Tier}}
		strat := &essence{def: &c.def, essence: ess, pool: cat.Pool, exclusions: cat.Exclusions, effectSet: effects()}
		if ess.RemovesBeforeAdding() {
			strat.effectSet = effects(domain.EffectRemovePrefix, domain.EffectRemoveSuffix)
		}
		c.strat = strat
		if err := r.add(c); err != nil {
			return nil, err
		}
	}

	for _, omen := range cat.Omens {
		for _, name := range r.order {
			cur := r.currencies[name]
			if !OmenCompatible(&omen, name) {
				continue
			}
			for _, eff := range omen.Effects {
				if !cur.Supports(eff) {
					return nil, fmt.Errorf(ErrFmtUnsupportedEffect, domain.ErrCatalogIntegrity, omen.Name, eff, name)
				}
			}
		}
		r.omens[omen.Name] = omen
		r.omenOrder = append(r.omenOrder, omen.Name)
	}

	return r, nil
}

func (r *Registry) add(c *Currency) error {
	if _, dup := r.currencies[c.Name()]; dup {
		return fmt.Errorf(ErrFmtDuplicateMechanic, domain.ErrDuplicateName, c.Name())
	}
	r.currencies[c.Name()] = c
	r.order = append(r.order, c.Name())
	return nil
}

// newStrategy picks the mechanic implementation for a currency definition.
// def must outlive the strategy; it points into the registry's Currency.
func newStrategy(def *domain.CurrencyDef) (strategy, error) {
	switch def.Mechanic {
	case domain.MechanicTransmutation:
		return &transmutation{def: def, effectSet: effects()}, nil
	case domain.MechanicAugmentation:
		return &augmentation{def: def, effectSet: effects()}, nil
	case domain.MechanicAlchemy:
		return &alchemy{def: def, effectSet: effects(domain.EffectForcePrefix, domain.EffectForceSuffix)}, nil
	case domain.MechanicRegal:
		return &regal{def: def, effectSet: effects(domain.EffectForcePrefix, domain.EffectForceSuffix, domain.EffectHomogenize)}, nil
	case domain.MechanicExalted:
		return &exalted{def: def, effectSet: effects(domain.EffectForcePrefix, domain.EffectForceSuffix, domain.EffectHomogenize, domain.EffectDouble)}, nil
	case domain.MechanicChaos:
		return &chaos{def: def, effectSet: effects(domain.EffectRemovePrefix, domain.EffectRemoveSuffix, domain.EffectWhittle)}, nil
	case domain.MechanicDivine:
		return &divine{def: def, effectSet: effects()}, nil
	case domain.MechanicAnnulment:
		return &annulment{def: def, effectSet: effects(domain.EffectRemovePrefix, domain.EffectRemoveSuffix, domain.EffectDouble)}, nil
	case domain.MechanicVaal:
		return &vaal{def: def, effectSet: effects()}, nil
	case domain.MechanicDesecration:
		return &desecration{def: def, effectSet: effects(domain.EffectForcePrefix, domain.EffectForceSuffix, domain.EffectBossTags)}, nil
	case domain.MechanicQuality:
		if len(def.QualityStep) != catalog.QualityStepCount {
			return nil, fmt.Errorf("%w: quality currency %q has %d quality steps", domain.ErrInvalidConfig, def.Name, len(def.QualityStep))
		}
		return &quality{def: def, effectSet: effects()}, nil
	}
	return nil, fmt.Errorf(ErrFmtUnknownMechanic, domain.ErrUnknownMechanic, def.Name, def.Mechanic)
}

// Currency returns the registered currency with the exact name
func (r *Registry) Currency(name string) (*Currency, bool) {
	c, ok := r.currencies[name]
	return c, ok
}

// Omen returns the omen with the exact name
func (r *Registry) Omen(name string) (domain.OmenDef, bool) {
	o, ok := r.omens[name]
	return o, ok
}

// CurrencyNames lists currencies then essences in catalog order
func (r *Registry) CurrencyNames() []string {
	return append([]string(nil), r.order...)
}

// CompatibleOmens lists the omens that may wrap the currency
func (r *Registry) CompatibleOmens(currency string) []string {
	var out []string
	for _, name := range r.omenOrder {
		omen := r.omens[name]
		if OmenCompatible(&omen, currency) {
			out = append(out, name)
		}
	}
	return out
}
