package catalog

import (
	"fmt"

	"github.com/osse101/PoE2Craft_Go/internal/domain"
	"github.com/osse101/PoE2Craft_Go/internal/modpool"
)

var knownMechanics = map[domain.Mechanic]bool{
	domain.MechanicTransmutation: true,
	domain.MechanicAugmentation:  true,
	domain.MechanicAlchemy:       true,
	domain.MechanicRegal:         true,
	domain.MechanicExalted:       true,
	domain.MechanicChaos:         true,
	domain.MechanicDivine:        true,
	domain.MechanicAnnulment:     true,
	domain.MechanicVaal:          true,
	domain.MechanicDesecration:   true,
	domain.MechanicQuality:       true,
}

var essenceTiers = map[domain.CurrencyTier]bool{
	domain.TierLesser:    true,
	domain.TierNormal:    true,
	domain.TierGreater:   true,
	domain.TierPerfect:   true,
	domain.TierCorrupted: true,
}

// validateCurrencies checks names and references and expands category
// restrictions in place
func validateCurrencies(defs []domain.CurrencyDef, pool *modpool.Pool, names map[string]bool) error {
	for i := range defs {
		def := &defs[i]
		if names[def.Name] {
			return fmt.Errorf(ErrFmtDuplicateCurrency, domain.ErrDuplicateName, def.Name)
		}
		names[def.Name] = true

		if def.Mechanic == domain.MechanicEssence {
			return fmt.Errorf(ErrFmtEssenceMechanic, domain.ErrInvalidConfig, def.Name)
		}
		if !knownMechanics[def.Mechanic] {
			return fmt.Errorf(ErrFmtUnknownMechanic, domain.ErrUnknownMechanic, def.Name, def.Mechanic)
		}
		if def.Mechanic == domain.MechanicQuality && len(def.QualityStep) != QualityStepCount {
			return fmt.Errorf(ErrFmtQualityStep, domain.ErrInvalidConfig, def.Name, QualityStepCount)
		}

		expanded, err := expandKnown(def.Categories, pool, func(c string) error {
			return fmt.Errorf(ErrFmtUnknownCurrencyCat, domain.ErrUnknownCategory, def.Name, c)
		})
		if err != nil {
			return err
		}
		def.Categories = expanded
	}
	return nil
}

// validateEssences resolves every guaranteed modifier. A missing one means the
// data files disagree with each other, which is an integrity error.
func validateEssences(defs []domain.EssenceDef, pool *modpool.Pool, names map[string]bool) error {
	for i := range defs {
		def := &defs[i]
		if names[def.Name] {
			return fmt.Errorf(ErrFmtDuplicateEssence, domain.ErrDuplicateName, def.Name)
		}
		names[def.Name] = true

		if !essenceTiers[def.Tier] {
			return fmt.Errorf(ErrFmtUnknownEssenceTier, domain.ErrInvalidConfig, def.Name, def.Tier)
		}

		for j := range def.Effects {
			eff := &def.Effects[j]
			mod := pool.FindModByName(eff.ModName)
			if mod == nil {
				return fmt.Errorf(ErrFmtEssenceModMissing, domain.ErrCatalogIntegrity, def.Name, eff.ModName, domain.ErrModifierNotFound)
			}
			if !mod.EssenceOnly {
				return fmt.Errorf(ErrFmtEssenceModNotEssence, domain.ErrCatalogIntegrity, def.Name, eff.ModName)
			}

			expanded, err := expandKnown(eff.Categories, pool, func(c string) error {
				return fmt.Errorf(ErrFmtUnknownEssenceCat, domain.ErrUnknownCategory, def.Name, c)
			})
			if err != nil {
				return err
			}
			eff.Categories = expanded
		}
	}
	return nil
}

// validateOmens requires each omen target to match at least one currency or
// essence under the variant rule, so a typo cannot make an omen a silent no-op
func validateOmens(defs []domain.OmenDef, currencies []domain.CurrencyDef, essences []domain.EssenceDef) error {
	all := make([]string, 0, len(currencies)+len(essences))
	for _, c := range currencies {
		all = append(all, c.Name)
	}
	for _, e := range essences {
		all = append(all, e.Name)
	}

	seen := make(map[string]bool, len(defs))
	for _, def := range defs {
		if seen[def.Name] {
			return fmt.Errorf(ErrFmtDuplicateOmen, domain.ErrDuplicateName, def.Name)
		}
		seen[def.Name] = true

		effects := make(map[domain.OmenEffect]bool, len(def.Effects))
		for _, eff := range def.Effects {
			if !eff.Valid() {
				return fmt.Errorf(ErrFmtUnknownOmenEffect, domain.ErrUnknownOmenEffect, def.Name, eff)
			}
			if effects[eff] {
				return fmt.Errorf(ErrFmtDuplicateOmenEffect, domain.ErrInvalidConfig, def.Name, eff)
			}
			effects[eff] = true
		}
		if effects[domain.EffectBossTags] && len(def.Tags) == 0 {
			return fmt.Errorf(ErrFmtOmenNoTags, domain.ErrInvalidConfig, def.Name)
		}

		for _, base := range def.Currencies {
			if !matchesAny(base, all) {
				return fmt.Errorf(ErrFmtOmenNoCurrency, domain.ErrCatalogIntegrity, def.Name, base)
			}
		}
	}
	return nil
}

func matchesAny(base string, names []string) bool {
	for _, n := range names {
		if domain.MatchesVariant(base, n) {
			return true
		}
	}
	return false
}

// expandKnown expands group names and rejects categories no modifier can spawn on
func expandKnown(names []string, pool *modpool.Pool, unknown func(string) error) ([]string, error) {
	expanded := pool.Categories().Expand(names)
	for _, c := range expanded {
		if !pool.KnownCategory(c) {
			return nil, unknown(c)
		}
	}
	return expanded, nil
}
