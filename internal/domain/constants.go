package domain

// ==================== Item Limits ====================

const (
	// MaxMagicAffixesPerType caps prefixes and suffixes on Magic items
	MaxMagicAffixesPerType = 1

	// MaxRareAffixesPerType caps prefixes and suffixes on Rare items
	MaxRareAffixesPerType = 3

	// MinItemLevel and MaxItemLevel bound the item level of any item
	MinItemLevel = 1
	MaxItemLevel = 100

	// MaxQuality is the quality cap reachable through quality currencies
	MaxQuality = 20

	// MaxDesecratedMods is the number of desecrated modifiers an item may carry
	MaxDesecratedMods = 1
)

// StatPlaceholder marks the numeric slot in a modifier's stat text
const StatPlaceholder = "{}"

// ==================== Currency Mechanics ====================

// Mechanic identifies the strategy implementing a currency
type Mechanic string

const (
	MechanicTransmutation Mechanic = "transmutation"
	MechanicAugmentation  Mechanic = "augmentation"
	MechanicAlchemy       Mechanic = "alchemy"
	MechanicRegal         Mechanic = "regal"
	MechanicExalted       Mechanic = "exalted"
	MechanicChaos         Mechanic = "chaos"
	MechanicDivine        Mechanic = "divine"
	MechanicAnnulment     Mechanic = "annulment"
	MechanicVaal          Mechanic = "vaal"
	MechanicEssence       Mechanic = "essence"
	MechanicDesecration   Mechanic = "desecration"
	MechanicQuality       Mechanic = "quality"
)

// CurrencyTier classifies a currency within its family
type CurrencyTier string

const (
	TierBasic     CurrencyTier = "basic"
	TierGreater   CurrencyTier = "greater"
	TierPerfect   CurrencyTier = "perfect"
	TierLesser    CurrencyTier = "lesser"
	TierNormal    CurrencyTier = "normal"
	TierCorrupted CurrencyTier = "corrupted"
	TierGnawed    CurrencyTier = "gnawed"
	TierPreserved CurrencyTier = "preserved"
	TierAncient   CurrencyTier = "ancient"
)

// ==================== Omen Effects ====================

// OmenEffect is one behavioural override an omen applies to a currency
type OmenEffect string

const (
	EffectForcePrefix  OmenEffect = "force_prefix"
	EffectForceSuffix  OmenEffect = "force_suffix"
	EffectRemovePrefix OmenEffect = "remove_prefix"
	EffectRemoveSuffix OmenEffect = "remove_suffix"
	EffectHomogenize   OmenEffect = "homogenize"
	EffectDouble       OmenEffect = "double"
	EffectWhittle      OmenEffect = "whittle"
	EffectBossTags     OmenEffect = "boss_tags"
)

// Valid reports whether e is a known omen effect
func (e OmenEffect) Valid() bool {
	switch e {
	case EffectForcePrefix, EffectForceSuffix, EffectRemovePrefix, EffectRemoveSuffix,
		EffectHomogenize, EffectDouble, EffectWhittle, EffectBossTags:
		return true
	}
	return false
}
