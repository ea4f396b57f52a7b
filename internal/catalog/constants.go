package catalog

// ==================== Configuration File Names ====================

// Catalog file names inside the data directory
const (
	ModifiersFileName  = "modifiers.json"
	CurrenciesFileName = "currencies.json"
	EssencesFileName   = "essences.json"
	OmensFileName      = "omens.json"
	ExclusionsFileName = "exclusions.yaml"
)

// Schema file names inside the schema directory
const (
	ModifiersSchemaName  = "modifiers.schema.json"
	CurrenciesSchemaName = "currencies.schema.json"
	EssencesSchemaName   = "essences.schema.json"
	OmensSchemaName      = "omens.schema.json"
	ExclusionsSchemaName = "exclusions.schema.json"
)

// DefaultSchemaDir is resolved relative to the module root
const DefaultSchemaDir = "configs/schemas"

// checksumLength is the number of hex characters kept from the catalog digest
const checksumLength = 12

// QualityStepCount is one step per rarity band: Normal, Magic, Rare-or-Unique
const QualityStepCount = 3

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadFileFailed   = "failed to read catalog file %s: %w"
	ErrMsgSchemaFailed     = "schema validation failed for %s: %w"
	ErrMsgParseFileFailed  = "failed to parse catalog file %s: %w"
	ErrMsgStructValidation = "%w: %s: %v"
	ErrMsgBuildPoolFailed  = "failed to build modifier pool: %w"
	ErrMsgBuildRulesFailed = "failed to build exclusion rules: %w"
)

// Semantic validation format strings
const (
	ErrFmtDuplicateCurrency    = "%w: currency %q defined twice"
	ErrFmtDuplicateEssence     = "%w: essence %q clashes with another currency or essence"
	ErrFmtDuplicateOmen        = "%w: omen %q defined twice"
	ErrFmtUnknownMechanic      = "%w: currency %q uses mechanic %q"
	ErrFmtEssenceMechanic      = "%w: currency %q uses the essence mechanic; essences belong in " + EssencesFileName
	ErrFmtUnknownCurrencyCat   = "%w: currency %q is restricted to unknown category %q"
	ErrFmtQualityStep          = "%w: quality currency %q needs %d quality steps"
	ErrFmtUnknownEssenceTier   = "%w: essence %q has tier %q"
	ErrFmtEssenceModMissing    = "%w: essence %q guarantees %q: %w"
	ErrFmtEssenceModNotEssence = "%w: essence %q guarantees %q which is not essence-only"
	ErrFmtUnknownEssenceCat    = "%w: essence %q targets unknown category %q"
	ErrFmtUnknownOmenEffect    = "%w: omen %q has effect %q"
	ErrFmtOmenNoCurrency       = "%w: omen %q targets %q which matches no currency"
	ErrFmtOmenNoTags           = "%w: omen %q has boss_tags but no tags"
	ErrFmtDuplicateOmenEffect  = "%w: omen %q repeats effect %q"
)

// ==================== Log Messages ====================

const (
	LogMsgLoadingCatalog = "Loading crafting catalog"
	LogMsgCatalogLoaded  = "Crafting catalog loaded"
	LogMsgCatalogInvalid = "Crafting catalog rejected"
)

// Item spec error messages
const (
	ErrFmtSpecUnknownMod      = "%w: %w: %q"
	ErrFmtSpecWrongSlot       = "%w: %q is a %s, listed under %s"
	ErrFmtSpecValueRange      = "%w: %q value %d outside %d..%d"
	ErrFmtSpecUnknownCategory = "%w: %w: %q"
	ErrMsgSpecMissing         = "item is required"
)
