package crafting

import "time"

// ==================== Omen Behaviour ====================

// WhittleStrategy selects which modifier an Omen of Whittling removes
type WhittleStrategy int

const (
	// WhittleLowestModLevel removes the modifier with the lowest required item
	// level, the weakest roll on the item. Ties go to the higher tier number.
	WhittleLowestModLevel WhittleStrategy = iota

	// WhittleBestTier removes the modifier with the lowest tier number (tier 1 = best)
	WhittleBestTier
)

// WhittlingTarget is the removal rule applied by Omen of Whittling
const WhittlingTarget = WhittleLowestModLevel

// DoubleRollCount is the number of rolls or removals under a "double" omen
const DoubleRollCount = 2

// AlchemyModCount is the number of modifiers Orb of Alchemy rolls
const AlchemyModCount = 4

// ==================== Vaal Outcomes ====================

// VaalOutcome is one of the corruption results
type VaalOutcome string

const (
	VaalNoChange     VaalOutcome = "no_change"
	VaalImplicit     VaalOutcome = "implicit"
	VaalQuality      VaalOutcome = "quality"
	VaalRerollValues VaalOutcome = "reroll_values"
)

// VaalQualityChange is the largest quality shift a Vaal quality outcome applies
const VaalQualityChange = 5

// CorruptionImplicitTag marks implicits that Vaal Orb may add
const CorruptionImplicitTag = "corrupted"

// ==================== Cache ====================

// Defaults for the available-modifier breakdown cache
const (
	DefaultBreakdownCacheSize = 512
	DefaultBreakdownCacheTTL  = 10 * time.Minute
)

// ==================== Failure Messages ====================

// Messages returned in failed CraftResults. They are shown to players.
const (
	MsgFmtUnknownCurrency    = "Unknown currency %q"
	MsgFmtUnknownOmen        = "Unknown omen %q"
	MsgFmtIncompatibleOmen   = "%s cannot be used with %s"
	MsgFmtDuplicateOmen      = "%s was given more than once"
	MsgFmtConflictingOmens   = "Conflicting omens: %s and %s"
	MsgFmtInvalidItem        = "Invalid item: %v"
	MsgItemRequired          = "An item is required"
	MsgFmtCorrupted          = "%s cannot modify a corrupted item"
	MsgFmtWrongCategory      = "%s cannot be used on %s items"
	MsgFmtNeedsNormal        = "%s requires a Normal item"
	MsgFmtNeedsMagic         = "%s requires a Magic item"
	MsgFmtNeedsMagicOpenSlot = "%s requires a Magic item with an open affix slot"
	MsgFmtNeedsRareOpenSlot  = "%s requires a Rare item with an open affix slot"
	MsgFmtNeedsRareWithMod   = "%s requires a Rare item with at least one modifier"
	MsgFmtNeedsModToRemove   = "%s requires a Magic or Rare item with a removable modifier"
	MsgFmtNeedsRerollable    = "%s requires an item with a modifier to reroll"
	MsgFmtNeedsOpenSlots     = "%s requires %d open %s slots"
	MsgFmtNeedsOpenSlot      = "%s requires an open %s slot"
	MsgFmtNeedsRemovable     = "%s requires a removable %s"
	MsgFmtNeedsRemovableN    = "%s requires %d removable modifiers"
	MsgFmtNoEligible         = "No eligible modifiers can be added by %s"
	MsgFmtNoEligibleLevel    = "No eligible modifiers can be added by %s: it needs modifier level %d but the item is level %d"
	MsgFmtNoSharedTags       = "No eligible modifiers share a tag with the item's modifiers"
	MsgFmtAlchemyShort       = "%s could only roll %d of %d modifiers"
	MsgFmtMaxItemLevel       = "%s only works on items up to level %d"
	MsgFmtAlreadyDesecrated  = "%s cannot add a second desecrated modifier"
	MsgFmtNeedsRare          = "%s requires a Rare item"
	MsgFmtVaalUnique         = "%s cannot corrupt a Unique item"
	MsgFmtAlreadyCorrupted   = "%s cannot be used on an item that is already corrupted"
	MsgFmtQualityCapped      = "%s cannot raise quality above %d%%"
	MsgFmtEssenceCategory    = "%s has no effect on %s items"
	MsgFmtEssenceGroupTaken  = "%s cannot add %s: the item already has a modifier of that group"
	MsgFmtEssenceBlocked     = "%s cannot add %s: %s"
	MsgFmtEssenceNoRoom      = "%s cannot make room for %s"
	MsgFmtEssenceFractured   = "%s cannot replace the fractured %s"
)

// Messages returned in successful CraftResults
const (
	MsgFmtTransmuted     = "Upgraded to Magic and added %s"
	MsgFmtAugmented      = "Added %s"
	MsgFmtAlchemised     = "Upgraded to Rare with %s"
	MsgFmtRegal          = "Upgraded to Rare and added %s"
	MsgFmtExalted        = "Added %s"
	MsgFmtChaos          = "Removed %s and added %s"
	MsgDivine            = "Rerolled modifier values"
	MsgFmtAnnulled       = "Removed %s"
	MsgFmtVaal           = "Corrupted the item: %s"
	MsgVaalNoChange      = "no other change"
	MsgFmtVaalImplicit   = "added %s"
	MsgFmtVaalQuality    = "quality is now %d%%"
	MsgVaalReroll        = "rerolled modifier values"
	MsgFmtEssenceUpgrade = "Upgraded to Rare and added %s"
	MsgFmtEssenceReplace = "Removed %s and added %s"
	MsgFmtDesecrated     = "Added desecrated modifier %s"
	MsgFmtDesecratedSwap = "Removed %s and added desecrated modifier %s"
	MsgFmtQuality        = "Quality raised to %d%%"
)

// ==================== Log Messages ====================

const (
	LogMsgApply              = "Applying currency"
	LogMsgApplyFailed        = "Currency application failed"
	LogMsgApplySucceeded     = "Currency applied"
	LogMsgUnknownCurrency    = "Unknown currency requested"
	LogMsgOmenRejected       = "Omen rejected"
	LogMsgUnknownOmen        = "Unknown omen requested"
	LogMsgIntegrityViolation = "Crafting catalog integrity violation"
	LogMsgRegistryBuilt      = "Currency registry built"
	LogMsgBreakdownCacheHit  = "Available modifiers served from cache"
)

// Log field keys
const (
	LogFieldCurrency = "currency"
	LogFieldOmens    = "omens"
	LogFieldOmen     = "omen"
	LogFieldSeeded   = "seeded"
	LogFieldSuccess  = "success"
	LogFieldMessage  = "message"
	LogFieldError    = "error"
	LogFieldCategory = "category"
)

// Outcome labels for the craft metrics
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeError   = "error"
)

// ==================== Integrity Errors ====================

const (
	ErrFmtEssenceModMissing = "%w: essence %q guarantees %q which is not in the modifier pool"
	ErrFmtUnsupportedEffect = "%w: omen %q applies %s which %s does not support"
	ErrFmtOutputInvalid     = "%w: %s produced an invalid item: %v"
	ErrFmtRarityDecreased   = "%w: %s lowered rarity from %s to %s"
	ErrFmtCorruptionCleared = "%w: %s cleared corruption"
	ErrFmtItemLevelChanged  = "%w: %s changed item level from %d to %d"
	ErrFmtValueOutOfRange   = "%w: %s left %q at %d outside [%d, %d]"
	ErrFmtUnknownMechanic   = "%w: currency %q uses mechanic %q"
	ErrFmtDuplicateMechanic = "%w: currency %q is registered twice"
)
