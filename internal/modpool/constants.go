package modpool

// ==================== Error Messages ====================

// Validation error format strings used while building the pool
const (
	ErrFmtDuplicateModifier   = "%w: modifier %q defined twice"
	ErrFmtEmptyModifierName   = "%w: modifier at index %d has empty name"
	ErrFmtInvalidModType      = "%w: modifier %q has unknown type %q"
	ErrFmtInvalidRange        = "%w: modifier %q has min %d greater than max %d"
	ErrFmtNegativeWeight      = "%w: modifier %q has negative weight %d"
	ErrFmtMissingPlaceholder  = "%w: modifier %q stat text %q has no placeholder"
	ErrFmtNoCategories        = "%w: modifier %q applies to no item category"
	ErrFmtConflictingSources  = "%w: modifier %q cannot be both essence-only and desecrated-only"
	ErrFmtCategoryGroupCycle  = "%w: category group %q is defined in terms of another group"
	ErrFmtInvalidRequiredILvl = "%w: modifier %q has required item level %d outside [1, 100]"
)
