package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog errors
	ErrMsgCatalogIntegrity  = "catalog integrity violation"
	ErrMsgModifierNotFound  = "modifier not found"
	ErrMsgInvalidExclusion  = "invalid exclusion rule"
	ErrMsgInvalidConfig     = "invalid configuration"
	ErrMsgDuplicateName     = "duplicate name"
	ErrMsgUnknownMechanic   = "unknown mechanic"
	ErrMsgUnknownOmenEffect = "unknown omen effect"
	ErrMsgUnknownCategory   = "unknown category"
	ErrMsgUnknownCurrency   = "unknown currency"

	// Item errors
	ErrMsgInvalidItem     = "invalid item"
	ErrMsgItemMissingBase = "item requires a base name and category"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrCatalogIntegrity signals catalog data that no longer matches the game rules.
	// It is never a gameplay outcome.
	ErrCatalogIntegrity = errors.New(ErrMsgCatalogIntegrity)

	ErrModifierNotFound  = errors.New(ErrMsgModifierNotFound)
	ErrInvalidExclusion  = errors.New(ErrMsgInvalidExclusion)
	ErrInvalidConfig     = errors.New(ErrMsgInvalidConfig)
	ErrDuplicateName     = errors.New(ErrMsgDuplicateName)
	ErrUnknownMechanic   = errors.New(ErrMsgUnknownMechanic)
	ErrUnknownOmenEffect = errors.New(ErrMsgUnknownOmenEffect)
	ErrUnknownCategory   = errors.New(ErrMsgUnknownCategory)
	ErrUnknownCurrency   = errors.New(ErrMsgUnknownCurrency)

	// Item errors
	ErrInvalidItem = errors.New(ErrMsgInvalidItem)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
