package exclusion

// numberOrRange matches a numeric literal or a parenthesised numeric range,
// e.g. "50", "-12", "1.5" or "(74-89)"
const numberOrRange = `(?:\(-?\d+(?:\.\d+)?-\-?\d+(?:\.\d+)?\)|[-+]?\d+(?:\.\d+)?)`

// Rule validation messages
const (
	ErrFmtTooFewPatterns     = "%w: rule %q needs at least two patterns"
	ErrFmtDuplicatePattern   = "%w: rule %q repeats pattern %q"
	ErrFmtPlaceholderOnly    = "%w: rule %q pattern %q has no literal text"
	ErrFmtUnknownRuleModType = "%w: rule %q lists unknown mod type %q"
	ErrFmtCompilePattern     = "%w: rule %q pattern %q: %v"
)

// MsgFmtConflict is the user-facing reason for a rejected candidate
const MsgFmtConflict = "%s conflicts with existing modifier %q (%s)"
