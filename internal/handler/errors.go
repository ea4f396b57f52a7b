package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidLimit      = "Invalid limit parameter"
)

// Log messages
const (
	LogMsgDecodeFailed      = "Failed to decode request"
	LogMsgRequestDecoded    = "Request decoded"
	LogMsgMissingQueryParam = "Missing query parameter"
	LogMsgServiceError      = "Service error"
	LogMsgCraftApplied      = "Currency applied"
	LogMsgSimulationDone    = "Simulation completed"
	LogMsgEncodeFailed      = "Failed to encode JSON response"
	LogMsgWriteFailed       = "Failed to write response buffer"
	LogMsgReadinessFailed   = "Readiness check failed"
)

// Log field keys
const (
	LogFieldError     = "error"
	LogFieldAction    = "action"
	LogFieldParam     = "param"
	LogFieldCurrency  = "currency"
	LogFieldOmens     = "omens"
	LogFieldSuccess   = "success"
	LogFieldMessage   = "message"
	LogFieldTrials    = "trials"
	LogFieldSuccesses = "successes"
)

// Health status values
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	MsgDatabaseUnavailable  = "database connection failed"
)

// Action names used in logs
const (
	ActionCraft           = "craft"
	ActionSimulate        = "simulate"
	ActionApplicable      = "applicable_currencies"
	ActionCompatibleOmens = "compatible_omens"
	ActionAvailableMods   = "available_mods"
	ActionHistory         = "history"
)

// Query parameters
const (
	QueryParamCurrency = "currency"
	QueryParamLimit    = "limit"
)
