package history

import "time"

// Async recorder defaults
const (
	DefaultWorkers    = 2
	DefaultQueueSize  = 256
	DefaultJobTimeout = 5 * time.Second

	DefaultRecentLimit = 20
	MaxRecentLimit     = 200
)

// Error messages
const (
	ErrMsgInsertFailed = "failed to record craft history"
)

// Log messages
const (
	LogMsgQueueFull    = "Craft history queue full, dropping entry"
	LogMsgWriteFailed  = "Craft history write failed"
	LogMsgRecorderStop = "Craft history recorder stopped"
)

// Log field keys
const (
	LogFieldEntryID  = "entry_id"
	LogFieldCurrency = "currency"
	LogFieldError    = "error"
	LogFieldFailed   = "failed_writes"
)
