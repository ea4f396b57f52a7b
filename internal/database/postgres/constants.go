package postgres

// Error messages
const (
	ErrMsgEncodeItem    = "failed to encode item"
	ErrMsgDecodeItem    = "failed to decode item"
	ErrMsgInsertHistory = "failed to insert craft history"
	ErrMsgQueryHistory  = "failed to query craft history"
	ErrMsgScanHistory   = "failed to scan craft history row"
)

const (
	insertHistorySQL = `
INSERT INTO craft_history (id, currency, omens, seed, success, message, item_before, item_after, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	recentHistorySQL = `
SELECT id, currency, omens, seed, success, message, item_before, item_after, created_at
FROM craft_history
ORDER BY created_at DESC, id
LIMIT $1`
)
