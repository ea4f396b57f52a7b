package bootstrap

import "time"

// ShutdownTimeout bounds the graceful shutdown sequence
const ShutdownTimeout = 15 * time.Second

// Startup messages
const (
	LogMsgEngineReady     = "Crafting engine ready"
	LogMsgSeededSource    = "Using seeded random source"
	LogMsgHistoryEnabled  = "Craft history enabled"
	LogMsgHistoryDisabled = "Craft history disabled, DATABASE_URL not set"

	ErrMsgFailedLoadCatalog     = "failed to load crafting catalog"
	ErrMsgFailedBuildEngine     = "failed to build crafting engine"
	ErrMsgFailedConnectDatabase = "failed to connect to database"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgFlushingHistory      = "Flushing craft history..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)
