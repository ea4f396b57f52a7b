package worker

import "time"

// DefaultJobTimeout bounds a single job when the pool is built without one
const DefaultJobTimeout = 5 * time.Second

// Log messages
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgPoolDraining    = "Worker pool draining queued jobs"
)

// Log field keys
const (
	LogFieldError  = "error"
	LogFieldQueued = "queued"
)

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount      = 2
	TestQueueSize        = 10
	TestExpectedJobCount = 2
)
