package simulate

// Defaults for the Monte Carlo runner
const (
	DefaultMaxTrials = 100_000
	DefaultWorkers   = 4

	// chunksPerWorker splits a run finer than the worker count so slow chunks even out
	chunksPerWorker = 4

	// cancelCheckInterval is how many trials a chunk runs between context checks
	cancelCheckInterval = 256
)

// Error messages
const (
	ErrFmtTrialsOutOfRange = "%w: trials must be between 1 and %d, got %d"
	ErrFmtTrialFailed      = "trial %d: %w"
)

// Log messages
const (
	LogMsgSimulationStarted  = "Simulation started"
	LogMsgSimulationFinished = "Simulation finished"
	LogMsgSimulationAborted  = "Simulation aborted"
)

// Log field keys
const (
	LogFieldCurrency = "currency"
	LogFieldTrials   = "trials"
	LogFieldWorkers  = "workers"
	LogFieldSeed     = "seed"
	LogFieldSuccess  = "success_rate"
	LogFieldError    = "error"
)
