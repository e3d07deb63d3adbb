package bitcoin

import "time"

const (
	warmupMaxAttempts = 10
	warmupMinBackoff  = 10 * time.Millisecond
	warmupMaxBackoff  = 1 * time.Second
)
