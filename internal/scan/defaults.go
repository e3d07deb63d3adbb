package scan

import "time"

const (
	scanChunkSize uint64 = 2048

	statsFlushSize     = 1000
	statsFlushInterval = 5 * time.Second
)
