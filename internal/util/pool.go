package util

import "runtime"

// GetOptimalPoolSize returns the default size for both the parser pool
// and the worker pool: min(max(runtime.NumCPU()*2, 4), 32). The two pools
// must agree on this number — a worker pool larger than the parser pool
// just blocks extra workers waiting for a parser.
func GetOptimalPoolSize() int {
	size := runtime.NumCPU() * 2
	if size < 4 {
		size = 4
	}
	if size > 32 {
		size = 32
	}
	return size
}

// GetOptimalPoolSizeWithOverride returns override if positive, otherwise
// GetOptimalPoolSize().
func GetOptimalPoolSizeWithOverride(override int) int {
	if override > 0 {
		return override
	}
	return GetOptimalPoolSize()
}
