package providers

import "time"

const (
	// shutdownTimeout is the maximum time to wait for in-flight requests on shutdown.
	shutdownTimeout = 15 * time.Second
)
