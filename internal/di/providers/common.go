package providers

import "time"

const (
	// shutdownTimeout is the maximum time to wait for graceful shutdown of the server.
	shutdownTimeout = 30 * time.Second

	// Login attempts allowed per client IP before the limiter starts
	// rejecting. Roughly five attempts per minute with a small burst.
	loginAttemptsPerMinute = 5
	loginBurst             = 5
)
