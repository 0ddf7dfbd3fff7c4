package frame

// Host is the environment a Scheduler runs in.
type Host interface {
	// Now returns a monotonic timestamp in milliseconds.
	Now() float64
	// RequestTick asks the host to call fn once on its next refresh.
	RequestTick(fn func())
}

// Callback receives the seconds elapsed since the previous invocation.
type Callback func(deltaSeconds float64)
