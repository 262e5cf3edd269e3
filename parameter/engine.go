package parameter

import "time"

// Simulation clock
const (
	// TickRate is the fixed simulation frequency in ticks per second
	TickRate = 60

	// TickDuration is the fixed timestep between simulation ticks
	TickDuration = time.Second / TickRate

	// TickSeconds is the fixed timestep in seconds
	TickSeconds = 1.0 / float64(TickRate)
)

// Event queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 2048

	// EventBufferMask is the bitmask for fast modulo operations (2048 - 1)
	EventBufferMask = 2047
)

// Parallel stepping
const (
	// ParallelMinProjectiles is the active projectile count below which the
	// batch stepper runs single-threaded; goroutine overhead dominates under it
	ParallelMinProjectiles = 64
)
