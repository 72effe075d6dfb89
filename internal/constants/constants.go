// Package constants provides named constants used throughout the turgles codebase.
// The defaults mirror the reference random-walk benchmark.
package constants

// World geometry constants
const (
	// DefaultHalfExtent is the coordinate beyond which the boundary policy triggers.
	// The world spans [-DefaultHalfExtent, +DefaultHalfExtent] on both axes.
	DefaultHalfExtent = 400.0

	// DefaultTurtleScale is the initial size written to each turtle's scale slots.
	DefaultTurtleScale = 1.0
)

// Walk constants
const (
	// DefaultSpeed is the distance a turtle travels per second of simulated time.
	DefaultSpeed = 50.0

	// DefaultDT is the simulated time covered by one step (30 steps per second).
	DefaultDT = 1.0 / 30.0

	// DefaultMaxDeviation is the largest heading change per step, in degrees.
	DefaultMaxDeviation = 15.0

	// DefaultTurnRate is the rate parameter of the exponential turn-noise model.
	// Its reciprocal is the mean of the raw draw, which the model subtracts.
	DefaultTurnRate = 1.0 / DefaultMaxDeviation

	// FullTurn is the number of degrees in a full rotation.
	FullTurn = 360.0

	// HalfTurn reverses a heading.
	HalfTurn = 180.0
)

// Benchmark sizing constants
const (
	// DefaultPopulation is the number of turtles in a benchmark run.
	DefaultPopulation = 1000

	// DefaultSteps is the number of timed steps in a benchmark run.
	DefaultSteps = 1000

	// DefaultSeed seeds the turtle generators when no seed is configured.
	DefaultSeed = 1

	// DefaultWorkers is the number of goroutines stepping chunks in parallel.
	DefaultWorkers = 1

	// DefaultChunkSize is the number of turtles sharing one noise stream.
	// Chunk boundaries, not worker count, decide which stream a turtle draws
	// from, so results do not depend on parallelism.
	DefaultChunkSize = 1024
)
