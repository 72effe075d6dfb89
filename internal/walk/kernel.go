package walk

import (
	"math"

	"github.com/nvandessel/turgles/internal/constants"
	"github.com/nvandessel/turgles/internal/turtle"
)

// BoundaryPolicy selects how a turtle is kept inside the world.
type BoundaryPolicy string

const (
	// Bounce reverses the heading of a turtle that is outside the world,
	// before the turn is drawn.
	Bounce BoundaryPolicy = "bounce"

	// Wrap moves a turtle that left the world to the opposite edge, after
	// its position is integrated.
	Wrap BoundaryPolicy = "wrap"
)

// Valid returns true if the policy is a recognized value.
func (b BoundaryPolicy) Valid() bool {
	switch b {
	case Bounce, Wrap:
		return true
	}
	return false
}

// String returns the string representation of the policy.
func (b BoundaryPolicy) String() string {
	return string(b)
}

// Params is the read-only configuration of one run.
// Non-finite Magnitude or HalfExtent propagate through the arithmetic
// unchecked; keeping them finite is the caller's job.
type Params struct {
	// Magnitude is the distance travelled per step.
	Magnitude float64

	// HalfExtent is the coordinate beyond which Boundary applies.
	HalfExtent float64

	// Boundary is the boundary policy. Exactly one applies per run.
	Boundary BoundaryPolicy

	// Noise perturbs the heading once per step.
	Noise TurnNoise
}

// Step advances one turtle by one simulated step. It draws exactly one turn
// from src through p.Noise.
func Step(t turtle.View, p Params, src Source) {
	heading := t.Heading()
	if p.Boundary == Bounce && outside(t.X(), t.Y(), p.HalfExtent) {
		heading = normalizeHeading(heading + constants.HalfTurn)
	}

	heading = normalizeHeading(heading + p.Noise.Delta(src))
	t.SetHeading(heading)

	sin, cos := math.Sincos(heading * math.Pi / constants.HalfTurn)
	t.SetDirection(cos, sin)
	t.Move(p.Magnitude*cos, p.Magnitude*sin)

	if p.Boundary == Wrap {
		t.SetX(wrap(t.X(), p.HalfExtent))
		t.SetY(wrap(t.Y(), p.HalfExtent))
	}
}

func outside(x, y, halfExtent float64) bool {
	return math.Abs(x) > halfExtent || math.Abs(y) > halfExtent
}

// wrap maps a coordinate that crossed an edge onto the opposite one.
func wrap(v, halfExtent float64) float64 {
	switch {
	case v > halfExtent:
		return v - 2*halfExtent
	case v < -halfExtent:
		return v + 2*halfExtent
	}
	return v
}

// normalizeHeading maps degrees into [0, 360).
func normalizeHeading(h float64) float64 {
	h = math.Mod(h, constants.FullTurn)
	if h < 0 {
		h += constants.FullTurn
		// A tiny negative angle rounds up to exactly 360.
		if h >= constants.FullTurn {
			h = 0
		}
	}
	return h
}
