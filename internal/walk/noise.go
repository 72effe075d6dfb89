// Package walk implements the bounded random walk: turn noise, the per-turtle
// update kernel, and drivers that step a whole population.
package walk

import (
	"fmt"
	"math"
)

// Source yields uniform draws in [0, 1). *rand.Rand from math/rand/v2
// satisfies it.
type Source interface {
	Float64() float64
}

// NoiseModel names a turn-noise distribution.
type NoiseModel string

const (
	// NoiseUniform draws a heading change uniformly in [-max, +max] degrees.
	NoiseUniform NoiseModel = "uniform"

	// NoiseExponential draws from an exponential distribution and subtracts
	// its mean so turns are centred on zero.
	NoiseExponential NoiseModel = "exponential"
)

// Valid returns true if the model is a recognized value.
func (m NoiseModel) Valid() bool {
	switch m {
	case NoiseUniform, NoiseExponential:
		return true
	}
	return false
}

// String returns the string representation of the model.
func (m NoiseModel) String() string {
	return string(m)
}

// TurnNoise produces a per-step heading perturbation in degrees.
// Implementations are immutable; all state lives in the Source.
type TurnNoise interface {
	Delta(src Source) float64
}

// Uniform is the uniform turn-noise model.
type Uniform struct {
	MaxDeviation float64
}

// Delta returns (2r - 1) * MaxDeviation for one draw r.
func (u Uniform) Delta(src Source) float64 {
	r := src.Float64()
	return (2*r - 1) * u.MaxDeviation
}

// Exponential is the exponential turn-noise model with rate Rate.
type Exponential struct {
	Rate float64
}

// Delta returns -ln(z)/Rate - 1/Rate. Draws of exactly 0 or 1 are discarded
// so the logarithm is always finite.
func (e Exponential) Delta(src Source) float64 {
	z := src.Float64()
	for z == 0 || z == 1 {
		z = src.Float64()
	}
	mean := 1 / e.Rate
	return -mean*math.Log(z) - mean
}

// NewTurnNoise builds the turn-noise model named by model.
func NewTurnNoise(model NoiseModel, maxDeviation, turnRate float64) (TurnNoise, error) {
	switch model {
	case NoiseUniform:
		return Uniform{MaxDeviation: maxDeviation}, nil
	case NoiseExponential:
		if !(turnRate > 0) {
			return nil, fmt.Errorf("exponential noise needs a positive turn rate, got %v", turnRate)
		}
		return Exponential{Rate: turnRate}, nil
	default:
		return nil, fmt.Errorf("unknown noise model: %q (valid: uniform, exponential)", model)
	}
}
