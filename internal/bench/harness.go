// Package bench times repeated steps of a turtle population.
//
// A Harness owns the population and its configuration for the whole run.
// Initialization happens in New and is never timed; Run times each driver
// step on its own and sums the results.
package bench

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/nvandessel/turgles/internal/config"
	"github.com/nvandessel/turgles/internal/constants"
	"github.com/nvandessel/turgles/internal/logging"
	"github.com/nvandessel/turgles/internal/turtle"
	"github.com/nvandessel/turgles/internal/walk"
)

// initStreamID is the stream used to scatter turtles. Chunk streams use
// ids from zero upward, so the top id never collides with them.
const initStreamID = math.MaxUint64

// Result is the timing outcome of a run.
type Result struct {
	// Steps is the number of timed steps.
	Steps int

	// Total is the summed duration of all steps.
	Total time.Duration

	// PerStep holds the duration of each step, in order.
	PerStep []time.Duration
}

// Mean returns the average step duration, or zero for an empty run.
func (r Result) Mean() time.Duration {
	if r.Steps == 0 {
		return 0
	}
	return r.Total / time.Duration(r.Steps)
}

// Harness runs a timed benchmark over one population.
type Harness struct {
	cfg     *config.Config
	pop     *turtle.Population
	driver  *walk.Driver
	logger  *slog.Logger
	tracer  *logging.StepTracer
	nowFunc func() time.Time // injectable clock for testing
}

// New validates cfg, scatters the population and prepares the driver.
// A nil logger discards operational output; a nil tracer traces nothing.
func New(cfg *config.Config, logger *slog.Logger, tracer *logging.StepTracer) (*Harness, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	params, err := cfg.WalkParams()
	if err != nil {
		return nil, fmt.Errorf("building walk parameters: %w", err)
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	pop := turtle.NewPopulation(cfg.Bench.Population)
	Scatter(pop, cfg.World.HalfExtent, cfg.Walk.Speed, walk.NewStream(cfg.Bench.Seed, initStreamID))

	driver := walk.NewDriver(pop, params, walk.DriverConfig{
		Seed:      cfg.Bench.Seed,
		Workers:   cfg.Bench.Workers,
		ChunkSize: cfg.Bench.ChunkSize,
	})

	return &Harness{
		cfg:     cfg,
		pop:     pop,
		driver:  driver,
		logger:  logger,
		tracer:  tracer,
		nowFunc: time.Now,
	}, nil
}

// Scatter places every turtle at x, y in [0, 2*halfExtent) with a heading in
// [0, 360), unit scale, and the given speed. The direction cache is filled
// so it matches the heading before the first step.
func Scatter(pop *turtle.Population, halfExtent, speed float64, src walk.Source) {
	for i := 0; i < pop.Len(); i++ {
		v := pop.At(i)
		v.SetX(src.Float64() * 2 * halfExtent)
		v.SetY(src.Float64() * 2 * halfExtent)
		heading := src.Float64() * constants.FullTurn
		v.SetHeading(heading)
		sin, cos := math.Sincos(heading * math.Pi / constants.HalfTurn)
		v.SetDirection(cos, sin)
		v.SetScale(constants.DefaultTurtleScale, constants.DefaultTurtleScale)
		v.SetSpeed(speed)
	}
}

// Population returns the population owned by the harness.
func (h *Harness) Population() *turtle.Population {
	return h.pop
}

// Run executes the configured number of steps, timing each one.
func (h *Harness) Run() Result {
	steps := h.cfg.Bench.Steps
	h.logger.Info("starting benchmark",
		"population", h.pop.Len(),
		"steps", steps,
		"noise", h.cfg.Walk.Noise,
		"boundary", h.cfg.Walk.Boundary,
		"workers", h.cfg.Bench.Workers,
		"chunks", h.driver.Chunks(),
		"seed", h.cfg.Bench.Seed,
	)

	result := Result{Steps: steps, PerStep: make([]time.Duration, steps)}
	for i := 0; i < steps; i++ {
		start := h.nowFunc()
		h.driver.Step()
		elapsed := h.nowFunc().Sub(start)

		result.PerStep[i] = elapsed
		result.Total += elapsed

		if h.tracer.Enabled() {
			h.tracer.Log(map[string]any{
				"step":       i,
				"elapsed_ns": elapsed.Nanoseconds(),
			})
		}
	}

	h.logger.Info("benchmark complete",
		"total", result.Total,
		"mean_step", result.Mean(),
	)

	return result
}
