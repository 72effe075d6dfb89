package walk

import (
	"math/rand/v2"

	"github.com/nvandessel/turgles/internal/turtle"
	"golang.org/x/sync/errgroup"
)

// StepAll applies Step to every turtle once, in index order, drawing all
// turns from the single source src. It is the sequential reference driver.
func StepAll(pop *turtle.Population, p Params, src Source) {
	for i := 0; i < pop.Len(); i++ {
		Step(pop.At(i), p, src)
	}
}

// NewStream returns an independent PCG generator for the given seed and
// stream id.
func NewStream(seed, id uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, id))
}

// DriverConfig sizes a chunked Driver.
type DriverConfig struct {
	// Seed is shared by all chunk streams; each chunk uses its index as the
	// stream id.
	Seed uint64

	// Workers bounds the goroutines stepping chunks concurrently.
	// Values below 2 step chunks on the calling goroutine.
	Workers int

	// ChunkSize is the number of consecutive turtles per chunk.
	ChunkSize int
}

// Driver steps a population in fixed-size chunks. Every chunk owns its own
// generator, so no generator is shared between goroutines and the outcome
// is the same for any worker count.
type Driver struct {
	pop       *turtle.Population
	params    Params
	workers   int
	chunkSize int
	streams   []*rand.Rand
}

// NewDriver creates a chunked driver over pop.
func NewDriver(pop *turtle.Population, p Params, cfg DriverConfig) *Driver {
	chunkSize := cfg.ChunkSize
	if chunkSize < 1 {
		chunkSize = 1
	}
	chunks := (pop.Len() + chunkSize - 1) / chunkSize
	streams := make([]*rand.Rand, chunks)
	for c := range streams {
		streams[c] = NewStream(cfg.Seed, uint64(c))
	}
	return &Driver{
		pop:       pop,
		params:    p,
		workers:   cfg.Workers,
		chunkSize: chunkSize,
		streams:   streams,
	}
}

// Chunks returns the number of chunks, which is also the number of streams.
func (d *Driver) Chunks() int {
	return len(d.streams)
}

// Step advances every turtle by one step. It returns only after all chunks
// have finished, so consecutive calls never overlap.
func (d *Driver) Step() {
	if d.workers < 2 || len(d.streams) < 2 {
		for c := range d.streams {
			d.stepChunk(c)
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(d.workers)
	for c := range d.streams {
		g.Go(func() error {
			d.stepChunk(c)
			return nil
		})
	}
	// Chunk steps cannot fail; Wait is the step barrier.
	_ = g.Wait()
}

func (d *Driver) stepChunk(c int) {
	start := c * d.chunkSize
	end := min(start+d.chunkSize, d.pop.Len())
	src := d.streams[c]
	for i := start; i < end; i++ {
		Step(d.pop.At(i), d.params, src)
	}
}
