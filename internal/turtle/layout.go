// Package turtle defines how turtle state is packed into a flat population buffer.
//
// Each turtle occupies a fixed Stride of float64 values:
//
//	0 x         1 y
//	2 scale x   3 scale y
//	4 heading   5 speed
//	6 cos       7 sin
//
// x and y are adjacent and heading sits at a fixed offset from x. The cos and
// sin slots cache the direction of the current heading.
package turtle

import "fmt"

// Field offsets within a turtle slot.
const (
	OffsetX       = 0
	OffsetY       = 1
	OffsetScaleX  = 2
	OffsetScaleY  = 3
	OffsetHeading = 4
	OffsetSpeed   = 5
	OffsetCos     = 6
	OffsetSin     = 7

	// Stride is the number of values per turtle.
	Stride = 8
)

// Population owns a contiguous buffer holding a fixed number of turtles.
// Turtles are never allocated individually; a View addresses one slot.
type Population struct {
	data []float64
	n    int
}

// NewPopulation allocates a zeroed buffer for n turtles.
func NewPopulation(n int) *Population {
	if n < 0 {
		panic(fmt.Sprintf("turtle: negative population size %d", n))
	}
	return &Population{data: make([]float64, n*Stride), n: n}
}

// FromBuffer wraps an existing buffer. The buffer length must be a multiple
// of Stride. The population takes ownership; callers must not retain data.
func FromBuffer(data []float64) *Population {
	if len(data)%Stride != 0 {
		panic(fmt.Sprintf("turtle: buffer length %d is not a multiple of stride %d", len(data), Stride))
	}
	return &Population{data: data, n: len(data) / Stride}
}

// Len returns the number of turtles.
func (p *Population) Len() int { return p.n }

// Data exposes the raw buffer, for bulk copies and comparisons.
func (p *Population) Data() []float64 { return p.data }

// At returns a view of turtle i. An out-of-range index is a programming
// error and panics.
func (p *Population) At(i int) View {
	if i < 0 || i >= p.n {
		panic(fmt.Sprintf("turtle: index %d out of range [0,%d)", i, p.n))
	}
	base := i * Stride
	// The three-index slice caps the view so it cannot reach a neighbour.
	return View{s: p.data[base : base+Stride : base+Stride]}
}

// Clone returns a deep copy of the population.
func (p *Population) Clone() *Population {
	data := make([]float64, len(p.data))
	copy(data, p.data)
	return &Population{data: data, n: p.n}
}

// View is a mutable window onto one turtle's slot.
type View struct {
	s []float64
}

func (v View) X() float64 { return v.s[OffsetX] }
func (v View) Y() float64 { return v.s[OffsetY] }
func (v View) Heading() float64 { return v.s[OffsetHeading] }
func (v View) Cos() float64 { return v.s[OffsetCos] }
func (v View) Sin() float64 { return v.s[OffsetSin] }
func (v View) Speed() float64 { return v.s[OffsetSpeed] }

// Scale returns the x and y scale of the turtle.
func (v View) Scale() (float64, float64) { return v.s[OffsetScaleX], v.s[OffsetScaleY] }

func (v View) SetX(x float64) { v.s[OffsetX] = x }
func (v View) SetY(y float64) { v.s[OffsetY] = y }
func (v View) SetHeading(h float64) { v.s[OffsetHeading] = h }
func (v View) SetSpeed(s float64) { v.s[OffsetSpeed] = s }
func (v View) SetScale(sx, sy float64) { v.s[OffsetScaleX], v.s[OffsetScaleY] = sx, sy }
func (v View) SetDirection(cos, sin float64) { v.s[OffsetCos], v.s[OffsetSin] = cos, sin }

// Move translates the turtle by (dx, dy).
func (v View) Move(dx, dy float64) {
	v.s[OffsetX] += dx
	v.s[OffsetY] += dy
}
