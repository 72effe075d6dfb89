package walk

import (
	"math"
	"testing"

	"github.com/nvandessel/turgles/internal/turtle"
)

// straight is a uniform model fed r=0.5, which never turns.
var straight = &seqSource{vals: []float64{0.5}}

func newTurtle(x, y, heading float64) turtle.View {
	v := turtle.NewPopulation(1).At(0)
	v.SetX(x)
	v.SetY(y)
	v.SetHeading(heading)
	return v
}

func TestStepSingleTurtleScenario(t *testing.T) {
	v := newTurtle(0, 0, 0)
	p := Params{
		Magnitude:  1.667,
		HalfExtent: 400,
		Boundary:   Bounce,
		Noise:      Uniform{MaxDeviation: 15},
	}

	Step(v, p, straight)

	if v.Heading() != 0 {
		t.Errorf("heading = %v, want 0", v.Heading())
	}
	if v.X() != 1.667 {
		t.Errorf("x = %v, want 1.667", v.X())
	}
	if v.Y() != 0 {
		t.Errorf("y = %v, want 0", v.Y())
	}
	if v.Cos() != 1 || v.Sin() != 0 {
		t.Errorf("direction = (%v, %v), want (1, 0)", v.Cos(), v.Sin())
	}
}

func TestStepBounceReversesOutsideTurtles(t *testing.T) {
	tests := []struct {
		name    string
		x, y    float64
		heading float64
		want    float64
	}{
		{"east edge heading 0", 410, 0, 0, 180},
		{"east edge heading 90", 410, 0, 90, 270},
		{"east edge heading 270", 410, 0, 270, 90},
		{"east edge heading 350", 410, 0, 350, 170},
		{"west edge", -410, 0, 45, 225},
		{"north edge", 0, 401, 10, 190},
		{"unnormalized heading", 410, 0, 540, 0},
		{"inside keeps heading", 399, -399, 30, 30},
		{"on the edge keeps heading", 400, 400, 30, 30},
	}

	p := Params{Magnitude: 1, HalfExtent: 400, Boundary: Bounce, Noise: Uniform{MaxDeviation: 15}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newTurtle(tt.x, tt.y, tt.heading)
			Step(v, p, straight)
			if v.Heading() != tt.want {
				t.Errorf("heading = %v, want %v", v.Heading(), tt.want)
			}
		})
	}
}

func TestStepBounceDoesNotWrap(t *testing.T) {
	v := newTurtle(410, 0, 0)
	Step(v, Params{Magnitude: 1.667, HalfExtent: 400, Boundary: Bounce, Noise: Uniform{}}, straight)
	if math.Abs(v.X()-408.333) > 1e-9 {
		t.Errorf("x = %v, want 408.333", v.X())
	}
}

func TestStepWrap(t *testing.T) {
	tests := []struct {
		name    string
		x, y    float64
		heading float64
		wantX   float64
		wantY   float64
	}{
		{"east edge", 409, 0, 0, -390, 0},
		{"west edge", -409, 0, 180, 390, 0},
		{"north edge", 0, 409, 90, 0, -390},
		{"inside", 0, 0, 0, 1, 0},
	}

	p := Params{Magnitude: 1, HalfExtent: 400, Boundary: Wrap, Noise: Uniform{MaxDeviation: 15}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newTurtle(tt.x, tt.y, tt.heading)
			Step(v, p, straight)
			if math.Abs(v.X()-tt.wantX) > 1e-9 {
				t.Errorf("x = %v, want %v", v.X(), tt.wantX)
			}
			if math.Abs(v.Y()-tt.wantY) > 1e-9 {
				t.Errorf("y = %v, want %v", v.Y(), tt.wantY)
			}
			if v.Heading() != tt.heading {
				t.Errorf("wrap changed heading to %v, want %v", v.Heading(), tt.heading)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	if got := wrap(410, 400); got != -390 {
		t.Errorf("wrap(410, 400) = %v, want -390", got)
	}
	if got := wrap(-410, 400); got != 390 {
		t.Errorf("wrap(-410, 400) = %v, want 390", got)
	}
	if got := wrap(400, 400); got != 400 {
		t.Errorf("wrap(400, 400) = %v, want 400", got)
	}
}

func TestNormalizeHeading(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{359.5, 359.5},
		{360, 0},
		{370, 10},
		{720, 0},
		{-90, 270},
		{-360, 0},
		{-1e-15, 0},
	}

	for _, tt := range tests {
		if got := normalizeHeading(tt.in); got != tt.want {
			t.Errorf("normalizeHeading(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestStepInvariants(t *testing.T) {
	noises := map[string]TurnNoise{
		"uniform":     Uniform{MaxDeviation: 15},
		"exponential": Exponential{Rate: 1.0 / 15},
	}
	for _, boundary := range []BoundaryPolicy{Bounce, Wrap} {
		for name, noise := range noises {
			t.Run(boundary.String()+"/"+name, func(t *testing.T) {
				p := Params{Magnitude: 50.0 / 30.0, HalfExtent: 400, Boundary: boundary, Noise: noise}
				src := NewStream(3, 0)
				v := newTurtle(0, 0, 0)
				for step := 0; step < 5000; step++ {
					Step(v, p, src)

					h := v.Heading()
					if h < 0 || h >= 360 {
						t.Fatalf("step %d: heading %v outside [0, 360)", step, h)
					}
					theta := h * math.Pi / 180
					if math.Abs(v.Cos()-math.Cos(theta)) > 1e-12 || math.Abs(v.Sin()-math.Sin(theta)) > 1e-12 {
						t.Fatalf("step %d: stale direction (%v, %v) for heading %v", step, v.Cos(), v.Sin(), h)
					}
					if boundary == Wrap && (math.Abs(v.X()) > 400 || math.Abs(v.Y()) > 400) {
						t.Fatalf("step %d: wrapped turtle outside world at (%v, %v)", step, v.X(), v.Y())
					}
				}
			})
		}
	}
}

func TestStepPropagatesNonFiniteParams(t *testing.T) {
	v := newTurtle(0, 0, 0)
	p := Params{Magnitude: math.NaN(), HalfExtent: 400, Boundary: Wrap, Noise: Uniform{MaxDeviation: 15}}
	Step(v, p, straight)
	if !math.IsNaN(v.X()) {
		t.Errorf("x = %v, want NaN", v.X())
	}
	if v.Heading() != 0 {
		t.Errorf("heading = %v, want 0", v.Heading())
	}
}

func TestBoundaryPolicyValid(t *testing.T) {
	for _, b := range []BoundaryPolicy{Bounce, Wrap} {
		if !b.Valid() {
			t.Errorf("%q.Valid() = false, want true", b)
		}
	}
	if BoundaryPolicy("both").Valid() {
		t.Error(`"both".Valid() = true, want false`)
	}
}
