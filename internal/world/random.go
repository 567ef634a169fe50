package world

import (
	"fmt"

	"github.com/Pavel-chemist/floating-objects/internal/body"
	"github.com/Pavel-chemist/floating-objects/internal/canvas"
)

// Ranges bound the attributes of randomly created bodies. Velocity
// components are drawn from [-MaxSpeed, MaxSpeed).
type Ranges struct {
	MaxSpeed  float64 `yaml:"max_speed"`
	MinRadius float64 `yaml:"min_radius"`
	MaxRadius float64 `yaml:"max_radius"`
	MinBorder float64 `yaml:"min_border"`
	MaxBorder float64 `yaml:"max_border"`
}

func DefaultRanges() Ranges {
	return Ranges{
		MaxSpeed:  3,
		MinRadius: 10,
		MaxRadius: 40,
		MinBorder: 1,
		MaxBorder: 6,
	}
}

// RandomBody builds a body centred at (x, y) with random velocity, size and
// colors. Its mass is the square of its radius.
func (w *World) RandomBody(x, y float64) body.Body {
	r := w.ranges
	radius := between(w.rng.Float64(), r.MinRadius, r.MaxRadius)
	w.nextID++
	return body.New(body.Params{
		Name:        fmt.Sprintf("body-%d", w.nextID),
		X:           x,
		Y:           y,
		VX:          between(w.rng.Float64(), -r.MaxSpeed, r.MaxSpeed),
		VY:          between(w.rng.Float64(), -r.MaxSpeed, r.MaxSpeed),
		Radius:      radius,
		Border:      between(w.rng.Float64(), r.MinBorder, r.MaxBorder),
		Mass:        radius * radius,
		Fill:        w.randomColor(),
		BorderColor: w.randomColor(),
	})
}

// AddRandomBodyAt creates a random body at (x, y) and adds it through
// AddBody, so it is rejected when it would land on another body.
func (w *World) AddRandomBodyAt(x, y float64) bool {
	return w.AddBody(w.RandomBody(x, y))
}

func (w *World) randomColor() canvas.RGB {
	return canvas.RGB{
		R: uint8(w.rng.Intn(256)),
		G: uint8(w.rng.Intn(256)),
		B: uint8(w.rng.Intn(256)),
	}
}

func between(u, lo, hi float64) float64 {
	return lo + u*(hi-lo)
}

// Scatter tries to place n random bodies at random points of the world,
// giving up after a bounded number of attempts. It returns how many were
// placed.
func (w *World) Scatter(n int) int {
	placed := 0
	for attempt := 0; placed < n && attempt < 20*n; attempt++ {
		x := w.rng.Float64() * float64(w.width)
		y := w.rng.Float64() * float64(w.height)
		b := w.RandomBody(x, y)
		if b.X-b.Radius < 0 || b.X+b.Radius > float64(w.width) ||
			b.Y-b.Radius < 0 || b.Y+b.Radius > float64(w.height) {
			continue
		}
		if w.AddBody(b) {
			placed++
		}
	}
	return placed
}
