// Package body implements the simulated circle: its one-tick kinematics
// with wall reflection, the pairwise velocity-transfer collision response,
// and antialiased rasterization onto a canvas.
//
// A Body is a plain value. The world hands each body a snapshot of its
// siblings when resolving collisions, so a Body never holds references to
// other bodies.
package body

import (
	"math"

	"github.com/Pavel-chemist/floating-objects/internal/canvas"
)

type Body struct {
	Name   string
	X, Y   float64
	VX, VY float64
	Radius float64
	Mass   float64

	Fill        canvas.RGB
	BorderColor canvas.RGB

	border float64
}

// Params describes a body to construct.
type Params struct {
	Name        string
	X, Y        float64
	VX, VY      float64
	Radius      float64
	Border      float64
	Mass        float64
	Fill        canvas.RGB
	BorderColor canvas.RGB
}

// New builds a body. A border thicker than the radius is reduced to the
// radius; this is the only place the border is checked.
func New(p Params) Body {
	border := p.Border
	if border > p.Radius {
		border = p.Radius
	}
	return Body{
		Name:        p.Name,
		X:           p.X,
		Y:           p.Y,
		VX:          p.VX,
		VY:          p.VY,
		Radius:      p.Radius,
		Mass:        p.Mass,
		Fill:        p.Fill,
		BorderColor: p.BorderColor,
		border:      border,
	}
}

func (b Body) Border() float64 { return b.border }

func (b Body) Speed() float64 {
	return math.Sqrt(b.VX*b.VX + b.VY*b.VY)
}

// Momentum returns the scalar speed*mass used by the momentum readout.
func (b Body) Momentum() float64 {
	return b.Speed() * b.Mass
}

func (b Body) KineticEnergy() float64 {
	return 0.5 * b.Mass * (b.VX*b.VX + b.VY*b.VY)
}

// Contains reports whether (x, y) lies strictly inside the circle.
func (b Body) Contains(x, y float64) bool {
	dx, dy := x-b.X, y-b.Y
	return dx*dx+dy*dy < b.Radius*b.Radius
}
