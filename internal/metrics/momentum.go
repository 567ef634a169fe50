package metrics

import (
	"math"

	"github.com/Pavel-chemist/floating-objects/internal/body"
)

// TotalMomentum tracks the sum of speed*mass over all bodies as of the
// last observed tick.
type TotalMomentum struct {
	name  string
	value float64
}

func NewTotalMomentum() *TotalMomentum {
	return &TotalMomentum{name: "momentum"}
}

func (m *TotalMomentum) Name() string { return m.name }

func (m *TotalMomentum) Observe(bodies []body.Body, tick int) {
	m.value = Momentum(bodies)
}

func (m *TotalMomentum) Value() float64 { return m.value }
func (m *TotalMomentum) Reset()         { m.value = 0 }

// Momentum sums the scalar momentum of bodies.
func Momentum(bodies []body.Body) float64 {
	total := 0.0
	for _, b := range bodies {
		total += b.Momentum()
	}
	return total
}

type MaxSpeed struct {
	name string
	max  float64
}

func NewMaxSpeed() *MaxSpeed {
	return &MaxSpeed{name: "max_speed"}
}

func (m *MaxSpeed) Name() string { return m.name }

func (m *MaxSpeed) Observe(bodies []body.Body, tick int) {
	for _, b := range bodies {
		m.max = math.Max(m.max, b.Speed())
	}
}

func (m *MaxSpeed) Value() float64 { return m.max }
func (m *MaxSpeed) Reset()         { m.max = 0 }
