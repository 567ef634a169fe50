package metrics

import "github.com/Pavel-chemist/floating-objects/internal/body"

type KineticEnergy struct {
	name  string
	value float64
}

func NewKineticEnergy() *KineticEnergy {
	return &KineticEnergy{name: "energy"}
}

func (e *KineticEnergy) Name() string { return e.name }

func (e *KineticEnergy) Observe(bodies []body.Body, tick int) {
	total := 0.0
	for _, b := range bodies {
		total += b.KineticEnergy()
	}
	e.value = total
}

func (e *KineticEnergy) Value() float64 { return e.value }
func (e *KineticEnergy) Reset()         { e.value = 0 }

type BodyCount struct {
	name  string
	count int
}

func NewBodyCount() *BodyCount {
	return &BodyCount{name: "bodies"}
}

func (c *BodyCount) Name() string { return c.name }

func (c *BodyCount) Observe(bodies []body.Body, tick int) {
	c.count = len(bodies)
}

func (c *BodyCount) Value() float64 { return float64(c.count) }
func (c *BodyCount) Reset()         { c.count = 0 }
