package sim

import (
	"errors"

	"github.com/Pavel-chemist/floating-objects/internal/body"
	"github.com/Pavel-chemist/floating-objects/internal/canvas"
)

var ErrInvalidTicks = errors.New("sim: tick count must be positive")

type Metric interface {
	Name() string
	Observe(bodies []body.Body, tick int)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(bodies []body.Body, tick int)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(bodies []body.Body, tick int)

func (f ObserverFunc) OnStep(bodies []body.Body, tick int) { f(bodies, tick) }

type Config struct {
	Ticks       int
	RecordEvery int // sample metric series every n ticks; 0 means every tick
	FrameEvery  int // keep a rendered frame every n ticks; 0 keeps none
}

func DefaultConfig() Config {
	return Config{Ticks: 300, RecordEvery: 1}
}

type Result struct {
	Ticks      int
	Collisions int
	Times      []int
	Series     map[string][]float64
	Metrics    map[string]float64
	Frames     []*canvas.Canvas
}
