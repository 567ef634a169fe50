package sim

import (
	"context"
	"fmt"

	"github.com/Pavel-chemist/floating-objects/internal/world"
)

// Simulator drives a world tick by tick without a display, feeding every
// tick's bodies to its metrics and observers.
type Simulator struct {
	world     *world.World
	metrics   []Metric
	observers []Observer
}

func New(w *world.World) *Simulator {
	return &Simulator{
		world:     w,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) World() *world.World    { return s.world }
func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	every := cfg.RecordEvery
	if every == 0 {
		every = 1
	}

	result := &Result{
		Times:   make([]int, 0, cfg.Ticks/every+1),
		Series:  make(map[string][]float64),
		Metrics: make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	for i := 0; i < cfg.Ticks; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		result.Collisions += s.world.Step()
		result.Ticks++
		tick := s.world.Tick()

		bodies := s.world.Bodies()
		for _, m := range s.metrics {
			m.Observe(bodies, tick)
		}
		for _, obs := range s.observers {
			obs.OnStep(bodies, tick)
		}

		if result.Ticks%every == 0 {
			result.Times = append(result.Times, tick)
			for _, m := range s.metrics {
				result.Series[m.Name()] = append(result.Series[m.Name()], m.Value())
			}
		}
		if cfg.FrameEvery > 0 && result.Ticks%cfg.FrameEvery == 0 {
			result.Frames = append(result.Frames, s.world.Render())
		}
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func validateConfig(cfg Config) error {
	if cfg.Ticks <= 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidTicks, cfg.Ticks)
	}
	if cfg.RecordEvery < 0 {
		return fmt.Errorf("record interval must not be negative, got %d", cfg.RecordEvery)
	}
	if cfg.FrameEvery < 0 {
		return fmt.Errorf("frame interval must not be negative, got %d", cfg.FrameEvery)
	}
	return nil
}
