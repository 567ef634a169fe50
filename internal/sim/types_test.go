package sim

import (
	"testing"

	"github.com/Pavel-chemist/floating-objects/internal/body"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Ticks <= 0 {
		t.Error("DefaultConfig has invalid Ticks")
	}
	if err := validateConfig(cfg); err != nil {
		t.Errorf("DefaultConfig does not validate: %v", err)
	}
}

func TestObserverFunc(t *testing.T) {
	called := 0
	var o Observer = ObserverFunc(func(bodies []body.Body, tick int) { called = tick })
	o.OnStep(nil, 7)
	if called != 7 {
		t.Errorf("expected tick 7, got %d", called)
	}
}
