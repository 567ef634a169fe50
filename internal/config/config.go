package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Pavel-chemist/floating-objects/internal/canvas"
	"github.com/Pavel-chemist/floating-objects/internal/world"
)

const (
	DefaultWidth      = 512
	DefaultHeight     = 512
	DefaultTickMs     = 33
	DefaultBackground = "black"
	DefaultBodies     = 6
	DefaultTicks      = 300
	DefaultFrameEvery = 3

	// BackgroundNoise selects the perlin background instead of a palette
	// color.
	BackgroundNoise = "noise"
)

var (
	ErrInvalidSize       = errors.New("config: width and height must be positive")
	ErrInvalidTick       = errors.New("config: tick period must be positive")
	ErrUnknownBackground = errors.New("config: unknown background")
	ErrInvalidRanges     = errors.New("config: invalid random body ranges")
)

type Config struct {
	Width         int          `yaml:"width"`
	Height        int          `yaml:"height"`
	TickMs        int          `yaml:"tick_ms"`
	Background    string       `yaml:"background"`
	Seed          int64        `yaml:"seed"`
	InitialBodies int          `yaml:"initial_bodies"`
	Ticks         int          `yaml:"ticks"`
	FrameEvery    int          `yaml:"frame_every"`
	Ranges        world.Ranges `yaml:"ranges"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		TickMs:        DefaultTickMs,
		Background:    DefaultBackground,
		InitialBodies: DefaultBodies,
		Ticks:         DefaultTicks,
		FrameEvery:    DefaultFrameEvery,
		Ranges:        world.DefaultRanges(),
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	if c.TickMs <= 0 {
		return fmt.Errorf("%w: %d ms", ErrInvalidTick, c.TickMs)
	}
	if c.Background != BackgroundNoise {
		if _, err := canvas.Named(c.Background, 1, 1); err != nil {
			return fmt.Errorf("%w: %q", ErrUnknownBackground, c.Background)
		}
	}
	r := c.Ranges
	if r.MinRadius <= 0 || r.MaxRadius < r.MinRadius || r.MaxBorder < r.MinBorder || r.MinBorder < 0 || r.MaxSpeed < 0 {
		return fmt.Errorf("%w: %+v", ErrInvalidRanges, r)
	}
	return nil
}

func (c *Config) TickPeriod() time.Duration {
	return time.Duration(c.TickMs) * time.Millisecond
}

// BackgroundBuffer builds the configured background for a world of the
// configured size.
func (c *Config) BackgroundBuffer() ([]byte, error) {
	if c.Background == BackgroundNoise {
		return canvas.Noise(c.Width, c.Height, canvas.DefaultNoise(c.Seed)), nil
	}
	return canvas.Named(c.Background, c.Width, c.Height)
}

// NewWorld builds a world from the configuration with the configured
// background applied.
func (c *Config) NewWorld(opts ...world.Option) (*world.World, error) {
	bg, err := c.BackgroundBuffer()
	if err != nil {
		return nil, err
	}
	opts = append([]world.Option{world.WithSeed(c.Seed), world.WithRanges(c.Ranges)}, opts...)
	w := world.New(c.Width, c.Height, opts...)
	w.ReplaceBackground(bg)
	return w, nil
}
