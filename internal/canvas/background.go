package canvas

import (
	"fmt"
	"math"
	"sort"

	"github.com/aquilax/go-perlin"
)

// Grey levels of the stock background palette.
const (
	LevelBlack     uint8 = 0
	LevelGrey      uint8 = 127
	LevelLightGrey uint8 = 191
	LevelWhite     uint8 = 255
)

var palette = map[string]uint8{
	"black":      LevelBlack,
	"grey":       LevelGrey,
	"light_grey": LevelLightGrey,
	"white":      LevelWhite,
}

// Solid returns a w*h background buffer with every sample set to level.
func Solid(w, h int, level uint8) []byte {
	data := make([]byte, 3*w*h)
	if level == 0 {
		return data
	}
	for i := range data {
		data[i] = level
	}
	return data
}

// Named resolves a palette name to a solid background buffer.
func Named(name string, w, h int) ([]byte, error) {
	level, ok := palette[name]
	if !ok {
		return nil, fmt.Errorf("unknown background: %s", name)
	}
	return Solid(w, h, level), nil
}

func PaletteNames() []string {
	names := make([]string, 0, len(palette))
	for name := range palette {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NoiseParams controls the perlin background.
type NoiseParams struct {
	Seed     int64
	Base     float64 // mean grey level
	Contrast float64 // grey levels per unit of noise
	Scale    float64 // pixels per noise period
}

func DefaultNoise(seed int64) NoiseParams {
	return NoiseParams{Seed: seed, Base: 96, Contrast: 64, Scale: 64}
}

// Noise returns a grey perlin-noise background buffer of size w*h.
func Noise(w, h int, p NoiseParams) []byte {
	if p.Scale <= 0 {
		p.Scale = 64
	}
	gen := perlin.NewPerlin(2, 2, 3, p.Seed)
	data := make([]byte, 3*w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := gen.Noise2D(float64(x)/p.Scale, float64(y)/p.Scale)
			v := uint8(math.Max(0, math.Min(255, p.Base+p.Contrast*n)))
			i := 3 * (w*y + x)
			data[i], data[i+1], data[i+2] = v, v, v
		}
	}
	return data
}
