package config

import "sort"

var Presets = map[string]*Config{
	"classic": {
		Width: 512, Height: 512, TickMs: 33, Background: "black",
		InitialBodies: 6, Ticks: 300, FrameEvery: 3,
		Ranges: rangesOf(3, 10, 40, 1, 6),
	},
	"smooth": {
		Width: 512, Height: 512, TickMs: 16, Background: "light_grey",
		InitialBodies: 6, Ticks: 600, FrameEvery: 6,
		Ranges: rangesOf(3, 10, 40, 1, 6),
	},
	"crowded": {
		Width: 512, Height: 512, TickMs: 33, Background: "grey",
		InitialBodies: 30, Ticks: 300, FrameEvery: 3,
		Ranges: rangesOf(2, 6, 18, 1, 4),
	},
	"pebbles": {
		Width: 320, Height: 200, TickMs: 33, Background: BackgroundNoise,
		InitialBodies: 12, Ticks: 300, FrameEvery: 3,
		Ranges: rangesOf(4, 4, 10, 1, 2),
	},
	"wide": {
		Width: 1560, Height: 940, TickMs: 33, Background: "white",
		InitialBodies: 20, Ticks: 300, FrameEvery: 5,
		Ranges: rangesOf(3, 10, 60, 1, 8),
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
