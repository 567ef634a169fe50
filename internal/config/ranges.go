package config

import "github.com/Pavel-chemist/floating-objects/internal/world"

func rangesOf(speed, minR, maxR, minB, maxB float64) world.Ranges {
	return world.Ranges{
		MaxSpeed:  speed,
		MinRadius: minR,
		MaxRadius: maxR,
		MinBorder: minB,
		MaxBorder: maxB,
	}
}
