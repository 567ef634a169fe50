package body

import (
	"math"

	"github.com/Pavel-chemist/floating-objects/internal/canvas"
)

// Paint rasterizes the body onto c. The fill is blended into the border
// across one pixel inside, and the border is blended into whatever c
// already holds across one pixel outside, so the result depends on what
// was painted before.
func (b Body) Paint(c *canvas.Canvas) {
	w, h := float64(c.Width), float64(c.Height)
	if b.X < -b.Radius || b.X >= w+b.Radius || b.Y < -b.Radius || b.Y >= h+b.Radius {
		return
	}

	lx, ly := 0, 0
	if b.X > b.Radius {
		lx = int(b.X - b.Radius)
	}
	if b.Y > b.Radius {
		ly = int(b.Y - b.Radius)
	}
	hx := int(b.X + b.Radius + 2)
	hy := int(b.Y + b.Radius + 2)

	inner := b.Radius - b.border

	for j := ly; j < hy; j++ {
		for i := lx; i < hx; i++ {
			if !c.InBounds(i, j) {
				continue
			}
			dx := b.X - float64(i)
			dy := b.Y - float64(j)
			d := math.Sqrt(dx*dx + dy*dy)

			switch {
			case d <= inner:
				c.Set(i, j, b.Fill)
			case d <= inner+1:
				c.Set(i, j, blend(b.Fill, b.BorderColor, d-inner))
			case d <= b.Radius:
				c.Set(i, j, b.BorderColor)
			case d <= b.Radius+1:
				under, _ := c.At(i, j)
				c.Set(i, j, blend(b.BorderColor, under, d-b.Radius))
			}
		}
	}
}

// blend returns from*(1-t) + to*t per channel, truncated.
func blend(from, to canvas.RGB, t float64) canvas.RGB {
	return canvas.RGB{
		R: lerp(from.R, to.R, t),
		G: lerp(from.G, to.G, t),
		B: lerp(from.B, to.B, t),
	}
}

func lerp(a, b uint8, t float64) uint8 {
	v := float64(a)*(1-t) + float64(b)*t
	if v >= 255 {
		return 255
	}
	if v <= 0 {
		return 0
	}
	return uint8(v)
}
