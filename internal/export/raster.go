package export

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"io"

	"github.com/Pavel-chemist/floating-objects/internal/canvas"
)

// WritePNG encodes a single frame.
func WritePNG(w io.Writer, c *canvas.Canvas) error {
	return png.Encode(w, c.Image())
}

// WriteGIF encodes frames as a looping animation, each shown for delay
// hundredths of a second.
func WriteGIF(w io.Writer, frames []*canvas.Canvas, delay int) error {
	if len(frames) == 0 {
		return fmt.Errorf("no frames to encode")
	}

	anim := gif.GIF{LoopCount: 0}
	for _, frame := range frames {
		src := frame.Image()
		img := image.NewPaletted(src.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(img, src.Bounds(), src, image.Point{})
		anim.Image = append(anim.Image, img)
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, &anim)
}

// GIFDelay converts a tick period in milliseconds and a frame stride into a
// GIF frame delay, never less than one hundredth of a second.
func GIFDelay(tickMs, frameEvery int) int {
	d := tickMs * frameEvery / 10
	if d < 1 {
		return 1
	}
	return d
}
