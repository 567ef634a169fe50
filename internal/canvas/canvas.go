package canvas

import (
	"image"
)

// RGB is a single 8-bit color sample triple.
type RGB struct {
	R, G, B uint8
}

type Canvas struct {
	Width, Height int
	Data          []byte
}

// New returns a zero-filled (black) canvas.
func New(w, h int) *Canvas {
	return &Canvas{
		Width:  w,
		Height: h,
		Data:   make([]byte, 3*w*h),
	}
}

func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < c.Width && y >= 0 && y < c.Height
}

// Index returns the offset of the red sample of pixel (x, y).
func (c *Canvas) Index(x, y int) int {
	return 3 * (c.Width*y + x)
}

// Set overwrites the pixel at (x, y). Out-of-range coordinates are ignored.
func (c *Canvas) Set(x, y int, col RGB) {
	if !c.InBounds(x, y) {
		return
	}
	i := c.Index(x, y)
	c.Data[i] = col.R
	c.Data[i+1] = col.G
	c.Data[i+2] = col.B
}

func (c *Canvas) At(x, y int) (RGB, bool) {
	if !c.InBounds(x, y) {
		return RGB{}, false
	}
	i := c.Index(x, y)
	return RGB{c.Data[i], c.Data[i+1], c.Data[i+2]}, true
}

// Clone returns a deep copy that shares no memory with c.
func (c *Canvas) Clone() *Canvas {
	data := make([]byte, len(c.Data))
	copy(data, c.Data)
	return &Canvas{Width: c.Width, Height: c.Height, Data: data}
}

// Image converts the buffer into an opaque *image.RGBA for encoders.
func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for p, q := 0, 0; p < len(c.Data); p, q = p+3, q+4 {
		img.Pix[q] = c.Data[p]
		img.Pix[q+1] = c.Data[p+1]
		img.Pix[q+2] = c.Data[p+2]
		img.Pix[q+3] = 0xff
	}
	return img
}
