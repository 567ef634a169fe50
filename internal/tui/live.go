package tui

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/Pavel-chemist/floating-objects/internal/body"
	"github.com/Pavel-chemist/floating-objects/internal/metrics"
)

const (
	width       = 70
	height      = 20
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer prints a coarse character view of the scene while a
// headless run is in progress. It satisfies sim.Observer.
type LiveRenderer struct {
	out       io.Writer
	frameRate int
	lastFrame time.Time
	worldW    float64
	worldH    float64
	canvas    [][]rune
	trail     []struct{ x, y int }
}

func NewLiveRenderer(out io.Writer, worldW, worldH, frameRate int) *LiveRenderer {
	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
	}
	return &LiveRenderer{
		out:       out,
		frameRate: frameRate,
		worldW:    float64(worldW),
		worldH:    float64(worldH),
		canvas:    canvas,
		trail:     make([]struct{ x, y int }, 0, 40),
	}
}

func (r *LiveRenderer) OnStep(bodies []body.Body, tick int) {
	if r.frameRate > 0 {
		if time.Since(r.lastFrame) < time.Second/time.Duration(r.frameRate) {
			return
		}
	}
	r.lastFrame = time.Now()

	r.clear()
	r.draw(bodies)
	r.render(bodies, tick)
}

func (r *LiveRenderer) clear() {
	for y := range r.canvas {
		for x := range r.canvas[y] {
			r.canvas[y][x] = ' '
		}
	}
}

func (r *LiveRenderer) set(x, y int, c rune) {
	if x >= 0 && x < width && y >= 0 && y < height {
		r.canvas[y][x] = c
	}
}

func (r *LiveRenderer) cell(x, y float64) (int, int) {
	return int(x / r.worldW * width), int(y / r.worldH * height)
}

func (r *LiveRenderer) draw(bodies []body.Body) {
	for _, b := range bodies {
		steps := int(math.Max(12, b.Radius))
		for i := 0; i < steps; i++ {
			a := 2 * math.Pi * float64(i) / float64(steps)
			cx, cy := r.cell(b.X+b.Radius*math.Cos(a), b.Y+b.Radius*math.Sin(a))
			r.set(cx, cy, 'o')
		}
	}

	if len(bodies) == 0 {
		return
	}
	top := bodies[len(bodies)-1]
	tx, ty := r.cell(top.X, top.Y)
	r.trail = append(r.trail, struct{ x, y int }{tx, ty})
	if len(r.trail) > 40 {
		r.trail = r.trail[1:]
	}
	for _, pt := range r.trail {
		r.set(pt.x, pt.y, '.')
	}

	for _, b := range bodies {
		cx, cy := r.cell(b.X, b.Y)
		r.set(cx, cy, 'O')
	}
}

func (r *LiveRenderer) render(bodies []body.Body, tick int) {
	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(fmt.Sprintf("  tick %d  bodies %d\n", tick, len(bodies)))
	b.WriteString("  " + strings.Repeat("-", width) + "\n")

	for _, row := range r.canvas {
		b.WriteString("  ")
		b.WriteString(string(row))
		b.WriteString("\n")
	}

	b.WriteString("  " + strings.Repeat("-", width) + "\n")
	b.WriteString(fmt.Sprintf("  momentum %.2f\n", metrics.Momentum(bodies)))

	fmt.Fprint(r.out, b.String())
}

func (r *LiveRenderer) Start() { fmt.Fprint(r.out, hideCursor) }
func (r *LiveRenderer) Stop()  { fmt.Fprint(r.out, showCursor) }
