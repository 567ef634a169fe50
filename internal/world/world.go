// Package world holds the scene: an ordered set of bodies over a
// background buffer. It drives one simulation tick at a time, handles
// pointer-driven selection, dragging, insertion and removal, and composes
// the frame shown to the user.
//
// A World is not safe for concurrent use. Callers serialize ticks and
// pointer events on a single goroutine.
package world

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/Pavel-chemist/floating-objects/internal/body"
	"github.com/Pavel-chemist/floating-objects/internal/canvas"
)

type World struct {
	width, height int

	background []byte
	bodies     []body.Body

	selected     int
	hasSelection bool

	tick   int
	nextID int

	rng    *rand.Rand
	ranges Ranges
	logger *log.Logger
}

type Option func(*World)

func WithLogger(l *log.Logger) Option {
	return func(w *World) { w.logger = l }
}

func WithRand(r *rand.Rand) Option {
	return func(w *World) { w.rng = r }
}

func WithSeed(seed int64) Option {
	return func(w *World) { w.rng = rand.New(rand.NewSource(seed)) }
}

func WithRanges(r Ranges) Option {
	return func(w *World) { w.ranges = r }
}

// New creates an empty world of the given pixel size over a black
// background.
func New(width, height int, opts ...Option) *World {
	w := &World{
		width:      width,
		height:     height,
		background: canvas.Solid(width, height, canvas.LevelBlack),
		bodies:     make([]body.Body, 0),
		ranges:     DefaultRanges(),
		logger:     log.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.rng == nil {
		w.rng = rand.New(rand.NewSource(1))
	}
	return w
}

func (w *World) Size() (int, int) { return w.width, w.height }
func (w *World) Len() int         { return len(w.bodies) }
func (w *World) Tick() int        { return w.tick }

// Bodies returns a copy of the bodies in paint order.
func (w *World) Bodies() []body.Body {
	out := make([]body.Body, len(w.bodies))
	copy(out, w.bodies)
	return out
}

// Step advances the scene by one tick. Every body is first moved against
// the world bounds; collisions are then resolved for every body against a
// single snapshot of the moved bodies, so no body sees a sibling's
// velocity from this tick. It returns the number of overlapping pairs.
func (w *World) Step() int {
	xMax, yMax := float64(w.width), float64(w.height)
	for i := range w.bodies {
		w.bodies[i].Advance(0, xMax, 0, yMax)
	}

	snapshot := w.Bodies()
	hits := 0
	for i := range w.bodies {
		hits += w.bodies[i].ResolveCollisions(snapshot, i)
	}

	w.tick++
	return hits / 2
}

// AddBody appends b unless it overlaps an existing body. Adding a body
// clears the current selection.
func (w *World) AddBody(b body.Body) bool {
	if body.CheckOnTop(b, w.bodies, -1) {
		w.logger.Printf("world: rejected %s at (%.1f, %.1f): overlaps an existing body", b.Name, b.X, b.Y)
		return false
	}
	w.bodies = append(w.bodies, b)
	w.hasSelection = false
	w.logger.Printf("world: added %s at (%.1f, %.1f) r=%.1f", b.Name, b.X, b.Y, b.Radius)
	return true
}

// Clear removes every body.
func (w *World) Clear() {
	w.bodies = w.bodies[:0]
	w.hasSelection = false
	w.logger.Printf("world: cleared")
}

// ReplaceBackground swaps in buf as the new background. buf must have the
// same length as the current background; anything else is a programming
// error and panics. The world takes ownership of buf.
func (w *World) ReplaceBackground(buf []byte) {
	if len(buf) != len(w.background) {
		panic(fmt.Sprintf("world: background size mismatch: got %d bytes, want %d", len(buf), len(w.background)))
	}
	w.background = buf
}

// Background returns a copy of the background buffer.
func (w *World) Background() []byte {
	out := make([]byte, len(w.background))
	copy(out, w.background)
	return out
}

// Render composes a fresh frame: the background with every body painted
// over it in order. The returned canvas is owned by the caller.
func (w *World) Render() *canvas.Canvas {
	c := canvas.New(w.width, w.height)
	copy(c.Data, w.background)
	for _, b := range w.bodies {
		b.Paint(c)
	}
	return c
}
