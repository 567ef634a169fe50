package body

// Advance moves the body by one tick of its velocity inside the box
// [xMin, xMax] x [yMin, yMax]. An axis whose next position would touch a
// wall is reflected instead of moved, and its velocity component flips.
// Each axis is handled on its own with its pre-step velocity.
func (b *Body) Advance(xMin, xMax, yMin, yMax float64) {
	b.X, b.VX = reflect(b.X, b.VX, b.Radius, xMin, xMax)
	b.Y, b.VY = reflect(b.Y, b.VY, b.Radius, yMin, yMax)
}

// reflect is not an exact mirror about the tangent point: the low wall
// formula ignores lo entirely. Observed motion depends on it as written.
func reflect(pos, vel, r, lo, hi float64) (float64, float64) {
	next := pos + vel
	switch {
	case next <= lo+r:
		return 2*r - pos - vel, -vel
	case next >= hi-r:
		return 2*hi - 2*r - pos - vel, -vel
	default:
		return next, vel
	}
}

// AccelerateTo snaps the body to (x, y) and sets its velocity to the
// displacement it took to get there, so a dragged body keeps moving once
// released.
func (b *Body) AccelerateTo(x, y float64) {
	b.VX = x - b.X
	b.VY = y - b.Y
	b.X = x
	b.Y = y
}
