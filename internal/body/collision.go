package body

// Overlaps reports whether two circles intersect. Touching circles
// (distance exactly equal to the radius sum) do not overlap.
func Overlaps(a, b Body) bool {
	dx := b.X - a.X
	dy := b.Y - a.Y
	sum := a.Radius + b.Radius
	return dx*dx+dy*dy < sum*sum
}

// ResolveCollisions applies the velocity-transfer rule against every body
// in others that overlaps b, skipping index own. For each hit the other
// body's velocity relative to b, scaled by other.Mass/b.Mass, is added to
// b's velocity. others must be a snapshot taken before any body in the
// current tick was changed. It returns the number of overlaps found.
func (b *Body) ResolveCollisions(others []Body, own int) int {
	hits := 0
	for i, o := range others {
		if i == own || !Overlaps(*b, o) {
			continue
		}
		relX := o.VX - b.VX
		relY := o.VY - b.VY
		b.VX += relX * o.Mass / b.Mass
		b.VY += relY * o.Mass / b.Mass
		hits++
	}
	return hits
}

// CheckOnTop reports whether candidate overlaps any body in existing other
// than the one at index exclude. Pass a negative exclude to test against
// all of them.
func CheckOnTop(candidate Body, existing []Body, exclude int) bool {
	for i, o := range existing {
		if i == exclude {
			continue
		}
		if Overlaps(candidate, o) {
			return true
		}
	}
	return false
}
