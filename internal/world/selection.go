package world

import "github.com/Pavel-chemist/floating-objects/internal/body"

// SelectBody picks the top-most body containing (x, y). The hit body is
// raised to the end of the paint order and becomes the selection. A miss
// clears the selection.
func (w *World) SelectBody(x, y float64) bool {
	for i := len(w.bodies) - 1; i >= 0; i-- {
		if !w.bodies[i].Contains(x, y) {
			continue
		}
		w.selected = w.raise(i)
		w.hasSelection = true
		w.logger.Printf("world: selected %s", w.bodies[w.selected].Name)
		return true
	}
	w.hasSelection = false
	w.logger.Printf("world: no body at (%.1f, %.1f)", x, y)
	return false
}

// raise moves the body at i to the top of the paint order and returns its
// new index.
func (w *World) raise(i int) int {
	b := w.bodies[i]
	w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
	w.bodies = append(w.bodies, b)
	return len(w.bodies) - 1
}

func (w *World) HasSelection() bool { return w.hasSelection }

func (w *World) Selected() (body.Body, bool) {
	if !w.hasSelection {
		return body.Body{}, false
	}
	return w.bodies[w.selected], true
}

// DragSelectedTo moves the selected body to (x, y), giving it the velocity
// of that displacement. Without a selection it does nothing.
func (w *World) DragSelectedTo(x, y float64) bool {
	if !w.hasSelection {
		return false
	}
	w.bodies[w.selected].AccelerateTo(x, y)
	return true
}

// RemoveSelected deletes the selected body, if any, and always clears the
// selection.
func (w *World) RemoveSelected() bool {
	if !w.hasSelection {
		w.logger.Printf("world: nothing selected to remove")
		return false
	}
	removed := w.bodies[w.selected]
	kept := make([]body.Body, 0, len(w.bodies))
	for i, b := range w.bodies {
		if i != w.selected {
			kept = append(kept, b)
		}
	}
	w.bodies = kept
	w.hasSelection = false
	w.logger.Printf("world: removed %s", removed.Name)
	return true
}
