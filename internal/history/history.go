// Package history keeps snapshots of committed shapes for undo.
package history

import "github.com/example/shapecanvas/internal/shape"

// History is a stack of committed-list snapshots. The top always matches the
// document's committed shapes. It grows without bound; there is no redo.
type History struct {
	snapshots [][]shape.Shape
}

// New returns an empty history.
func New() *History { return &History{} }

// Commit pushes a deep copy of shapes.
func (h *History) Commit(shapes []shape.Shape) {
	h.snapshots = append(h.snapshots, shape.CloneAll(shapes))
}

// Undo drops the newest snapshot and returns a copy of the one below it, or an
// empty list when none remains. ok is false when there was nothing to undo.
func (h *History) Undo() (shapes []shape.Shape, ok bool) {
	if len(h.snapshots) == 0 {
		return []shape.Shape{}, false
	}
	h.snapshots[len(h.snapshots)-1] = nil
	h.snapshots = h.snapshots[:len(h.snapshots)-1]
	return h.Top(), true
}

// Top returns a copy of the newest snapshot, or an empty list.
func (h *History) Top() []shape.Shape {
	if len(h.snapshots) == 0 {
		return []shape.Shape{}
	}
	return shape.CloneAll(h.snapshots[len(h.snapshots)-1])
}

// Len is the number of snapshots held.
func (h *History) Len() int { return len(h.snapshots) }
