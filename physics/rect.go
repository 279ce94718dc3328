// Package physics holds the collision test and the platformer stepper used to
// move the player against terrain.
package physics

import "github.com/jakecoffman/cp"

// Box returns the bounding box of a w x h rectangle centered on (x, y).
func Box(x, y, w, h float64) cp.BB {
	return cp.BB{L: x - w/2, B: y - h/2, R: x + w/2, T: y + h/2}
}

// Overlaps reports whether a and b share interior area. Boxes that only touch
// along an edge do not overlap.
func Overlaps(a, b cp.BB) bool {
	return a.L < b.R && b.L < a.R && a.B < b.T && b.B < a.T
}

// Overlapping returns the indexes of the boxes in set that overlap a, in set
// order.
func Overlapping(a cp.BB, set []cp.BB) []int {
	var hits []int
	for i, b := range set {
		if Overlaps(a, b) {
			hits = append(hits, i)
		}
	}
	return hits
}

// FirstOverlap returns the index of the first box in set overlapping a.
func FirstOverlap(a cp.BB, set []cp.BB) (int, bool) {
	for i, b := range set {
		if Overlaps(a, b) {
			return i, true
		}
	}
	return -1, false
}
