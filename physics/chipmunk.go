package physics

import (
	"math"
	"sort"

	"github.com/jakecoffman/cp"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypePlayer
)

// mergeEpsilon is the gap under which two solid edges count as touching.
const mergeEpsilon = 1e-6

// ChipmunkStepper drives a single dynamic box through a Chipmunk space. Solids
// are merged into as few static boxes as possible and rebuilt whenever the
// solid set changes, so the body does not catch on seams between tiles.
type ChipmunkStepper struct {
	space *cp.Space
	tps   float64

	body  *cp.Body
	shape *cp.Shape
	w, h  float64

	solidIDs     []uint64
	staticShapes []*cp.Shape
}

// NewChipmunkStepper creates a stepper. gravity is in px/tick² and tps is the
// number of ticks per second.
func NewChipmunkStepper(gravity, tps float64) *ChipmunkStepper {
	if tps <= 0 {
		tps = 60
	}
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: -gravity * tps * tps})
	return &ChipmunkStepper{space: space, tps: tps}
}

// SetGravity updates gravity in px/tick².
func (s *ChipmunkStepper) SetGravity(gravity float64) {
	s.space.SetGravity(cp.Vector{X: 0, Y: -gravity * s.tps * s.tps})
}

// Space returns the underlying Chipmunk space.
func (s *ChipmunkStepper) Space() *cp.Space {
	if s == nil {
		return nil
	}
	return s.space
}

// StaticShapeCount returns the number of merged static boxes in the space.
func (s *ChipmunkStepper) StaticShapeCount() int {
	return len(s.staticShapes)
}

func (s *ChipmunkStepper) Step(b Body, solids []Solid) Body {
	s.ensureBody(b.Width, b.Height)
	s.syncSolids(solids)

	s.body.SetPosition(cp.Vector{X: b.X, Y: b.Y})
	s.body.SetVelocity(b.VX*s.tps, b.VY*s.tps)
	s.body.SetAngle(0)
	s.body.SetAngularVelocity(0)

	s.space.Step(1 / s.tps)

	pos := s.body.Position()
	vel := s.body.Velocity()
	b.X, b.Y = pos.X, pos.Y
	b.VX, b.VY = vel.X/s.tps, vel.Y/s.tps
	return b
}

func (s *ChipmunkStepper) ensureBody(w, h float64) {
	if s.body != nil && s.w == w && s.h == h {
		return
	}
	if s.shape != nil {
		s.space.RemoveShape(s.shape)
	}
	if s.body != nil {
		s.space.RemoveBody(s.body)
	}

	body := cp.NewBody(1, math.Inf(1))
	shape := cp.NewBox(body, w, h, 0)
	// the controller owns horizontal speed; friction would eat into it
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetCollisionType(collisionTypePlayer)

	s.space.AddBody(body)
	s.space.AddShape(shape)
	s.body, s.shape = body, shape
	s.w, s.h = w, h
}

func (s *ChipmunkStepper) syncSolids(solids []Solid) {
	ids := make([]uint64, len(solids))
	for i, sd := range solids {
		ids[i] = sd.ID
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	if equalIDs(ids, s.solidIDs) {
		return
	}
	s.solidIDs = ids

	for _, shape := range s.staticShapes {
		s.space.RemoveShape(shape)
	}
	s.staticShapes = s.staticShapes[:0]

	boxes := make([]cp.BB, len(solids))
	for i, sd := range solids {
		boxes[i] = sd.Box
	}
	for _, bb := range MergeBoxes(boxes) {
		shape := cp.NewBox2(s.space.StaticBody, bb, 0)
		shape.SetFriction(0.8)
		shape.SetCollisionType(collisionTypeSolid)
		s.space.AddShape(shape)
		s.staticShapes = append(s.staticShapes, shape)
	}
}

func equalIDs(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// MergeBoxes joins boxes that share full edges: first horizontal runs within a
// row, then runs of identical span stacked on top of each other.
func MergeBoxes(boxes []cp.BB) []cp.BB {
	if len(boxes) == 0 {
		return nil
	}
	sorted := append([]cp.BB(nil), boxes...)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.B != b.B {
			return a.B < b.B
		}
		if a.T != b.T {
			return a.T < b.T
		}
		return a.L < b.L
	})

	runs := make([]cp.BB, 0, len(sorted))
	cur := sorted[0]
	for _, bb := range sorted[1:] {
		if near(bb.B, cur.B) && near(bb.T, cur.T) && near(bb.L, cur.R) {
			cur.R = bb.R
			continue
		}
		runs = append(runs, cur)
		cur = bb
	}
	runs = append(runs, cur)

	sort.Slice(runs, func(i, j int) bool {
		a, b := runs[i], runs[j]
		if a.L != b.L {
			return a.L < b.L
		}
		if a.R != b.R {
			return a.R < b.R
		}
		return a.B < b.B
	})

	out := make([]cp.BB, 0, len(runs))
	cur = runs[0]
	for _, bb := range runs[1:] {
		if near(bb.L, cur.L) && near(bb.R, cur.R) && near(bb.B, cur.T) {
			cur.T = bb.T
			continue
		}
		out = append(out, cur)
		cur = bb
	}
	return append(out, cur)
}

func near(a, b float64) bool {
	return math.Abs(a-b) < mergeEpsilon
}
