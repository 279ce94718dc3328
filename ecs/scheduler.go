package ecs

import "github.com/hajimehoshi/ebiten/v2"

type System interface {
	Update(w *World)
}

// Drawer renders world state. Drawers run in the order they were added, after
// the systems have updated.
type Drawer interface {
	Draw(w *World, screen *ebiten.Image)
}

// Scheduler runs a fixed, ordered list of systems once per tick and owns the
// end-of-tick event flush.
type Scheduler struct {
	systems []System
	drawers []Drawer
	ticks   uint64
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) AddDrawer(d Drawer) {
	if d == nil {
		return
	}
	s.drawers = append(s.drawers, d)
}

// Update runs every system in order, then clears the world's event queue.
// Systems that need a tick's events must therefore come after the systems
// pushing them.
func (s *Scheduler) Update(w *World) {
	if w == nil {
		return
	}
	for _, system := range s.systems {
		system.Update(w)
	}
	w.Events().flush()
	s.ticks++
}

func (s *Scheduler) Draw(w *World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	for _, d := range s.drawers {
		d.Draw(w, screen)
	}
}

// Ticks is the number of completed updates.
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}

func (s *Scheduler) Systems() []System {
	return append([]System(nil), s.systems...)
}
