// Package systems contains the entity variants and the per-tick systems that
// act on them.
package systems

import (
	"github.com/pthm-cable/pond/components"
	"github.com/pthm-cable/pond/vmath"
)

// Bounds represents the simulation bounds. Entities are kept fully inside.
type Bounds struct {
	Width, Height float64
}

// Contains reports whether a circle of radius r centred at p lies inside the bounds.
func (b Bounds) Contains(p vmath.Vec2, r int) bool {
	rf := float64(r)
	return p.X >= rf && p.X <= b.Width-rf && p.Y >= rf && p.Y <= b.Height-rf
}

// Reflect returns the displacement d adjusted so the entity bounces off any
// wall it would cross. The matching velocity component is flipped too.
func (b Bounds) Reflect(e *components.Entity, d vmath.Vec2) vmath.Vec2 {
	r := float64(e.Radius)
	next := e.Position.Add(d)

	if (next.X < r && d.X < 0) || (next.X > b.Width-r && d.X > 0) {
		d.X = -d.X
		e.Velocity.X = -e.Velocity.X
	}
	if (next.Y < r && d.Y < 0) || (next.Y > b.Height-r && d.Y > 0) {
		d.Y = -d.Y
		e.Velocity.Y = -e.Velocity.Y
	}
	return d
}

// MoveLog counts accepted and rejected moves since the last TakeMoves.
type MoveLog struct {
	accepted, rejected int
}

// record notes the outcome of one move and passes it through.
func (m *MoveLog) record(ok bool) bool {
	if ok {
		m.accepted++
	} else {
		m.rejected++
	}
	return ok
}

// TakeMoves returns the counts and resets them.
func (m *MoveLog) TakeMoves() (accepted, rejected int) {
	accepted, rejected = m.accepted, m.rejected
	m.accepted, m.rejected = 0, 0
	return accepted, rejected
}

// MoveReporter is implemented by variants that log their move outcomes.
type MoveReporter interface {
	TakeMoves() (accepted, rejected int)
}

// wander advances a randomly walking entity by one tick. A new velocity is
// drawn every MaxThinkTime seconds or right after a blocked move.
func wander(self *components.Entity, delta float64, peers []*components.Entity, rt *Runtime, log *MoveLog) {
	self.ThinkTime += delta
	if self.ThinkTime >= self.MaxThinkTime {
		self.ThinkTime = 0
		self.NextVelocity(rt.RNG)
	}
	step(self, delta, peers, rt, log)
}

// step integrates velocity over delta and attempts the move.
func step(self *components.Entity, delta float64, peers []*components.Entity, rt *Runtime, log *MoveLog) {
	d := rt.Bounds.Reflect(self, self.Velocity.Mul(delta))
	if !log.record(self.Move(d, peers)) {
		self.ThinkTime = self.MaxThinkTime
	}
}
