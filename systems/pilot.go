package systems

import (
	"github.com/pthm-cable/pond/components"
	"github.com/pthm-cable/pond/vmath"
)

// Helm is a Controller that queues intents for a Pilot. Turn acts at once on
// the entity's heading; Move queues a distance the pilot spends on its next
// update.
type Helm struct {
	pending float64
}

// NewHelm creates an idle helm.
func NewHelm() *Helm {
	return &Helm{}
}

// Turn rotates the entity's heading by angle radians. A stationary entity
// is given a unit heading at that angle.
func (h *Helm) Turn(e *components.Entity, angle float64) {
	if e == nil || e.Dead {
		return
	}
	if e.Velocity.IsZero() {
		e.Velocity = vmath.FromAngle(angle, 1)
		return
	}
	e.Velocity = e.Velocity.Rotate(angle)
}

// Move queues distance along the current heading.
func (h *Helm) Move(e *components.Entity, distance float64) {
	if e == nil || e.Dead {
		return
	}
	h.pending += distance
}

// Pending returns the queued distance.
func (h *Helm) Pending() float64 {
	return h.pending
}

// take drains the queued distance.
func (h *Helm) take() float64 {
	d := h.pending
	h.pending = 0
	return d
}

// Pilot is driven entirely by its helm. Queued distance is spent as a single
// move per tick; a move that would leave the world or collide is dropped.
type Pilot struct {
	MoveLog
	rt   *Runtime
	helm *Helm
}

// NewPilot creates a pilot steered through helm.
func NewPilot(rt *Runtime, helm *Helm) *Pilot {
	return &Pilot{rt: rt, helm: helm}
}

// Helm returns the controller steering this pilot.
func (p *Pilot) Helm() *Helm {
	return p.helm
}

// Update spends the queued distance.
func (p *Pilot) Update(self *components.Entity, _ float64, peers []*components.Entity) {
	dist := p.helm.take()
	if self.Dead || dist == 0 {
		return
	}

	d := heading(self).Mul(dist)
	if !p.rt.Bounds.Contains(self.Position.Add(d), self.Radius) {
		p.record(false)
		return
	}
	p.record(self.Move(d, peers))
}

// IsEdible reports false.
func (p *Pilot) IsEdible() bool { return false }

var _ components.Controller = (*Helm)(nil)
