package systems

import "github.com/pthm-cable/pond/components"

// Wanderer drifts randomly, re-rolling its velocity every MaxThinkTime
// seconds. It neither eats nor starves.
type Wanderer struct {
	MoveLog
	rt *Runtime
}

// NewWanderer creates a wanderer behavior.
func NewWanderer(rt *Runtime) *Wanderer {
	return &Wanderer{rt: rt}
}

// Update advances the wanderer by one tick.
func (w *Wanderer) Update(self *components.Entity, delta float64, peers []*components.Entity) {
	if self.Dead {
		return
	}
	wander(self, delta, peers, w.rt, &w.MoveLog)
}

// IsEdible reports false.
func (w *Wanderer) IsEdible() bool { return false }
