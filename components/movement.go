package components

import (
	"math/rand"

	"github.com/pthm-cable/pond/vmath"
)

// Move displaces the entity by d unless the new position collides with a
// live peer. The step is all-or-nothing: on the first collision the position
// is restored to exactly its pre-call value and Move returns false.
//
// Peers are compared by identity, so the mover may appear in peers. Overlaps
// that existed before the move still reject it if they persist afterwards.
func (e *Entity) Move(d vmath.Vec2, peers []*Entity) bool {
	prev := e.Position
	e.Position = e.Position.Add(d)

	for _, p := range peers {
		if p == e || p.Dead {
			continue
		}
		if e.IsCollidingWith(p) {
			e.Position = prev
			return false
		}
	}
	return true
}

// NextVelocity draws a new random velocity. Each axis is uniform over
// [-MaxVelocity/2, MaxVelocity/2) using integer halving, so odd limits lean
// one unit toward the positive end.
func (e *Entity) NextVelocity(rng *rand.Rand) {
	if e.MaxVelocity <= 0 {
		e.Velocity.X = 0
		e.Velocity.Y = 0
		return
	}
	half := e.MaxVelocity / 2
	e.Velocity.X = float64(rng.Intn(e.MaxVelocity) - half)
	e.Velocity.Y = float64(rng.Intn(e.MaxVelocity) - half)
}
