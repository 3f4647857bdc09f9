package systems

import (
	"math"

	"github.com/pthm-cable/pond/components"
	"github.com/pthm-cable/pond/vmath"
)

// Breeder is implemented by variants that reproduce by splitting.
type Breeder interface {
	ReadyToBreed(self *components.Entity) bool
}

// Birth is a deferred spawn request produced by the breeding pass.
type Birth struct {
	Parent    int // snapshot index of the parent
	Position  vmath.Vec2
	Nutrition float64
}

// BreedingSystem splits ready breeders into a parent and a child placed at a
// free spot next to it.
type BreedingSystem struct {
	rt      *Runtime
	offset  float64
	pending []components.Entity // probes for births queued this pass
}

// NewBreedingSystem creates a breeding system. offset is the gap left between
// parent and child.
func NewBreedingSystem(rt *Runtime, offset float64) *BreedingSystem {
	return &BreedingSystem{rt: rt, offset: offset}
}

// Update queues births for ready breeders while room remains under limit
// (counting population). A parent whose child would not fit stays intact.
func (s *BreedingSystem) Update(peers []*components.Entity, behaviors []components.Behavior, population, limit int, dst []Birth) []Birth {
	s.pending = s.pending[:0]

	for i, parent := range peers {
		if population+len(s.pending) >= limit {
			break
		}
		breeder, ok := behaviors[i].(Breeder)
		if !ok || !breeder.ReadyToBreed(parent) {
			continue
		}

		angle := s.rt.RNG.Float64() * 2 * math.Pi
		dist := float64(2*parent.Radius) + s.offset
		probe := *parent
		probe.Position = parent.Position.Add(vmath.FromAngle(angle, dist))

		if !s.fits(&probe, peers) {
			continue
		}

		parent.Nutrition /= 2
		s.pending = append(s.pending, probe)
		dst = append(dst, Birth{Parent: i, Position: probe.Position, Nutrition: parent.Nutrition})
	}

	return dst
}

// fits reports whether probe lies inside the world without touching any live
// peer or a child already queued this pass.
func (s *BreedingSystem) fits(probe *components.Entity, peers []*components.Entity) bool {
	if !s.rt.Bounds.Contains(probe.Position, probe.Radius) {
		return false
	}
	for _, p := range peers {
		if !p.Dead && probe.IsCollidingWith(p) {
			return false
		}
	}
	for i := range s.pending {
		if probe.IsCollidingWith(&s.pending[i]) {
			return false
		}
	}
	return true
}
