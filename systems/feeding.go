package systems

import (
	"math"

	"github.com/pthm-cable/pond/components"
)

// Eater is implemented by variants that consume edible peers.
// Eat transfers food into self and returns the nutrition gained.
type Eater interface {
	Eat(self, food *components.Entity) float64
}

// Meal records one eater consuming one food entity, as snapshot indices.
type Meal struct {
	Eater  int
	Food   int
	Amount float64
}

// FeedingSystem lets eaters consume edible peers in eating range.
type FeedingSystem struct {
	grid       *SpatialGrid
	candidates []int
}

// NewFeedingSystem creates a feeding system using grid for neighbor lookups.
func NewFeedingSystem(grid *SpatialGrid) *FeedingSystem {
	return &FeedingSystem{
		grid:       grid,
		candidates: make([]int, 0, 32),
	}
}

// Update runs one feeding pass over the tick snapshot. behaviors[i] drives
// peers[i]. Each live eater takes at most one meal per tick: the nearest live
// edible peer in eating range. Meals are appended to dst.
func (s *FeedingSystem) Update(peers []*components.Entity, behaviors []components.Behavior, dst []Meal) []Meal {
	s.grid.Clear()
	maxFoodRadius := 0
	for i, p := range peers {
		if p.Dead || !behaviors[i].IsEdible() {
			continue
		}
		s.grid.Insert(i, p.Position.X, p.Position.Y)
		if p.Radius > maxFoodRadius {
			maxFoodRadius = p.Radius
		}
	}
	if maxFoodRadius == 0 {
		return dst
	}

	for i, self := range peers {
		eater, ok := behaviors[i].(Eater)
		if !ok || self.Dead {
			continue
		}

		reach := components.EatingReach(self.Radius, maxFoodRadius)
		s.candidates = s.grid.QueryRadiusInto(s.candidates[:0], self.Position.X, self.Position.Y, reach)

		best := -1
		bestDist := math.Inf(1)
		for _, j := range s.candidates {
			food := peers[j]
			// Food eaten earlier in this pass is already dead.
			if j == i || food.Dead || !self.InEatingRange(food) {
				continue
			}
			if d := self.Position.Dist(food.Position); d < bestDist {
				best, bestDist = j, d
			}
		}
		if best < 0 {
			continue
		}

		amount := eater.Eat(self, peers[best])
		dst = append(dst, Meal{Eater: i, Food: best, Amount: amount})
	}

	return dst
}
