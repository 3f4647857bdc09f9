package systems

import (
	"math/rand"

	"github.com/pthm-cable/pond/components"
)

// Runtime bundles the shared collaborators variants need: the injected random
// source, the world bounds and a way to tell food apart from other peers.
type Runtime struct {
	RNG    *rand.Rand
	Bounds Bounds
	Food   FoodIndex
}

// FoodIndex answers whether a peer is edible. The world rebuilds it every tick.
type FoodIndex interface {
	IsFood(e *components.Entity) bool
}

// clampFloat clamps a value between min and max.
func clampFloat(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
