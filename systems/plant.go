package systems

import "github.com/pthm-cable/pond/components"

// Plant is a static, edible entity whose nutrition regrows over time.
type Plant struct {
	GrowthRate   float64
	MaxNutrition float64
}

// NewPlant creates a plant behavior.
func NewPlant(growthRate, maxNutrition float64) *Plant {
	return &Plant{GrowthRate: growthRate, MaxNutrition: maxNutrition}
}

// Update regrows nutrition up to the cap. Plants never move.
func (p *Plant) Update(self *components.Entity, delta float64, _ []*components.Entity) {
	if self.Dead {
		return
	}
	self.Nutrition = clampFloat(self.Nutrition+p.GrowthRate*delta, 0, p.MaxNutrition)
}

// IsEdible reports true: plants are food.
func (p *Plant) IsEdible() bool { return true }
