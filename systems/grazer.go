package systems

import (
	"math"

	"github.com/pthm-cable/pond/components"
	"github.com/pthm-cable/pond/vmath"
)

// GrazerParams holds grazer metabolism and breeding parameters.
type GrazerParams struct {
	HungerRate     float64 // health lost per second
	SenseRange     float64 // distance at which food is noticed
	BreedThreshold float64 // nutrition needed to split
	MealHealth     float64 // health restored per unit of nutrition eaten
	MaxHealth      float64 // health cap
}

// Grazer wanders until it senses food, then heads for the nearest edible
// peer. A blocked approach turns into a short detour. It starves when health
// runs out.
type Grazer struct {
	MoveLog
	rt     *Runtime
	params GrazerParams
}

// NewGrazer creates a grazer behavior.
func NewGrazer(rt *Runtime, params GrazerParams) *Grazer {
	return &Grazer{rt: rt, params: params}
}

// Update applies hunger, steers toward food and attempts the move.
func (g *Grazer) Update(self *components.Entity, delta float64, peers []*components.Entity) {
	if self.Dead {
		return
	}

	self.Health -= g.params.HungerRate * delta
	if self.Health <= 0 {
		self.Health = 0
		self.Dead = true
		return
	}

	if self.DetourTime > 0 {
		self.DetourTime = math.Max(self.DetourTime-delta, 0)
		wander(self, delta, peers, g.rt, &g.MoveLog)
		return
	}

	food, ok := g.nearestFood(self, peers)
	if !ok {
		wander(self, delta, peers, g.rt, &g.MoveLog)
		return
	}

	// Head for the food at half the velocity cap.
	speed := float64(self.MaxVelocity) / 2
	self.Velocity = food.Position.Sub(self.Position).Unit().Mul(speed)
	step(self, delta, peers, g.rt, &g.MoveLog)

	// A blocked approach wanders for one think interval before aiming again.
	// ThinkTime is left at MaxThinkTime so the detour starts on a fresh velocity.
	if self.ThinkTime >= self.MaxThinkTime {
		self.DetourTime = self.MaxThinkTime
	}
}

// nearestFood returns the closest live edible peer within sense range.
func (g *Grazer) nearestFood(self *components.Entity, peers []*components.Entity) (*components.Entity, bool) {
	if g.rt.Food == nil {
		return nil, false
	}

	var best *components.Entity
	bestDist := math.Inf(1)
	for _, p := range peers {
		if p == self || p.Dead || !g.rt.Food.IsFood(p) {
			continue
		}
		d := self.Position.Dist(p.Position)
		if d <= g.params.SenseRange && d < bestDist {
			best, bestDist = p, d
		}
	}
	return best, best != nil
}

// IsEdible reports false: nothing in the pond eats grazers.
func (g *Grazer) IsEdible() bool { return false }

// Eat consumes food: its nutrition moves to the grazer, which regains
// health, and the food dies.
func (g *Grazer) Eat(self, food *components.Entity) float64 {
	amount := food.Nutrition
	self.Nutrition += amount
	self.Health = math.Min(self.Health+amount*g.params.MealHealth, g.params.MaxHealth)
	food.Nutrition = 0
	food.Dead = true
	return amount
}

// ReadyToBreed reports whether the grazer has stored enough nutrition to split.
func (g *Grazer) ReadyToBreed(self *components.Entity) bool {
	return !self.Dead && self.Nutrition >= g.params.BreedThreshold
}

// heading returns the unit direction the entity faces, defaulting to +X.
func heading(e *components.Entity) vmath.Vec2 {
	h := e.Velocity.Unit()
	if h.IsZero() {
		return vmath.Vec2{X: 1}
	}
	return h
}
