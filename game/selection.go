package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/pond/components"
	"github.com/pthm-cable/pond/config"
	"github.com/pthm-cable/pond/telemetry"
	"github.com/pthm-cable/pond/vmath"
)

// Selection is a copy of one entity's state, safe to hold across ticks.
type Selection struct {
	Identity components.Identity
	Entity   components.Entity
	Lifetime telemetry.LifetimeStats
	AgeSec   float64
}

// EntityAt returns the live entity whose disk contains p. When disks
// overlap the one with the nearest centre wins.
func (g *Game) EntityAt(p vmath.Vec2) (ecs.Entity, bool) {
	var found ecs.Entity
	ok := false
	best := 0.0

	query := g.entityFilter.Query()
	for query.Next() {
		e, _, _ := query.Get()
		if e.Dead {
			continue
		}
		d := e.Position.Dist(p)
		if d > float64(e.Radius) {
			continue
		}
		if !ok || d < best {
			found, best, ok = query.Entity(), d, true
		}
	}
	return found, ok
}

// Inspect copies the state of entity. It reports false once the entity has
// been removed.
func (g *Game) Inspect(entity ecs.Entity) (Selection, bool) {
	if !g.world.Alive(entity) {
		return Selection{}, false
	}
	sel := Selection{
		Identity: *g.identityMap.Get(entity),
		Entity:   *g.entityMap.Get(entity),
	}
	if stats := g.lifetimeTracker.Get(sel.Identity.ID); stats != nil {
		sel.Lifetime = *stats
		sel.AgeSec = stats.Age(g.tick, config.Cfg().Physics.DT)
	}
	return sel, true
}
