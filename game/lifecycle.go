package game

import (
	"fmt"
	"log/slog"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/pond/components"
	"github.com/pthm-cable/pond/config"
	"github.com/pthm-cable/pond/renderer"
	"github.com/pthm-cable/pond/systems"
	"github.com/pthm-cable/pond/vmath"
)

// spawnSpec describes an entity to create.
type spawnSpec struct {
	kind      components.Kind
	pos       vmath.Vec2
	radius    int
	color     colorful.Color // zero picks a colour from the kind palette
	nutrition float64
	parentID  uint32 // zero for founders and respawns
}

// spawnInitialPopulation creates the starting entities at free random spots.
func (g *Game) spawnInitialPopulation() {
	cfg := config.Cfg()

	groups := []struct {
		kind  components.Kind
		count int
	}{
		{components.KindPlant, cfg.Population.Plants},
		{components.KindWanderer, cfg.Population.Wanderers},
		{components.KindGrazer, cfg.Population.Grazers},
		{components.KindPilot, cfg.Population.Pilots},
	}

	var occupied []components.Entity
	for _, grp := range groups {
		placed := 0
		for i := 0; i < grp.count; i++ {
			if g.spawnRandom(grp.kind, &occupied) {
				placed++
			}
		}
		if placed < grp.count {
			slog.Warn("world too crowded to place every entity",
				"kind", grp.kind.String(), "wanted", grp.count, "placed", placed)
		}
	}
}

// radiusFor returns the radius of a new entity of kind.
func (g *Game) radiusFor(kind components.Kind) int {
	cfg := config.Cfg()
	switch kind {
	case components.KindPlant:
		return cfg.Plant.Radius
	case components.KindPilot:
		return cfg.Pilot.Radius
	default:
		return cfg.Entity.MinRadius + g.rng.Intn(cfg.Entity.MaxRadius-cfg.Entity.MinRadius+1)
	}
}

// spawnRandom places a new entity of kind at a random spot inside the world
// that touches nothing in occupied. It gives up after the configured number
// of attempts. The new entity is appended to occupied.
func (g *Game) spawnRandom(kind components.Kind, occupied *[]components.Entity) bool {
	cfg := config.Cfg()
	radius := g.radiusFor(kind)
	r := float64(radius)
	bounds := g.rt.Bounds

	probe := components.Entity{Radius: radius}
	for attempt := 0; attempt < cfg.Entity.SpawnAttempts; attempt++ {
		probe.Position = vmath.Vec2{
			X: r + g.rng.Float64()*(bounds.Width-2*r),
			Y: r + g.rng.Float64()*(bounds.Height-2*r),
		}
		if !bounds.Contains(probe.Position, radius) || !isFree(&probe, *occupied) {
			continue
		}

		spec := spawnSpec{kind: kind, pos: probe.Position, radius: radius}
		if kind == components.KindPlant {
			spec.nutrition = cfg.Plant.MaxNutrition / 2
		}
		if _, err := g.spawnEntity(spec); err != nil {
			slog.Error("spawn failed", "error", err)
			return false
		}
		*occupied = append(*occupied, probe)
		return true
	}
	return false
}

func isFree(probe *components.Entity, occupied []components.Entity) bool {
	for i := range occupied {
		if probe.IsCollidingWith(&occupied[i]) {
			return false
		}
	}
	return true
}

// occupied appends a copy of every live entity to dst.
func (g *Game) occupied(dst []components.Entity) []components.Entity {
	query := g.entityFilter.Query()
	for query.Next() {
		e, _, _ := query.Get()
		if !e.Dead {
			dst = append(dst, *e)
		}
	}
	return dst
}

// spawnEntity creates an entity with the behavior for its kind.
func (g *Game) spawnEntity(spec spawnSpec) (ecs.Entity, error) {
	cfg := config.Cfg()

	color := spec.color
	if color == (colorful.Color{}) {
		color = renderer.KindColor(spec.kind, g.rng)
	}
	e, err := components.NewEntity(spec.pos, spec.radius, color, cfg.EntityDefaults())
	if err != nil {
		return ecs.Entity{}, fmt.Errorf("spawning %s: %w", spec.kind, err)
	}
	e.Nutrition = spec.nutrition

	var behavior components.Behavior
	var pilot *pilotRef
	switch spec.kind {
	case components.KindPlant:
		behavior = g.plant
	case components.KindWanderer:
		behavior = g.wanderer
		e.NextVelocity(g.rng)
	case components.KindGrazer:
		behavior = g.grazer
		e.NextVelocity(g.rng)
	case components.KindPilot:
		helm := systems.NewHelm()
		pilot = &pilotRef{helm: helm, pilot: systems.NewPilot(g.rt, helm)}
		behavior = pilot.pilot
	default:
		return ecs.Entity{}, fmt.Errorf("spawning unknown kind %d", spec.kind)
	}

	id := components.Identity{ID: g.nextID, Kind: spec.kind}
	g.nextID++
	mind := components.Mind{Behavior: behavior}

	entity := g.entityMapper.NewEntity(&e, &id, &mind)
	if pilot != nil {
		pilot.entity = entity
		g.pilots = append(g.pilots, *pilot)
	}

	g.counts[spec.kind]++
	g.lifetimeTracker.Register(id.ID, spec.kind, g.tick, spec.parentID)
	if spec.parentID != 0 {
		g.collector.RecordBirth(spec.kind)
	}
	return entity, nil
}

// cleanupDead removes dead entities from the world.
func (g *Game) cleanupDead() {
	dt := config.Cfg().Physics.DT

	// First pass: collect dead entities (must complete before modifying)
	type deadInfo struct {
		entity ecs.Entity
		id     uint32
		kind   components.Kind
	}
	var toRemove []deadInfo

	query := g.entityFilter.Query()
	for query.Next() {
		e, id, _ := query.Get()
		if e.Dead {
			toRemove = append(toRemove, deadInfo{entity: query.Entity(), id: id.ID, kind: id.Kind})
		}
	}

	// Second pass: remove entities (query iteration complete)
	for _, dead := range toRemove {
		g.collector.RecordDeath(dead.kind)
		if stats := g.lifetimeTracker.Remove(dead.id); stats != nil {
			g.collector.RecordLifespan(dead.kind, stats.Age(g.tick, dt))
		}

		g.world.RemoveEntity(dead.entity)
		g.counts[dead.kind]--
		g.deadCount++
	}
}

// respawnPlants tops up the plant population when it falls below the floor.
func (g *Game) respawnPlants() {
	cfg := config.Cfg()
	if g.counts[components.KindPlant] >= cfg.Population.MinPlants {
		return
	}

	occupied := g.occupied(nil)
	for i := 0; i < cfg.Population.RespawnCount; i++ {
		if g.spawnRandom(components.KindPlant, &occupied) {
			g.collector.RecordBirth(components.KindPlant)
		}
	}
}
