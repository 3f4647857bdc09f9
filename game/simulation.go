package game

import (
	"github.com/pthm-cable/pond/components"
	"github.com/pthm-cable/pond/config"
	"github.com/pthm-cable/pond/systems"
	"github.com/pthm-cable/pond/telemetry"
)

// snapshot is the tick's view of the world. Index i of every slice refers to
// the same entity. Component pointers stay valid until the first spawn or
// removal of the tick, which only happens once the phases reading them are
// done.
type snapshot struct {
	peers     []*components.Entity
	behaviors []components.Behavior
	ids       []components.Identity
	edible    map[*components.Entity]struct{}
}

// IsFood reports whether e was an edible entity when the tick started.
func (s *snapshot) IsFood(e *components.Entity) bool {
	_, ok := s.edible[e]
	return ok
}

// live counts entities of kind that are still alive. Entities that died
// this tick stay in the world until cleanup but no longer count.
func (s *snapshot) live(kind components.Kind) int {
	n := 0
	for i, e := range s.peers {
		if s.ids[i].Kind == kind && !e.Dead {
			n++
		}
	}
	return n
}

// Step runs a single tick of the simulation.
func (g *Game) Step() {
	dt := config.Cfg().Physics.DT

	g.perfCollector.StartTick()

	g.perfCollector.StartPhase(telemetry.PhaseSnapshot)
	g.takeSnapshot()

	g.perfCollector.StartPhase(telemetry.PhaseBehavior)
	g.updateBehaviors(dt)

	g.perfCollector.StartPhase(telemetry.PhaseFeeding)
	g.updateFeeding()

	g.perfCollector.StartPhase(telemetry.PhaseBreeding)
	g.updateBreeding()

	g.perfCollector.StartPhase(telemetry.PhaseCleanup)
	g.cleanupDead()
	g.respawnPlants()

	g.tick++

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.flushTelemetry()

	g.perfCollector.EndTick()
}

// takeSnapshot collects every live entity. Entities already marked dead are
// left out; cleanup removes them.
func (g *Game) takeSnapshot() {
	s := &g.snap
	s.peers = s.peers[:0]
	s.behaviors = s.behaviors[:0]
	s.ids = s.ids[:0]
	if s.edible == nil {
		s.edible = make(map[*components.Entity]struct{})
	}
	clear(s.edible)

	query := g.entityFilter.Query()
	for query.Next() {
		e, id, mind := query.Get()
		if e.Dead {
			continue
		}
		s.peers = append(s.peers, e)
		s.behaviors = append(s.behaviors, mind.Behavior)
		s.ids = append(s.ids, *id)
		if mind.Behavior.IsEdible() {
			s.edible[e] = struct{}{}
		}
	}
}

// updateBehaviors gives every live entity its turn. An entity killed earlier
// in the pass is skipped.
func (g *Game) updateBehaviors(dt float64) {
	s := &g.snap
	for i, e := range s.peers {
		if e.Dead {
			continue
		}
		s.behaviors[i].Update(e, dt, s.peers)
	}

	g.collectMoves(components.KindWanderer, g.wanderer)
	g.collectMoves(components.KindGrazer, g.grazer)
	for _, p := range g.pilots {
		g.collectMoves(components.KindPilot, p.pilot)
	}
}

func (g *Game) collectMoves(kind components.Kind, r systems.MoveReporter) {
	accepted, rejected := r.TakeMoves()
	g.collector.RecordMoves(kind, accepted, rejected)
}

// updateFeeding lets eaters consume food in range.
func (g *Game) updateFeeding() {
	s := &g.snap
	g.meals = g.feeding.Update(s.peers, s.behaviors, g.meals[:0])
	for _, m := range g.meals {
		g.collector.RecordMeal(m.Amount)
		g.lifetimeTracker.RecordMeal(s.ids[m.Eater].ID)
	}
}

// updateBreeding splits ready grazers. Parent data is copied out before any
// child is spawned since a structural change may move component storage.
func (g *Game) updateBreeding() {
	s := &g.snap
	limit := config.Cfg().Population.MaxGrazers
	g.births = g.breeding.Update(s.peers, s.behaviors, s.live(components.KindGrazer), limit, g.births[:0])

	g.children = g.children[:0]
	for _, b := range g.births {
		parent := s.peers[b.Parent]
		g.children = append(g.children, spawnSpec{
			kind:      s.ids[b.Parent].Kind,
			pos:       b.Position,
			radius:    parent.Radius,
			color:     parent.Color,
			nutrition: b.Nutrition,
			parentID:  s.ids[b.Parent].ID,
		})
	}

	for _, spec := range g.children {
		if _, err := g.spawnEntity(spec); err != nil {
			continue
		}
		g.lifetimeTracker.RecordChild(spec.parentID)
	}
}
