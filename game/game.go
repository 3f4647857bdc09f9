// Package game owns the simulated world: the entity store, the per-tick
// phases and the telemetry hooks. It has no graphics dependency.
package game

import (
	"log/slog"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/pond/components"
	"github.com/pthm-cable/pond/config"
	"github.com/pthm-cable/pond/renderer"
	"github.com/pthm-cable/pond/systems"
	"github.com/pthm-cable/pond/telemetry"
)

// Options configures a game instance.
type Options struct {
	Seed           int64
	LogStats       bool    // log every stats window through slog
	StatsWindowSec float64 // 0 = use config
	OutputDir      string  // CSV and config snapshot directory; empty disables output
	StepsPerUpdate int     // ticks per Update call
}

// pilotRef ties a pilot entity to the helm steering it.
type pilotRef struct {
	entity ecs.Entity
	helm   *systems.Helm
	pilot  *systems.Pilot
}

// Game holds the complete simulation state.
type Game struct {
	world   *ecs.World
	rng     *rand.Rand
	rngSeed int64

	entityMapper *ecs.Map3[components.Entity, components.Identity, components.Mind]
	entityFilter *ecs.Filter3[components.Entity, components.Identity, components.Mind]
	entityMap    *ecs.Map[components.Entity]
	identityMap  *ecs.Map[components.Identity]

	// Shared runtime handed to every variant
	rt *systems.Runtime

	// One behavior per kind; pilots get their own so each has a helm
	plant    *systems.Plant
	wanderer *systems.Wanderer
	grazer   *systems.Grazer
	pilots   []pilotRef

	feeding  *systems.FeedingSystem
	breeding *systems.BreedingSystem

	// Per-tick scratch
	snap     snapshot
	meals    []systems.Meal
	births   []systems.Birth
	children []spawnSpec

	// Telemetry
	collector        *telemetry.Collector
	perfCollector    *telemetry.PerfCollector
	lifetimeTracker  *telemetry.LifetimeTracker
	bookmarkDetector *telemetry.BookmarkDetector
	outputManager    *telemetry.OutputManager
	logStats         bool
	statsCallback    func(telemetry.WindowStats)

	// State
	tick          int32
	paused        bool
	nextID        uint32
	counts        [components.NumKinds]int
	deadCount     int
	stepsPerFrame int
}

// NewGameWithOptions creates a game from the global config and seeds the
// initial population.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()
	world := ecs.NewWorld()

	g := &Game{
		world:         world,
		rng:           rand.New(rand.NewSource(opts.Seed)),
		rngSeed:       opts.Seed,
		entityMapper:  ecs.NewMap3[components.Entity, components.Identity, components.Mind](world),
		entityFilter:  ecs.NewFilter3[components.Entity, components.Identity, components.Mind](world),
		entityMap:     ecs.NewMap[components.Entity](world),
		identityMap:   ecs.NewMap[components.Identity](world),
		logStats:      opts.LogStats,
		stepsPerFrame: max(opts.StepsPerUpdate, 1),
		nextID:        1,
	}

	g.rt = &systems.Runtime{
		RNG: g.rng,
		Bounds: systems.Bounds{
			Width:  cfg.Derived.WorldWidth,
			Height: cfg.Derived.WorldHeight,
		},
		Food: &g.snap,
	}

	g.plant = systems.NewPlant(cfg.Plant.GrowthRate, cfg.Plant.MaxNutrition)
	g.wanderer = systems.NewWanderer(g.rt)
	g.grazer = systems.NewGrazer(g.rt, systems.GrazerParams{
		HungerRate:     cfg.Grazer.HungerRate,
		SenseRange:     cfg.Grazer.SenseRange,
		BreedThreshold: cfg.Grazer.BreedThreshold,
		MealHealth:     cfg.Grazer.MealHealth,
		MaxHealth:      cfg.Entity.InitialHealth,
	})

	grid := systems.NewSpatialGrid(cfg.Derived.WorldWidth, cfg.Derived.WorldHeight, cfg.Physics.GridCellSize)
	g.feeding = systems.NewFeedingSystem(grid)
	g.breeding = systems.NewBreedingSystem(g.rt, cfg.Grazer.SpawnOffset)

	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}
	g.collector = telemetry.NewCollector(statsWindow, cfg.Physics.DT)
	g.perfCollector = telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow)
	g.lifetimeTracker = telemetry.NewLifetimeTracker()
	g.bookmarkDetector = telemetry.NewBookmarkDetector(10)

	if opts.OutputDir != "" {
		om, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			slog.Error("failed to create output manager", "error", err)
		} else {
			g.outputManager = om
			if err := om.WriteConfig(cfg); err != nil {
				slog.Error("failed to write config", "error", err)
			}
		}
	}

	g.spawnInitialPopulation()
	return g
}

// Update advances the simulation by the configured number of ticks unless
// paused.
func (g *Game) Update() {
	if g.paused {
		return
	}
	for i := 0; i < g.stepsPerFrame; i++ {
		g.Step()
	}
}

// Steer forwards a turn and a move intent to every pilot's helm.
func (g *Game) Steer(angle, distance float64) {
	for _, p := range g.pilots {
		if !g.world.Alive(p.entity) {
			continue
		}
		e := g.entityMap.Get(p.entity)
		if angle != 0 {
			p.helm.Turn(e, angle)
		}
		if distance != 0 {
			p.helm.Move(e, distance)
		}
	}
}

// Render draws every live entity onto sink. It only reads settled state and
// must not be called while a tick is in progress.
func (g *Game) Render(sink renderer.Sink) {
	query := g.entityFilter.Query()
	for query.Next() {
		e, _, _ := query.Get()
		renderer.DrawEntity(sink, e)
	}
}

// SetStatsCallback registers a function called with every flushed window.
func (g *Game) SetStatsCallback(fn func(telemetry.WindowStats)) {
	g.statsCallback = fn
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 {
	return g.tick
}

// Count returns the number of live entities of kind.
func (g *Game) Count(kind components.Kind) int {
	if int(kind) >= components.NumKinds {
		return 0
	}
	return g.counts[kind]
}

// Population returns the number of entities in the world.
func (g *Game) Population() int {
	n := 0
	for _, c := range g.counts {
		n += c
	}
	return n
}

// DeadCount returns how many entities have been removed so far.
func (g *Game) DeadCount() int {
	return g.deadCount
}

// Paused reports whether Update is suspended.
func (g *Game) Paused() bool {
	return g.paused
}

// SetPaused suspends or resumes Update.
func (g *Game) SetPaused(p bool) {
	g.paused = p
}

// Speed returns the ticks run per Update.
func (g *Game) Speed() int {
	return g.stepsPerFrame
}

// SetSpeed sets the ticks run per Update, at least one.
func (g *Game) SetSpeed(n int) {
	g.stepsPerFrame = max(n, 1)
}

// Perf returns the rolling tick timings.
func (g *Game) Perf() *telemetry.PerfCollector {
	return g.perfCollector
}

// Unload flushes and closes output files.
func (g *Game) Unload() {
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
