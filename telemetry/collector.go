package telemetry

import "github.com/pthm-cable/pond/components"

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationTicks int32
	dt                  float64

	windowStartTick int32

	// Event counters for the current window, indexed by kind
	births   [components.NumKinds]int
	deaths   [components.NumKinds]int
	accepted [components.NumKinds]int
	rejected [components.NumKinds]int

	meals          int
	nutritionEaten float64

	grazerLifespans []float64 // seconds, for grazers that died this window
}

// NewCollector creates a new stats collector.
// windowDurationSec is the window length in simulation seconds, dt the
// seconds per tick.
func NewCollector(windowDurationSec, dt float64) *Collector {
	ticksPerWindow := int32(windowDurationSec / dt)
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}
	return &Collector{
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// RecordBirth records a birth event.
func (c *Collector) RecordBirth(kind components.Kind) {
	if int(kind) < components.NumKinds {
		c.births[kind]++
	}
}

// RecordDeath records a death event.
func (c *Collector) RecordDeath(kind components.Kind) {
	if int(kind) < components.NumKinds {
		c.deaths[kind]++
	}
}

// RecordMeal records one food entity being eaten.
func (c *Collector) RecordMeal(amount float64) {
	c.meals++
	c.nutritionEaten += amount
}

// RecordMoves adds move outcomes reported by a variant.
func (c *Collector) RecordMoves(kind components.Kind, accepted, rejected int) {
	if int(kind) < components.NumKinds {
		c.accepted[kind] += accepted
		c.rejected[kind] += rejected
	}
}

// RecordLifespan records the age at death of an entity.
func (c *Collector) RecordLifespan(kind components.Kind, ageSec float64) {
	if kind == components.KindGrazer {
		c.grazerLifespans = append(c.grazerLifespans, ageSec)
	}
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Sample is the world state captured at the end of a window.
type Sample struct {
	Counts       [components.NumKinds]int
	GrazerHealth []float64 // health of every live grazer
	Speeds       []float64 // speed of every live mobile entity
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int32, sample Sample) WindowStats {
	var accepted, rejected int
	for k := 0; k < components.NumKinds; k++ {
		accepted += c.accepted[k]
		rejected += c.rejected[k]
	}
	var rejectRate float64
	if total := accepted + rejected; total > 0 {
		rejectRate = float64(rejected) / float64(total)
	}

	health := Summarize(sample.GrazerHealth)
	speed := Summarize(sample.Speeds)
	lifespan := Summarize(c.grazerLifespans)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.dt,

		Plants:    sample.Counts[components.KindPlant],
		Wanderers: sample.Counts[components.KindWanderer],
		Grazers:   sample.Counts[components.KindGrazer],
		Pilots:    sample.Counts[components.KindPilot],

		GrazerBirths: c.births[components.KindGrazer],
		GrazerDeaths: c.deaths[components.KindGrazer],
		PlantBirths:  c.births[components.KindPlant],
		PlantDeaths:  c.deaths[components.KindPlant],

		Meals:          c.meals,
		NutritionEaten: c.nutritionEaten,

		MovesAccepted:  accepted,
		MovesRejected:  rejected,
		RejectRate:     rejectRate,
		GrazerRejected: c.rejected[components.KindGrazer],

		GrazerHealthMean: health.Mean,
		GrazerHealthStd:  health.Std,
		GrazerHealthP10:  health.P10,
		GrazerHealthP50:  health.P50,
		GrazerHealthP90:  health.P90,

		SpeedMean: speed.Mean,
		SpeedP50:  speed.P50,
		SpeedP90:  speed.P90,

		GrazerLifespanMean: lifespan.Mean,
		GrazerLifespanP50:  lifespan.P50,
	}

	c.windowStartTick = currentTick
	c.births = [components.NumKinds]int{}
	c.deaths = [components.NumKinds]int{}
	c.accepted = [components.NumKinds]int{}
	c.rejected = [components.NumKinds]int{}
	c.meals = 0
	c.nutritionEaten = 0
	c.grazerLifespans = c.grazerLifespans[:0]

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
