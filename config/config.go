// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/pond/components"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Entity     EntityConfig     `yaml:"entity"`
	Population PopulationConfig `yaml:"population"`
	Plant      PlantConfig      `yaml:"plant"`
	Grazer     GrazerConfig     `yaml:"grazer"`
	Pilot      PilotConfig      `yaml:"pilot"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds simulation world dimensions.
type WorldConfig struct {
	Width  int `yaml:"width"`  // World width in world units (0 = use screen width)
	Height int `yaml:"height"` // World height in world units (0 = use screen height)
}

// PhysicsConfig holds simulation stepping parameters.
type PhysicsConfig struct {
	DT           float64 `yaml:"dt"`             // seconds per tick
	GridCellSize float64 `yaml:"grid_cell_size"` // spatial grid cell size for feeding queries
}

// EntityConfig holds entity creation parameters.
type EntityConfig struct {
	MaxVelocity   int     `yaml:"max_velocity"`   // caps per-axis random velocity magnitude
	InitialHealth float64 `yaml:"initial_health"` // starting vitality
	MaxThinkTime  float64 `yaml:"max_think_time"` // seconds between velocity re-rolls
	MinRadius     int     `yaml:"min_radius"`
	MaxRadius     int     `yaml:"max_radius"`
	SpawnAttempts int     `yaml:"spawn_attempts"` // tries to find a free spot before giving up
}

// PopulationConfig holds population management parameters.
type PopulationConfig struct {
	Plants       int `yaml:"plants"`
	Wanderers    int `yaml:"wanderers"`
	Grazers      int `yaml:"grazers"`
	Pilots       int `yaml:"pilots"`
	MinPlants    int `yaml:"min_plants"`    // respawn plants when below
	RespawnCount int `yaml:"respawn_count"` // plants added per respawn
	MaxGrazers   int `yaml:"max_grazers"`   // breeding stops at this count
}

// PlantConfig holds plant regrowth parameters.
type PlantConfig struct {
	GrowthRate   float64 `yaml:"growth_rate"`   // nutrition gained per second
	MaxNutrition float64 `yaml:"max_nutrition"` // regrowth cap
	Radius       int     `yaml:"radius"`
}

// GrazerConfig holds grazer metabolism and breeding parameters.
type GrazerConfig struct {
	HungerRate     float64 `yaml:"hunger_rate"`     // health lost per second
	SenseRange     float64 `yaml:"sense_range"`     // distance at which food is noticed
	BreedThreshold float64 `yaml:"breed_threshold"` // nutrition needed to split
	MealHealth     float64 `yaml:"meal_health"`     // health restored per unit of nutrition eaten
	SpawnOffset    float64 `yaml:"spawn_offset"`    // child distance beyond the combined radii
}

// PilotConfig holds controller-driven entity parameters.
type PilotConfig struct {
	TurnRate float64 `yaml:"turn_rate"` // radians per second while a turn key is held
	Speed    float64 `yaml:"speed"`     // distance per second while thrusting
	Radius   int     `yaml:"radius"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`          // seconds per stats window
	PerfCollectorWindow int     `yaml:"perf_collector_window"` // ticks averaged by the perf collector
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	WorldWidth  float64 // Effective world width
	WorldHeight float64 // Effective world height
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects values the simulation cannot run with.
func (c *Config) validate() error {
	if c.Physics.DT <= 0 {
		return fmt.Errorf("physics.dt must be positive, got %v", c.Physics.DT)
	}
	if c.Physics.GridCellSize <= 0 {
		return fmt.Errorf("physics.grid_cell_size must be positive, got %v", c.Physics.GridCellSize)
	}
	if c.Entity.MinRadius <= 0 || c.Entity.MaxRadius < c.Entity.MinRadius {
		return fmt.Errorf("entity radius range [%d, %d] is invalid", c.Entity.MinRadius, c.Entity.MaxRadius)
	}
	if c.Plant.Radius <= 0 || c.Pilot.Radius <= 0 {
		return fmt.Errorf("plant and pilot radius must be positive")
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	// World dimensions default to screen size if not specified
	worldW := c.World.Width
	if worldW == 0 {
		worldW = c.Screen.Width
	}
	worldH := c.World.Height
	if worldH == 0 {
		worldH = c.Screen.Height
	}
	c.Derived.WorldWidth = float64(worldW)
	c.Derived.WorldHeight = float64(worldH)
}

// EntityDefaults returns the starting values for new entities.
func (c *Config) EntityDefaults() components.Defaults {
	return components.Defaults{
		MaxVelocity:   c.Entity.MaxVelocity,
		InitialHealth: c.Entity.InitialHealth,
		MaxThinkTime:  c.Entity.MaxThinkTime,
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
