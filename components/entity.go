// Package components defines the ECS components for the simulation.
package components

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/pthm-cable/pond/vmath"
)

// ErrInvalidRadius is returned when an entity is built with a non-positive radius.
var ErrInvalidRadius = errors.New("radius must be positive")

// Defaults holds the starting values applied to every new entity.
type Defaults struct {
	MaxVelocity   int     // caps per-axis random velocity magnitude
	InitialHealth float64 // starting vitality
	MaxThinkTime  float64 // seconds between variant decisions
}

// DefaultDefaults returns the stock entity defaults.
func DefaultDefaults() Defaults {
	return Defaults{
		MaxVelocity:   100,
		InitialHealth: 1.0,
		MaxThinkTime:  1.0,
	}
}

// Entity is the kinematic and vital state shared by every simulated agent.
// Variants never embed logic here; they receive a pointer to it each update.
type Entity struct {
	Position vmath.Vec2     `inspect:"label"`
	Velocity vmath.Vec2     `inspect:"label"`
	Radius   int            `inspect:"label"`
	Color    colorful.Color `inspect:"skip"`

	Health    float64 `inspect:"bar"`
	Nutrition float64 `inspect:"label,fmt:%.2f"`
	Dead      bool    `inspect:"bool"`

	MaxVelocity  int     `inspect:"label"`
	ThinkTime    float64 `inspect:"label,fmt:%.2fs"`
	MaxThinkTime float64 `inspect:"skip"`
	DetourTime   float64 `inspect:"label,fmt:%.2fs"` // wander time left after a blocked approach
}

// NewEntity builds an entity at pos. The radius is fixed for the entity's lifetime.
func NewEntity(pos vmath.Vec2, radius int, color colorful.Color, d Defaults) (Entity, error) {
	if radius <= 0 {
		return Entity{}, fmt.Errorf("new entity with radius %d: %w", radius, ErrInvalidRadius)
	}
	return Entity{
		Position:     pos,
		Radius:       radius,
		Color:        color,
		Health:       d.InitialHealth,
		MaxVelocity:  d.MaxVelocity,
		MaxThinkTime: d.MaxThinkTime,
	}, nil
}

// Speed returns the magnitude of the current velocity.
func (e *Entity) Speed() float64 {
	return e.Velocity.Length()
}
