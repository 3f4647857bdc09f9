// Package renderer draws settled entity state onto a Sink.
package renderer

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/pthm-cable/pond/components"
	"github.com/pthm-cable/pond/vmath"
)

// Sink is anything that can draw a filled disk in world coordinates.
type Sink interface {
	DrawDisk(color colorful.Color, center vmath.Vec2, radius float64)
}

// starvingColor is what an entity's colour fades toward as health runs out.
var starvingColor = colorful.Color{R: 0.35, G: 0.35, B: 0.35}

// DrawEntity draws e as a disk of diameter 2·Radius centred on its position.
// Dead entities are not drawn.
func DrawEntity(s Sink, e *components.Entity) {
	if e.Dead {
		return
	}
	s.DrawDisk(Shade(e.Color, e.Health), e.Position, float64(e.Radius))
}

// Shade fades c toward grey as health drops from 1 to 0.
func Shade(c colorful.Color, health float64) colorful.Color {
	if health >= 1 {
		return c
	}
	if health < 0 {
		health = 0
	}
	return c.BlendLab(starvingColor, 0.6*(1-health)).Clamped()
}
