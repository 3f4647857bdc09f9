package renderer

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/pthm-cable/pond/components"
)

// kindHues are the base HCL hues per kind, in degrees.
var kindHues = [components.NumKinds]float64{
	components.KindPlant:    130,
	components.KindWanderer: 220,
	components.KindGrazer:   45,
	components.KindPilot:    0,
}

const hueJitter = 12.0

// KindColor picks a colour for a new entity of kind. Entities of one kind
// share a hue with a little jitter so individuals stay distinguishable.
func KindColor(kind components.Kind, rng *rand.Rand) colorful.Color {
	if int(kind) >= components.NumKinds {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	h := kindHues[kind] + (rng.Float64()*2-1)*hueJitter
	if h < 0 {
		h += 360
	}
	return colorful.Hcl(h, 0.55, 0.7).Clamped()
}

// LegendColor is the unjittered colour of kind, for keys and legends.
func LegendColor(kind components.Kind) colorful.Color {
	if int(kind) >= components.NumKinds {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return colorful.Hcl(kindHues[kind], 0.55, 0.7).Clamped()
}
