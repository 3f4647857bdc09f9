package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pond/components"
	"github.com/pthm-cable/pond/renderer"
)

const (
	hudWidth = 230
	maxSpeed = 10
)

// HUDData holds everything the HUD shows.
type HUDData struct {
	Counts [components.NumKinds]int
	Dead   int
	Tick   int32
	Speed  int
	FPS    float64
	TPS    float64
	Paused bool
}

// HUDActions reports what the user changed through the HUD widgets.
type HUDActions struct {
	TogglePause bool
	Speed       int // ticks per frame chosen on the slider
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
	height   int32
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// Draw renders the HUD and its controls.
func (h *HUD) Draw(data HUDData) HUDActions {
	r := h.renderer
	pad := r.Theme.Padding
	x := pad + pad
	panelHeight := int32(components.NumKinds+6)*r.Theme.LineHeight + 80

	h.height = panelHeight
	r.DrawPanel(pad, pad, hudWidth, panelHeight)

	y := pad + pad
	rl.DrawText("Pond", x, y, 20, rl.White)
	y += 28

	y = r.DrawSectionHeader(x, y, "Population")
	for k := components.Kind(0); int(k) < components.NumKinds; k++ {
		y = r.DrawSwatchLabel(x, y, rlColor(renderer.LegendColor(k)), fmt.Sprintf("%-9s %d", k, data.Counts[k]))
	}
	y = r.DrawLabelValue(x, y, "Removed", fmt.Sprint(data.Dead))
	y += 4

	y = r.DrawSectionHeader(x, y, "Simulation")
	y = r.DrawLabelValue(x, y, "Tick", fmt.Sprint(data.Tick))
	y = r.DrawLabelValue(x, y, "FPS", fmt.Sprintf("%.0f (%.0f tps)", data.FPS, data.TPS))
	y += 4

	actions := HUDActions{Speed: data.Speed}

	label := "Pause"
	if data.Paused {
		label = "Resume"
	}
	if gui.Button(rl.Rectangle{X: float32(x), Y: float32(y), Width: 80, Height: 24}, label) {
		actions.TogglePause = true
	}
	if data.Paused {
		rl.DrawText("PAUSED", x+92, y+5, r.Theme.FontSize, rl.Yellow)
	}
	y += 32

	speed := gui.SliderBar(
		rl.Rectangle{X: float32(x + 40), Y: float32(y), Width: hudWidth - 100, Height: 16},
		"1x", fmt.Sprintf("%dx", maxSpeed),
		float32(data.Speed), 1, maxSpeed,
	)
	actions.Speed = int(speed + 0.5)

	return actions
}

// Contains reports whether a screen point lies over the HUD panel.
func (h *HUD) Contains(x, y float32) bool {
	pad := float32(h.renderer.Theme.Padding)
	return x >= pad && x <= pad+hudWidth && y >= pad && y <= pad+float32(h.height)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32) {
	const legend = "WASD steer pilot | Arrows pan | Wheel/+/- zoom | Home reset | Space pause | , . speed | Click inspect"
	rl.DrawText(legend, 10, screenHeight-25, 14, rl.Gray)
}
