package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/pthm-cable/pond/camera"
	"github.com/pthm-cable/pond/vmath"
)

// Window is a Sink drawing onto the raylib window through a camera.
type Window struct {
	cam   *camera.Camera
	theme Theme
}

// NewWindow creates a window sink showing a world of the given size. The
// raylib window must already be open.
func NewWindow(worldW, worldH float64) *Window {
	return &Window{
		cam:   camera.New(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()), worldW, worldH),
		theme: DefaultTheme(),
	}
}

// Camera returns the window's camera.
func (w *Window) Camera() *camera.Camera {
	return w.cam
}

// DrawBackground clears the frame and shades the world rectangle.
func (w *Window) DrawBackground() {
	rl.ClearBackground(w.theme.Background)

	tl := w.cam.WorldToScreen(vmath.Vec2{})
	br := w.cam.WorldToScreen(vmath.Vec2{X: w.cam.WorldW, Y: w.cam.WorldH})
	rl.DrawRectangleV(toVector2(tl), toVector2(br.Sub(tl)), w.theme.WorldBg)
}

// DrawDisk fills a circle, at least one pixel across.
func (w *Window) DrawDisk(color colorful.Color, center vmath.Vec2, radius float64) {
	if !w.cam.IsVisible(center, radius) {
		return
	}
	r := max(w.cam.Scale(radius), 1)
	rl.DrawCircleV(toVector2(w.cam.WorldToScreen(center)), float32(r), rlColor(color))
}

func toVector2(v vmath.Vec2) rl.Vector2 {
	return rl.Vector2{X: float32(v.X), Y: float32(v.Y)}
}

func rlColor(c colorful.Color) rl.Color {
	r, g, b := c.Clamped().RGB255()
	return rl.Color{R: r, G: g, B: b, A: 255}
}
