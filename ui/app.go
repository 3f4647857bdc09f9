package ui

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pond/components"
	"github.com/pthm-cable/pond/config"
	"github.com/pthm-cable/pond/game"
	"github.com/pthm-cable/pond/inspector"
	"github.com/pthm-cable/pond/vmath"
)

// App drives a game inside a raylib window.
type App struct {
	g         *game.Game
	window    *Window
	hud       *HUD
	inspector *inspector.Inspector

	screenW, screenH int32
}

// Run opens the window and runs g until the window closes or maxTicks is
// reached (0 = unlimited).
func Run(g *game.Game, maxTicks int) {
	cfg := config.Cfg()

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Pond")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	a := &App{
		g:         g,
		window:    NewWindow(cfg.Derived.WorldWidth, cfg.Derived.WorldHeight),
		hud:       NewHUD(),
		inspector: inspector.NewInspector(int32(rl.GetScreenWidth())),
		screenW:   int32(rl.GetScreenWidth()),
		screenH:   int32(rl.GetScreenHeight()),
	}

	for !rl.WindowShouldClose() {
		a.handleInput()
		g.Update()
		g.Perf().RecordFrame()
		a.draw()

		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			slog.Info("max ticks reached", "tick", g.Tick())
			return
		}
	}
}

func (a *App) draw() {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	a.window.DrawBackground()
	a.g.Render(a.window)
	a.drawInspector()

	data := HUDData{
		Dead:   a.g.DeadCount(),
		Tick:   a.g.Tick(),
		Speed:  a.g.Speed(),
		Paused: a.g.Paused(),
	}
	for k := components.Kind(0); int(k) < components.NumKinds; k++ {
		data.Counts[k] = a.g.Count(k)
	}
	perf := a.g.Perf().Stats()
	data.FPS, data.TPS = perf.FPS, perf.TicksPerSecond

	actions := a.hud.Draw(data)
	if actions.TogglePause {
		a.g.SetPaused(!a.g.Paused())
	}
	if actions.Speed != a.g.Speed() {
		a.g.SetSpeed(actions.Speed)
	}
	a.hud.DrawControls(a.screenH)
}

// drawInspector shows the selection, dropping it once the entity is gone.
func (a *App) drawInspector() {
	entity, ok := a.inspector.Selected()
	if !ok {
		return
	}
	sel, alive := a.g.Inspect(entity)
	if !alive {
		a.inspector.Deselect()
		return
	}

	cam := a.window.Camera()
	center := toVector2(cam.WorldToScreen(sel.Entity.Position))
	a.inspector.DrawSelectionHighlight(center, float32(cam.Scale(float64(sel.Entity.Radius))))
	a.inspector.Draw(sel)
}

// handleInput processes keyboard and mouse input.
func (a *App) handleInput() {
	a.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.g.SetPaused(!a.g.Paused())
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) {
		a.g.SetSpeed(a.g.Speed() - 1)
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && a.g.Speed() < maxSpeed {
		a.g.SetSpeed(a.g.Speed() + 1)
	}

	a.handlePilotInput()
	a.handleCameraInput()
	a.handleSelection()
}

// handleResize checks for window resize and propagates new dimensions.
func (a *App) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	if w == a.screenW && h == a.screenH {
		return
	}
	a.screenW, a.screenH = w, h
	a.window.Camera().Resize(float64(w), float64(h))
	a.inspector.Resize(w)
}

// handlePilotInput turns held WASD keys into helm commands for this frame.
func (a *App) handlePilotInput() {
	if a.g.Paused() {
		return
	}
	cfg := config.Cfg().Pilot
	dt := float64(rl.GetFrameTime())

	var turn, thrust float64
	if rl.IsKeyDown(rl.KeyA) {
		turn -= cfg.TurnRate * dt
	}
	if rl.IsKeyDown(rl.KeyD) {
		turn += cfg.TurnRate * dt
	}
	if rl.IsKeyDown(rl.KeyW) {
		thrust += cfg.Speed * dt
	}
	if rl.IsKeyDown(rl.KeyS) {
		thrust -= cfg.Speed * dt / 2
	}
	if turn != 0 || thrust != 0 {
		a.g.Steer(turn, thrust)
	}
}

// handleCameraInput processes camera pan/zoom controls.
func (a *App) handleCameraInput() {
	cam := a.window.Camera()
	const panSpeed = 8.0

	if rl.IsKeyDown(rl.KeyRight) {
		cam.Pan(panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		cam.Pan(-panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		cam.Pan(0, panSpeed)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		cam.Pan(0, -panSpeed)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		cam.ZoomBy(1 + float64(wheel)*0.1)
	}
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		cam.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		cam.ZoomBy(0.8)
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		cam.Reset()
	}
}

// handleSelection picks the entity under a left click. Right click clears.
func (a *App) handleSelection() {
	if rl.IsMouseButtonPressed(rl.MouseButtonRight) {
		a.inspector.Deselect()
		return
	}
	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return
	}

	m := rl.GetMousePosition()
	if a.hud.Contains(m.X, m.Y) || a.inspector.Contains(m.X, m.Y) {
		return
	}
	p := a.window.Camera().ScreenToWorld(vmath.Vec2{X: float64(m.X), Y: float64(m.Y)})
	if entity, ok := a.g.EntityAt(p); ok {
		a.inspector.Select(entity)
	} else {
		a.inspector.Deselect()
	}
}
