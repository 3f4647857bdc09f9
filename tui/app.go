// Package tui runs the pond inside a terminal through tcell.
package tui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/pond/components"
	"github.com/pthm-cable/pond/config"
	"github.com/pthm-cable/pond/game"
	"github.com/pthm-cable/pond/renderer"
)

// keyPressSec is how much held-key time a single key press stands for.
// Terminals deliver presses, not key state.
const keyPressSec = 0.1

const maxSpeed = 10

// App drives a game on a tcell screen.
type App struct {
	g      *game.Game
	screen tcell.Screen
	term   *renderer.Terminal
}

// New creates an app drawing g onto an initialised screen.
func New(g *game.Game, screen tcell.Screen) *App {
	cfg := config.Cfg()
	return &App{
		g:      g,
		screen: screen,
		term:   renderer.NewTerminal(screen, cfg.Derived.WorldWidth, cfg.Derived.WorldHeight),
	}
}

// Run opens the terminal and runs g until the user quits or maxTicks is
// reached (0 = unlimited).
func Run(g *game.Game, maxTicks int) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialising terminal screen: %w", err)
	}
	defer screen.Fini()

	a := New(g, screen)

	fps := max(config.Cfg().Screen.TargetFPS, 1)
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	quit := make(chan struct{})
	defer close(quit)
	eventChan := pollEvents(screen, quit)

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !a.HandleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			g.Update()
			g.Perf().RecordFrame()
			a.Draw()

			if maxTicks > 0 && int(g.Tick()) >= maxTicks {
				return nil
			}
		}
	}
}

// pollEvents forwards screen events until the screen is finalised or quit
// is closed.
func pollEvents(screen tcell.Screen, quit <-chan struct{}) <-chan tcell.Event {
	eventChan := make(chan tcell.Event, 100)
	go func() {
		defer close(eventChan)
		for {
			select {
			case <-quit:
				return
			default:
			}
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	}()
	return eventChan
}

// HandleEvent applies a terminal event. It returns false when the user
// asked to quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	cam := a.term.Camera()
	const panStep = 4.0

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		cam.Pan(-panStep, 0)
	case tcell.KeyRight:
		cam.Pan(panStep, 0)
	case tcell.KeyUp:
		cam.Pan(0, -panStep)
	case tcell.KeyDown:
		cam.Pan(0, panStep)
	case tcell.KeyHome:
		cam.Reset()
	case tcell.KeyRune:
		return a.handleRune(ev.Rune())
	}
	return true
}

func (a *App) handleRune(r rune) bool {
	pilot := config.Cfg().Pilot

	switch r {
	case 'q':
		return false
	case ' ':
		a.g.SetPaused(!a.g.Paused())
	case ',':
		a.g.SetSpeed(a.g.Speed() - 1)
	case '.':
		if a.g.Speed() < maxSpeed {
			a.g.SetSpeed(a.g.Speed() + 1)
		}
	case '+', '=':
		a.term.Camera().ZoomBy(1.25)
	case '-':
		a.term.Camera().ZoomBy(0.8)
	case 'a':
		a.steer(-pilot.TurnRate*keyPressSec, 0)
	case 'd':
		a.steer(pilot.TurnRate*keyPressSec, 0)
	case 'w':
		a.steer(0, pilot.Speed*keyPressSec)
	case 's':
		a.steer(0, -pilot.Speed*keyPressSec/2)
	}
	return true
}

func (a *App) steer(angle, distance float64) {
	if a.g.Paused() {
		return
	}
	a.g.Steer(angle, distance)
}

// Draw renders the world and the status line.
func (a *App) Draw() {
	a.term.Begin()
	a.g.Render(a.term)

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	a.term.DrawText(0, 0, a.statusLine(), style)

	_, rows := a.screen.Size()
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)
	a.term.DrawText(0, rows-1, "wasd steer | arrows pan | +/- zoom | space pause | , . speed | q quit", dim)
	a.term.End()
}

func (a *App) statusLine() string {
	status := ""
	if a.g.Paused() {
		status = " PAUSED"
	}
	return fmt.Sprintf(" tick %d  %dx  plants %d  wanderers %d  grazers %d  pilots %d%s ",
		a.g.Tick(), a.g.Speed(),
		a.g.Count(components.KindPlant),
		a.g.Count(components.KindWanderer),
		a.g.Count(components.KindGrazer),
		a.g.Count(components.KindPilot),
		status,
	)
}
