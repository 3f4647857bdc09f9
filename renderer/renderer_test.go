package renderer

import (
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/pthm-cable/pond/components"
	"github.com/pthm-cable/pond/vmath"
)

type disk struct {
	color  colorful.Color
	center vmath.Vec2
	radius float64
}

type recordingSink struct {
	disks []disk
}

func (r *recordingSink) DrawDisk(color colorful.Color, center vmath.Vec2, radius float64) {
	r.disks = append(r.disks, disk{color, center, radius})
}

func TestDrawEntity(t *testing.T) {
	e, err := components.NewEntity(vmath.Vec2{X: 30, Y: 40}, 7, colorful.Color{R: 1}, components.DefaultDefaults())
	if err != nil {
		t.Fatal(err)
	}

	var sink recordingSink
	DrawEntity(&sink, &e)
	if len(sink.disks) != 1 {
		t.Fatalf("drew %d disks, want 1", len(sink.disks))
	}
	d := sink.disks[0]
	if d.center != e.Position || 2*d.radius != 14 {
		t.Errorf("disk = %+v, want centre %v diameter 14", d, e.Position)
	}
	if d.color != e.Color {
		t.Errorf("healthy entity colour changed to %v", d.color)
	}

	// Rendering is a pure read.
	if e.Position != (vmath.Vec2{X: 30, Y: 40}) || e.Health != 1 {
		t.Error("DrawEntity mutated the entity")
	}

	e.Dead = true
	DrawEntity(&sink, &e)
	if len(sink.disks) != 1 {
		t.Error("dead entity was drawn")
	}
}

func TestShade(t *testing.T) {
	base := colorful.Color{R: 0.9, G: 0.2, B: 0.1}
	if Shade(base, 1) != base {
		t.Error("full health should keep the base colour")
	}
	weak := Shade(base, 0.1)
	if weak.DistanceLab(starvingColor) >= base.DistanceLab(starvingColor) {
		t.Error("low health should move the colour toward grey")
	}
	if !Shade(base, -3).IsValid() {
		t.Error("shaded colour out of gamut")
	}
}

func TestKindColor(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	plant := KindColor(components.KindPlant, rng)
	grazer := KindColor(components.KindGrazer, rng)

	if !plant.IsValid() || !grazer.IsValid() {
		t.Fatal("palette produced an invalid colour")
	}
	if plant.DistanceLab(grazer) < 0.1 {
		t.Errorf("plant %v and grazer %v are indistinguishable", plant.Hex(), grazer.Hex())
	}
	if KindColor(components.Kind(200), rng) != (colorful.Color{R: 1, G: 1, B: 1}) {
		t.Error("unknown kind should fall back to white")
	}

	legend := LegendColor(components.KindPlant)
	if legend.DistanceLab(plant) > legend.DistanceLab(grazer) {
		t.Error("plant legend is closer to a grazer than to a plant")
	}
}

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(cols, rows)
	return screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func TestTerminalDrawDisk(t *testing.T) {
	screen := newSimScreen(t, 40, 20)
	term := NewTerminal(screen, 400, 400) // 0.1 cells per world unit

	term.Begin()
	term.DrawDisk(colorful.Color{G: 1}, vmath.Vec2{X: 200, Y: 200}, 50)
	term.End()

	if got := runeAt(screen, 20, 10); got != diskRune {
		t.Errorf("centre cell = %q, want %q", got, diskRune)
	}
	if got := runeAt(screen, 24, 10); got != diskRune {
		t.Errorf("cell inside the rim = %q, want %q", got, diskRune)
	}
	if got := runeAt(screen, 0, 0); got == diskRune {
		t.Error("corner cell painted by a centred disk")
	}
	if got := runeAt(screen, 27, 10); got == diskRune {
		t.Error("cell beyond the radius painted")
	}
}

func TestTerminalTinyDiskStillVisible(t *testing.T) {
	screen := newSimScreen(t, 40, 20)
	term := NewTerminal(screen, 400, 400)

	term.Begin()
	term.DrawDisk(colorful.Color{R: 1}, vmath.Vec2{X: 105, Y: 105}, 1)
	term.End()

	if got := runeAt(screen, 10, 5); got != dotRune {
		t.Errorf("tiny disk cell = %q, want %q", got, dotRune)
	}
}

func TestTerminalDrawText(t *testing.T) {
	screen := newSimScreen(t, 20, 5)
	term := NewTerminal(screen, 100, 100)

	term.Begin()
	term.DrawText(2, 1, "pond", tcell.StyleDefault)
	term.End()

	for i, want := range "pond" {
		if got := runeAt(screen, 2+i, 1); got != want {
			t.Errorf("cell %d = %q, want %q", 2+i, got, want)
		}
	}
}
