package renderer

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/pthm-cable/pond/camera"
	"github.com/pthm-cable/pond/vmath"
)

const (
	diskRune = '█'
	dotRune  = '•'
)

// Terminal is a Sink drawing onto a tcell screen. Terminal cells are about
// twice as tall as they are wide, so the camera works in half-rows
// vertically to keep disks round.
type Terminal struct {
	screen tcell.Screen
	cam    *camera.Camera
}

// NewTerminal creates a terminal sink showing a world of the given size.
func NewTerminal(screen tcell.Screen, worldW, worldH float64) *Terminal {
	cols, rows := screen.Size()
	return &Terminal{
		screen: screen,
		cam:    camera.New(float64(cols), float64(rows*2), worldW, worldH),
	}
}

// Camera returns the sink's camera for panning and zooming.
func (t *Terminal) Camera() *camera.Camera {
	return t.cam
}

// Begin clears the screen and picks up any terminal resize.
func (t *Terminal) Begin() {
	cols, rows := t.screen.Size()
	t.cam.Resize(float64(cols), float64(rows*2))
	t.screen.Clear()
}

// DrawDisk fills every cell whose centre lies inside the disk. Disks smaller
// than a cell are drawn as a dot so nothing disappears when zoomed out.
func (t *Terminal) DrawDisk(color colorful.Color, center vmath.Vec2, radius float64) {
	if !t.cam.IsVisible(center, radius) {
		return
	}

	s := t.cam.WorldToScreen(center)
	r := t.cam.Scale(radius)
	style := tcell.StyleDefault.Foreground(tcellColor(color))
	cols, rows := t.screen.Size()

	minX := max(int(math.Floor(s.X-r)), 0)
	maxX := min(int(math.Ceil(s.X+r)), cols-1)
	minY := max(int(math.Floor((s.Y-r)/2)), 0)
	maxY := min(int(math.Ceil((s.Y+r)/2)), rows-1)

	drawn := false
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			dx := float64(x) + 0.5 - s.X
			dy := (float64(y)+0.5)*2 - s.Y
			if dx*dx+dy*dy <= r*r {
				t.screen.SetContent(x, y, diskRune, nil, style)
				drawn = true
			}
		}
	}
	if drawn {
		return
	}

	cx, cy := int(math.Floor(s.X)), int(math.Floor(s.Y/2))
	if cx >= 0 && cx < cols && cy >= 0 && cy < rows {
		t.screen.SetContent(cx, cy, dotRune, nil, style)
	}
}

// DrawText writes a single line of text starting at cell (x, y).
func (t *Terminal) DrawText(x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

// End presents the frame.
func (t *Terminal) End() {
	t.screen.Show()
}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
