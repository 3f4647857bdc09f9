package camera

import (
	"math"
	"testing"

	"github.com/pthm-cable/pond/vmath"
)

func near(a, b vmath.Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestNewFitsWorld(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)

	if cam.Center != (vmath.Vec2{X: 1280, Y: 720}) {
		t.Errorf("expected camera at (1280, 720), got %v", cam.Center)
	}
	if cam.Zoom != 0.5 || cam.MinZoom != 0.5 {
		t.Errorf("expected fitting zoom 0.5, got %v (min %v)", cam.Zoom, cam.MinZoom)
	}
}

func TestWorldToScreenCentered(t *testing.T) {
	cam := New(1280, 720, 1280, 720)

	got := cam.WorldToScreen(vmath.Vec2{X: 640, Y: 360})
	if !near(got, vmath.Vec2{X: 640, Y: 360}) {
		t.Errorf("expected screen centre (640, 360), got %v", got)
	}
	got = cam.WorldToScreen(vmath.Vec2{})
	if !near(got, vmath.Vec2{}) {
		t.Errorf("world origin should map to screen origin at fit zoom, got %v", got)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)
	cam.SetZoom(2)
	cam.Pan(100, -50)

	for _, s := range []vmath.Vec2{{X: 640, Y: 360}, {X: 100, Y: 100}, {X: 1200, Y: 600}} {
		w := cam.ScreenToWorld(s)
		if back := cam.WorldToScreen(w); !near(back, s) {
			t.Errorf("roundtrip failed: %v -> %v -> %v", s, w, back)
		}
	}
}

func TestZoomClamp(t *testing.T) {
	cam := New(800, 600, 800, 600)

	cam.SetZoom(100)
	if cam.Zoom != cam.MaxZoom {
		t.Errorf("zoom = %v, want max %v", cam.Zoom, cam.MaxZoom)
	}
	cam.ZoomBy(0.001)
	if cam.Zoom != cam.MinZoom {
		t.Errorf("zoom = %v, want min %v", cam.Zoom, cam.MinZoom)
	}
}

func TestPanStaysInWorld(t *testing.T) {
	cam := New(800, 600, 800, 600)
	cam.SetZoom(2) // visible area is 400x300

	cam.Pan(-10000, -10000)
	if cam.Center != (vmath.Vec2{X: 200, Y: 150}) {
		t.Errorf("centre = %v, want clamped to (200, 150)", cam.Center)
	}
	cam.Pan(10000, 10000)
	if cam.Center != (vmath.Vec2{X: 600, Y: 450}) {
		t.Errorf("centre = %v, want clamped to (600, 450)", cam.Center)
	}

	// Zoomed out fully, the world stays centred.
	cam.SetZoom(cam.MinZoom)
	if cam.Center != (vmath.Vec2{X: 400, Y: 300}) {
		t.Errorf("centre = %v, want world centre", cam.Center)
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(800, 600, 1600, 1200)
	cam.SetZoom(1)
	cam.Pan(-10000, -10000) // view covers [0,800]x[0,600]

	tests := []struct {
		name   string
		p      vmath.Vec2
		radius float64
		want   bool
	}{
		{"inside", vmath.Vec2{X: 100, Y: 100}, 5, true},
		{"overlapping right edge", vmath.Vec2{X: 805, Y: 100}, 10, true},
		{"off to the right", vmath.Vec2{X: 900, Y: 100}, 10, false},
		{"below", vmath.Vec2{X: 100, Y: 700}, 10, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cam.IsVisible(tt.p, tt.radius); got != tt.want {
				t.Errorf("IsVisible(%v, %v) = %v, want %v", tt.p, tt.radius, got, tt.want)
			}
		})
	}
}

func TestResize(t *testing.T) {
	cam := New(800, 600, 800, 600)
	cam.Resize(400, 300)
	if cam.MinZoom != 0.5 {
		t.Errorf("after resize min zoom = %v, want 0.5", cam.MinZoom)
	}
	if cam.Zoom != 1 {
		t.Errorf("resize changed a valid zoom to %v", cam.Zoom)
	}

	cam.SetZoom(0.5)
	if s := cam.Scale(10); s != 5 {
		t.Errorf("Scale(10) = %v, want 5", s)
	}

	// Growing the viewport raises the minimum above the current zoom.
	cam.Resize(1600, 1200)
	if cam.Zoom != 2 {
		t.Errorf("zoom = %v, want raised to 2", cam.Zoom)
	}
}
