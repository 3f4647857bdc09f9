// Package camera provides a 2D camera system for viewport control.
package camera

import (
	"math"

	"github.com/pthm-cable/pond/vmath"
)

// Camera controls the viewport into the simulation world.
// The world is bounded, so the camera centre is clamped rather than wrapped.
type Camera struct {
	// Center is the camera centre in world coordinates
	Center vmath.Vec2

	// Zoom level (1.0 = 1:1, 2.0 = 2x magnification)
	Zoom float64

	// Viewport dimensions in screen units
	ViewportW, ViewportH float64

	WorldW, WorldH float64

	// MinZoom fits the whole world in the viewport
	MinZoom, MaxZoom float64
}

// New creates a camera centred on the world, zoomed to fit it.
func New(viewportW, viewportH, worldW, worldH float64) *Camera {
	c := &Camera{
		ViewportW: viewportW,
		ViewportH: viewportH,
		WorldW:    worldW,
		WorldH:    worldH,
		MaxZoom:   4.0,
	}
	c.MinZoom = c.fitZoom()
	c.Reset()
	return c
}

func (c *Camera) fitZoom() float64 {
	if c.WorldW <= 0 || c.WorldH <= 0 {
		return 1
	}
	return math.Min(c.ViewportW/c.WorldW, c.ViewportH/c.WorldH)
}

// WorldToScreen converts a world position to screen coordinates.
func (c *Camera) WorldToScreen(p vmath.Vec2) vmath.Vec2 {
	return vmath.Vec2{
		X: c.ViewportW/2 + (p.X-c.Center.X)*c.Zoom,
		Y: c.ViewportH/2 + (p.Y-c.Center.Y)*c.Zoom,
	}
}

// ScreenToWorld converts screen coordinates to a world position.
func (c *Camera) ScreenToWorld(s vmath.Vec2) vmath.Vec2 {
	return vmath.Vec2{
		X: c.Center.X + (s.X-c.ViewportW/2)/c.Zoom,
		Y: c.Center.Y + (s.Y-c.ViewportH/2)/c.Zoom,
	}
}

// Scale converts a world length to screen units.
func (c *Camera) Scale(length float64) float64 {
	return length * c.Zoom
}

// IsVisible returns true if a circle at p with the given radius could be
// visible on screen (conservative check for culling).
func (c *Camera) IsVisible(p vmath.Vec2, radius float64) bool {
	halfW := c.ViewportW/(2*c.Zoom) + radius
	halfH := c.ViewportH/(2*c.Zoom) + radius
	return math.Abs(p.X-c.Center.X) <= halfW && math.Abs(p.Y-c.Center.Y) <= halfH
}

// Resize updates viewport dimensions and recalculates zoom constraints.
func (c *Camera) Resize(viewportW, viewportH float64) {
	if viewportW == c.ViewportW && viewportH == c.ViewportH {
		return
	}
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	c.MinZoom = c.fitZoom()
	c.SetZoom(c.Zoom)
}

// Pan moves the camera by the given delta in screen units.
func (c *Camera) Pan(dx, dy float64) {
	c.Center.X += dx / c.Zoom
	c.Center.Y += dy / c.Zoom
	c.clampCenter()
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float64) {
	c.Zoom = clamp(zoom, c.MinZoom, math.Max(c.MaxZoom, c.MinZoom))
	c.clampCenter()
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float64) {
	c.SetZoom(c.Zoom * factor)
}

// Reset returns the camera to the world centre at the fitting zoom.
func (c *Camera) Reset() {
	c.Center = vmath.Vec2{X: c.WorldW / 2, Y: c.WorldH / 2}
	c.Zoom = c.MinZoom
}

// clampCenter keeps the visible area inside the world where it fits, and
// centres the world along an axis where it does not.
func (c *Camera) clampCenter() {
	halfW := c.ViewportW / (2 * c.Zoom)
	halfH := c.ViewportH / (2 * c.Zoom)
	c.Center.X = clampAxis(c.Center.X, halfW, c.WorldW)
	c.Center.Y = clampAxis(c.Center.Y, halfH, c.WorldH)
}

func clampAxis(center, half, size float64) float64 {
	if 2*half >= size {
		return size / 2
	}
	return clamp(center, half, size-half)
}

// clamp restricts a value to a range.
func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
