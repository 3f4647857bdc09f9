// Package vmath provides the 2D vector type used for entity kinematics.
package vmath

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vec2 is a 2D float64 vector. Operations return new values; callers that
// need in-place updates assign the fields directly.
type Vec2 struct {
	X, Y float64
}

// Zero is the zero vector.
var Zero = Vec2{}

func (v Vec2) r2() r2.Vec { return r2.Vec(v) }

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2(r2.Add(v.r2(), o.r2()))
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2(r2.Sub(v.r2(), o.r2()))
}

// Mul returns v scaled by s.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2(r2.Scale(s, v.r2()))
}

// Length returns the Euclidean norm sqrt(x²+y²).
func (v Vec2) Length() float64 {
	return r2.Norm(v.r2())
}

// Dist returns the distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Length()
}

// Unit returns v scaled to length 1. The zero vector stays zero.
func (v Vec2) Unit() Vec2 {
	if v.X == 0 && v.Y == 0 {
		return Zero
	}
	return Vec2(r2.Unit(v.r2()))
}

// Rotate returns v rotated by angle radians around the origin.
func (v Vec2) Rotate(angle float64) Vec2 {
	return Vec2(r2.Rotate(v.r2(), angle, r2.Vec{}))
}

// Angle returns the heading of v in radians.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// FromAngle builds a vector with the given heading and magnitude.
func FromAngle(angle, magnitude float64) Vec2 {
	return Vec2{
		X: magnitude * math.Cos(angle),
		Y: magnitude * math.Sin(angle),
	}
}
